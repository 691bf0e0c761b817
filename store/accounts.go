// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/danielhkuo/pollbooth/auth"
	"github.com/danielhkuo/pollbooth/models"
)

// uniqueViolation is the postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// AccountStore persists registered users.
type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

// CreateAccount inserts a new account. The email must be unique;
// ErrEmailTaken is returned otherwise.
func (s *AccountStore) CreateAccount(ctx context.Context, email, username string, passHash []byte, isAdmin bool) (models.Account, error) {
	const op = "store.CreateAccount"

	id, err := auth.GenerateID(16)
	if err != nil {
		return models.Account{}, fmt.Errorf("%s: %w", op, err)
	}

	account := models.Account{
		ID:        id,
		Email:     email,
		Username:  username,
		PassHash:  passHash,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now(),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO account (id, email, username, pass_hash, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, account.ID, account.Email, account.Username, account.PassHash, account.IsAdmin, account.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.Account{}, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		return models.Account{}, fmt.Errorf("%s: %w", op, err)
	}

	return account, nil
}

// AccountByEmail looks up an account for login.
func (s *AccountStore) AccountByEmail(ctx context.Context, email string) (models.Account, error) {
	const op = "store.AccountByEmail"

	var a models.Account
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, username, pass_hash, is_admin, created_at
		FROM account
		WHERE email = $1
	`, email).Scan(&a.ID, &a.Email, &a.Username, &a.PassHash, &a.IsAdmin, &a.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, fmt.Errorf("%s: %w", op, ErrAccountNotFound)
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

// AccountByID looks up an account by its id.
func (s *AccountStore) AccountByID(ctx context.Context, id string) (models.Account, error) {
	const op = "store.AccountByID"

	var a models.Account
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, username, pass_hash, is_admin, created_at
		FROM account
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Email, &a.Username, &a.PassHash, &a.IsAdmin, &a.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, fmt.Errorf("%s: %w", op, ErrAccountNotFound)
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}
