// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/pollbooth/auth"
	"github.com/danielhkuo/pollbooth/models"
)

// VoteLedger records at most one vote per (account, question). A second vote
// from the same account reassigns the existing row's choice instead of
// inserting a duplicate; the UNIQUE (account_id, question_id) constraint
// backs this against racing inserts.
type VoteLedger struct {
	db *sql.DB
}

func NewVoteLedger(db *sql.DB) *VoteLedger {
	return &VoteLedger{db: db}
}

// CastVote records the account's choice on the choice's question. The
// returned bool reports whether an existing vote was updated rather than a
// new one inserted.
//
// Fails with ErrQuestionNotFound, ErrChoiceNotFound when the ids don't
// resolve, and ErrVotingClosed when now falls after the question's voting
// window. A question whose pub_date is still in the future reports
// ErrQuestionNotFound, same as a missing one. On failure the ledger is left
// unchanged.
func (l *VoteLedger) CastVote(ctx context.Context, accountID, questionID, choiceID string, now time.Time) (models.Vote, bool, error) {
	const op = "store.CastVote"

	var q models.Question
	err := l.db.QueryRowContext(ctx, `
		SELECT id, question_text, pub_date, end_date, created_at
		FROM question
		WHERE id = $1
	`, questionID).Scan(&q.ID, &q.Text, &q.PubDate, &q.EndDate, &q.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Vote{}, false, fmt.Errorf("%s: %w", op, ErrQuestionNotFound)
	}
	if err != nil {
		return models.Vote{}, false, fmt.Errorf("%s: %w", op, err)
	}

	// Scheduled questions must be indistinguishable from missing ones.
	if !q.IsPublished(now) {
		return models.Vote{}, false, fmt.Errorf("%s: %w", op, ErrQuestionNotFound)
	}

	if !q.CanVote(now) {
		return models.Vote{}, false, fmt.Errorf("%s: %w", op, ErrVotingClosed)
	}

	// The choice id must belong to this question, not just exist.
	var choiceOK bool
	err = l.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM choice WHERE id = $1 AND question_id = $2)
	`, choiceID, questionID).Scan(&choiceOK)
	if err != nil {
		return models.Vote{}, false, fmt.Errorf("%s: %w", op, err)
	}
	if !choiceOK {
		return models.Vote{}, false, fmt.Errorf("%s: %w", op, ErrChoiceNotFound)
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Vote{}, false, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	var existingID string
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM vote WHERE account_id = $1 AND question_id = $2
	`, accountID, questionID).Scan(&existingID)

	isUpdate := !errors.Is(err, sql.ErrNoRows)
	if err != nil && isUpdate {
		return models.Vote{}, false, fmt.Errorf("%s: %w", op, err)
	}

	var voteID string
	if isUpdate {
		voteID = existingID
		_, err = tx.ExecContext(ctx, `
			UPDATE vote
			SET choice_id = $1, cast_at = $2
			WHERE id = $3
		`, choiceID, now, voteID)
		if err != nil {
			return models.Vote{}, false, fmt.Errorf("%s: %w", op, err)
		}
	} else {
		newID, err := auth.GenerateID(16)
		if err != nil {
			return models.Vote{}, false, fmt.Errorf("%s: %w", op, err)
		}

		// ON CONFLICT absorbs a concurrent first vote from the same
		// account: whichever insert loses the race becomes the update.
		err = tx.QueryRowContext(ctx, `
			INSERT INTO vote (id, account_id, question_id, choice_id, cast_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (account_id, question_id)
			DO UPDATE SET choice_id = EXCLUDED.choice_id, cast_at = EXCLUDED.cast_at
			RETURNING id
		`, newID, accountID, questionID, choiceID, now).Scan(&voteID)
		if err != nil {
			return models.Vote{}, false, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Vote{}, false, fmt.Errorf("%s: %w", op, err)
	}

	vote := models.Vote{
		ID:         voteID,
		AccountID:  accountID,
		QuestionID: questionID,
		ChoiceID:   choiceID,
		CastAt:     now,
	}
	return vote, isUpdate, nil
}

// Tally counts the votes currently referencing a choice. The count is derived
// on every read; there is no stored counter to drift.
func (l *VoteLedger) Tally(ctx context.Context, choiceID string) (int, error) {
	const op = "store.Tally"

	var count int
	err := l.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM vote WHERE choice_id = $1
	`, choiceID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// TallyByQuestion returns every choice of the question with its vote count,
// in choice insertion order. Choices without votes appear with a zero count.
func (l *VoteLedger) TallyByQuestion(ctx context.Context, questionID string) ([]models.ChoiceTally, error) {
	const op = "store.TallyByQuestion"

	rows, err := l.db.QueryContext(ctx, `
		SELECT c.id, c.choice_text, COUNT(v.id)
		FROM choice c
		LEFT JOIN vote v ON v.choice_id = c.id
		WHERE c.question_id = $1
		GROUP BY c.id, c.choice_text, c.seq
		ORDER BY c.seq
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	tallies := []models.ChoiceTally{}
	for rows.Next() {
		var t models.ChoiceTally
		if err := rows.Scan(&t.ChoiceID, &t.Text, &t.Votes); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		tallies = append(tallies, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tallies, nil
}

// VoteOf returns the account's current vote on a question, or ErrVoteNotFound.
func (l *VoteLedger) VoteOf(ctx context.Context, accountID, questionID string) (models.Vote, error) {
	const op = "store.VoteOf"

	var v models.Vote
	err := l.db.QueryRowContext(ctx, `
		SELECT id, account_id, question_id, choice_id, cast_at
		FROM vote
		WHERE account_id = $1 AND question_id = $2
	`, accountID, questionID).Scan(&v.ID, &v.AccountID, &v.QuestionID, &v.ChoiceID, &v.CastAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Vote{}, fmt.Errorf("%s: %w", op, ErrVoteNotFound)
	}
	if err != nil {
		return models.Vote{}, fmt.Errorf("%s: %w", op, err)
	}

	return v, nil
}
