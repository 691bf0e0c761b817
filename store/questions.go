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

// DefaultListLimit caps the index listing when no limit is given.
const DefaultListLimit = 5

// QuestionStore owns the question/choice aggregate: administrative writes and
// the read-only query surface used by the handlers.
type QuestionStore struct {
	db *sql.DB
}

func NewQuestionStore(db *sql.DB) *QuestionStore {
	return &QuestionStore{db: db}
}

// CreateQuestion inserts a question. An end date before the publication date
// is rejected with ErrInvalidWindow rather than stored as an inverted window.
func (s *QuestionStore) CreateQuestion(ctx context.Context, text string, pubDate time.Time, endDate *time.Time) (models.Question, error) {
	const op = "store.CreateQuestion"

	if len(text) > models.MaxTextLen {
		return models.Question{}, fmt.Errorf("%s: %w", op, ErrTextTooLong)
	}
	if endDate != nil && endDate.Before(pubDate) {
		return models.Question{}, fmt.Errorf("%s: %w", op, ErrInvalidWindow)
	}

	id, err := auth.GenerateID(16)
	if err != nil {
		return models.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	q := models.Question{
		ID:        id,
		Text:      text,
		PubDate:   pubDate,
		EndDate:   endDate,
		CreatedAt: time.Now(),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO question (id, question_text, pub_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, q.ID, q.Text, q.PubDate, q.EndDate, q.CreatedAt)
	if err != nil {
		return models.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	return q, nil
}

// AddChoice appends a choice to a question. Choices keep insertion order.
func (s *QuestionStore) AddChoice(ctx context.Context, questionID, text string) (models.Choice, error) {
	const op = "store.AddChoice"

	if len(text) > models.MaxTextLen {
		return models.Choice{}, fmt.Errorf("%s: %w", op, ErrTextTooLong)
	}

	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM question WHERE id = $1)
	`, questionID).Scan(&exists)
	if err != nil {
		return models.Choice{}, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return models.Choice{}, fmt.Errorf("%s: %w", op, ErrQuestionNotFound)
	}

	id, err := auth.GenerateID(12)
	if err != nil {
		return models.Choice{}, fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO choice (id, question_id, choice_text)
		VALUES ($1, $2, $3)
	`, id, questionID, text)
	if err != nil {
		return models.Choice{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.Choice{ID: id, QuestionID: questionID, Text: text}, nil
}

// QuestionByID fetches a single question regardless of publication state.
func (s *QuestionStore) QuestionByID(ctx context.Context, id string) (models.Question, error) {
	const op = "store.QuestionByID"

	var q models.Question
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question_text, pub_date, end_date, created_at
		FROM question
		WHERE id = $1
	`, id).Scan(&q.ID, &q.Text, &q.PubDate, &q.EndDate, &q.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, fmt.Errorf("%s: %w", op, ErrQuestionNotFound)
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	return q, nil
}

// LatestPublished returns up to limit questions with pub_date <= now, newest
// first. Questions scheduled for the future are never included.
func (s *QuestionStore) LatestPublished(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	const op = "store.LatestPublished"

	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_text, pub_date, end_date, created_at
		FROM question
		WHERE pub_date <= $1
		ORDER BY pub_date DESC
		LIMIT $2
	`, now, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.PubDate, &q.EndDate, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return questions, nil
}

// ChoicesOf returns a question's choices in insertion order.
func (s *QuestionStore) ChoicesOf(ctx context.Context, questionID string) ([]models.Choice, error) {
	const op = "store.ChoicesOf"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_id, choice_text
		FROM choice
		WHERE question_id = $1
		ORDER BY seq
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.Text); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return choices, nil
}

// DeleteQuestion removes a question; choices and votes cascade.
func (s *QuestionStore) DeleteQuestion(ctx context.Context, id string) error {
	const op = "store.DeleteQuestion"

	res, err := s.db.ExecContext(ctx, `DELETE FROM question WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrQuestionNotFound)
	}

	return nil
}
