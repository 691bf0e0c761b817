// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// MaxTextLen bounds question and choice text.
const MaxTextLen = 200

// Request types

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateQuestionRequest struct {
	Text    string     `json:"text"`
	PubDate *time.Time `json:"pub_date,omitempty"` // defaults to now
	EndDate *time.Time `json:"end_date,omitempty"`
}

type AddChoiceRequest struct {
	Text string `json:"text"`
}

type VoteRequest struct {
	Choice string `json:"choice"`
}

// Response types

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type CreateQuestionResponse struct {
	QuestionID string `json:"question_id"`
}

type AddChoiceResponse struct {
	ChoiceID string `json:"choice_id"`
}

type VoteResponse struct {
	VoteID   string `json:"vote_id"`
	ChoiceID string `json:"choice_id"`
	Message  string `json:"message"`
}

// QuestionSummary is a list entry on the index endpoint.
type QuestionSummary struct {
	ID                   string    `json:"id"`
	Text                 string    `json:"text"`
	PubDate              time.Time `json:"pub_date"`
	PublishedAgo         string    `json:"published_ago"`
	WasPublishedRecently bool      `json:"was_published_recently"`
	CanVote              bool      `json:"can_vote"`
}

// QuestionDetail is the voting page payload. MyChoiceID is set when the
// requesting user has already voted on this question.
type QuestionDetail struct {
	Question   Question `json:"question"`
	Choices    []Choice `json:"choices"`
	MyChoiceID *string  `json:"my_choice_id,omitempty"`
}

type ChoiceTally struct {
	ChoiceID string `json:"choice_id"`
	Text     string `json:"text"`
	Votes    int    `json:"votes"`
}

type ResultsResponse struct {
	QuestionID string        `json:"question_id"`
	Text       string        `json:"text"`
	Results    []ChoiceTally `json:"results"`
}

// Domain types

type Choice struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`
}

type Vote struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"-"` // Never expose in JSON
	QuestionID string    `json:"question_id"`
	ChoiceID   string    `json:"choice_id"`
	CastAt     time.Time `json:"cast_at"`
}

type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	PassHash  []byte    `json:"-"` // Never expose in JSON
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
