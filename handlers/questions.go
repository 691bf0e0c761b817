// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/store"
)

type QuestionHandler struct {
	cfg       cliparse.Config
	questions *store.QuestionStore
	ledger    *store.VoteLedger
}

func NewQuestionHandler(db *sql.DB, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{
		cfg:       cfg,
		questions: store.NewQuestionStore(db),
		ledger:    store.NewVoteLedger(db),
	}
}

// List handles GET /polls
// Returns the latest five published questions, newest first. Questions
// scheduled for the future never appear.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	questions, err := h.questions.LatestPublished(r.Context(), now, store.DefaultListLimit)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	summaries := []models.QuestionSummary{}
	for _, q := range questions {
		summaries = append(summaries, models.QuestionSummary{
			ID:                   q.ID,
			Text:                 q.Text,
			PubDate:              q.PubDate,
			PublishedAgo:         humanize.Time(q.PubDate),
			WasPublishedRecently: q.WasPublishedRecently(now),
			CanVote:              q.CanVote(now),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// Detail handles GET /polls/{id} (authenticated)
// The voting page payload: question, choices, and the caller's current choice
// if any. Unpublished questions are hidden; closed ones are rejected.
func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	q, err := h.questions.QuestionByID(r.Context(), questionID)
	if errors.Is(err, store.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := time.Now()

	// A question scheduled for the future is indistinguishable from a
	// missing one.
	if !q.IsPublished(now) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	if !q.CanVote(now) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Voting is not allowed on this question")
		return
	}

	choices, err := h.questions.ChoicesOf(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	detail := models.QuestionDetail{
		Question: q,
		Choices:  choices,
	}

	if claims, ok := middleware.ClaimsFrom(r.Context()); ok {
		vote, err := h.ledger.VoteOf(r.Context(), claims.AccountID, q.ID)
		if err == nil {
			detail.MyChoiceID = &vote.ChoiceID
		} else if !errors.Is(err, store.ErrVoteNotFound) {
			slog.Error("failed to query existing vote", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	middleware.JSONResponse(w, http.StatusOK, detail)
}

// Results handles GET /polls/{id}/results
// Tallies are derived counts, recomputed on every request.
func (h *QuestionHandler) Results(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	q, err := h.questions.QuestionByID(r.Context(), questionID)
	if errors.Is(err, store.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if !q.IsPublished(time.Now()) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	tallies, err := h.ledger.TallyByQuestion(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to tally votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		QuestionID: q.ID,
		Text:       q.Text,
		Results:    tallies,
	})
}
