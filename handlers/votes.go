// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/store"
)

type VoteHandler struct {
	cfg    cliparse.Config
	ledger *store.VoteLedger
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{cfg: cfg, ledger: store.NewVoteLedger(db)}
}

// CastVote handles POST /polls/{id}/vote (authenticated)
// A second vote on the same question reassigns the caller's existing vote.
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Choice == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "You didn't select a choice")
		return
	}

	vote, updated, err := h.ledger.CastVote(r.Context(), claims.AccountID, questionID, req.Choice, time.Now())
	switch {
	case errors.Is(err, store.ErrQuestionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	case errors.Is(err, store.ErrChoiceNotFound):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid choice for this question")
		return
	case errors.Is(err, store.ErrVotingClosed):
		middleware.ErrorResponse(w, http.StatusForbidden, "Voting is not allowed on this question")
		return
	case err != nil:
		slog.Error("failed to cast vote", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	status := http.StatusCreated
	message := "Vote recorded"
	if updated {
		status = http.StatusOK
		message = "Vote updated"
	}

	slog.Info("vote cast", "question_id", questionID, "vote_id", vote.ID, "is_update", updated)

	middleware.JSONResponse(w, status, models.VoteResponse{
		VoteID:   vote.ID,
		ChoiceID: vote.ChoiceID,
		Message:  message,
	})
}
