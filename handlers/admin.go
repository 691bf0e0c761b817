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

type AdminHandler struct {
	cfg       cliparse.Config
	questions *store.QuestionStore
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{cfg: cfg, questions: store.NewQuestionStore(db)}
}

// CreateQuestion handles POST /admin/questions
// Omitting pub_date publishes immediately; omitting end_date leaves voting
// open indefinitely.
func (h *AdminHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	pubDate := time.Now()
	if req.PubDate != nil {
		pubDate = *req.PubDate
	}

	q, err := h.questions.CreateQuestion(r.Context(), req.Text, pubDate, req.EndDate)
	switch {
	case errors.Is(err, store.ErrTextTooLong):
		middleware.ErrorResponse(w, http.StatusBadRequest, "text must be at most 200 characters")
		return
	case errors.Is(err, store.ErrInvalidWindow):
		middleware.ErrorResponse(w, http.StatusBadRequest, "end_date must not precede pub_date")
		return
	case err != nil:
		slog.Error("failed to create question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", q.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuestionResponse{
		QuestionID: q.ID,
	})
}

// AddChoice handles POST /admin/questions/{id}/choices
func (h *AdminHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	var req models.AddChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	choice, err := h.questions.AddChoice(r.Context(), questionID, req.Text)
	switch {
	case errors.Is(err, store.ErrQuestionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	case errors.Is(err, store.ErrTextTooLong):
		middleware.ErrorResponse(w, http.StatusBadRequest, "text must be at most 200 characters")
		return
	case err != nil:
		slog.Error("failed to add choice", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add choice")
		return
	}

	slog.Info("choice added", "question_id", questionID, "choice_id", choice.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddChoiceResponse{
		ChoiceID: choice.ID,
	})
}

// DeleteQuestion handles DELETE /admin/questions/{id}
// Choices and votes cascade with the question.
func (h *AdminHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	err := h.questions.DeleteQuestion(r.Context(), questionID)
	if errors.Is(err, store.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete question", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete question")
		return
	}

	slog.Info("question deleted", "question_id", questionID)

	w.WriteHeader(http.StatusNoContent)
}
