// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/testutil"
)

func TestCreateQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(db, cfg)
	wrapped := middleware.RequireAdmin(cfg.SessionSecret, handler.CreateQuestion)

	_, adminToken := testutil.CreateTestAccount(t, db, cfg, "admin@example.com", "password123", true)
	_, voterToken := testutil.CreateTestAccount(t, db, cfg, "voter@example.com", "password123", false)

	now := time.Now()
	past := now.Add(-time.Hour)

	tests := []struct {
		name           string
		token          string
		body           interface{}
		expectedStatus int
	}{
		{"unauthenticated", "", models.CreateQuestionRequest{Text: "Q?"}, http.StatusUnauthorized},
		{"non-admin", voterToken, models.CreateQuestionRequest{Text: "Q?"}, http.StatusForbidden},
		{"missing text", adminToken, models.CreateQuestionRequest{}, http.StatusBadRequest},
		{"text too long", adminToken, models.CreateQuestionRequest{Text: strings.Repeat("x", 201)}, http.StatusBadRequest},
		{"inverted window", adminToken, models.CreateQuestionRequest{Text: "Q?", PubDate: &now, EndDate: &past}, http.StatusBadRequest},
		{"valid question", adminToken, models.CreateQuestionRequest{Text: "What's new?"}, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var headers map[string]string
			if tt.token != "" {
				headers = testutil.AuthHeader(tt.token)
			}
			req := testutil.MakeRequest("POST", "/admin/questions", tt.body, headers)
			w := httptest.NewRecorder()

			wrapped(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.CreateQuestionResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.QuestionID == "" {
					t.Error("Expected non-empty question_id")
				}
			}
		})
	}
}

func TestAddChoice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(db, cfg)
	wrapped := middleware.RequireAdmin(cfg.SessionSecret, handler.AddChoice)

	_, adminToken := testutil.CreateTestAccount(t, db, cfg, "admin@example.com", "password123", true)
	questionID := testutil.CreateTestQuestion(t, db, "Needs choices", -time.Hour, nil)

	tests := []struct {
		name           string
		questionID     string
		body           interface{}
		expectedStatus int
	}{
		{"missing text", questionID, models.AddChoiceRequest{}, http.StatusBadRequest},
		{"unknown question", "no-such-id", models.AddChoiceRequest{Text: "Orphan"}, http.StatusNotFound},
		{"valid choice", questionID, models.AddChoiceRequest{Text: "A fine choice"}, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/admin/questions/"+tt.questionID+"/choices",
				tt.body, testutil.AuthHeader(adminToken))
			req.SetPathValue("id", tt.questionID)
			w := httptest.NewRecorder()

			wrapped(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestDeleteQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(db, cfg)
	wrapped := middleware.RequireAdmin(cfg.SessionSecret, handler.DeleteQuestion)

	_, adminToken := testutil.CreateTestAccount(t, db, cfg, "admin@example.com", "password123", true)
	accountID, _ := testutil.CreateTestAccount(t, db, cfg, "voter@example.com", "password123", false)

	questionID := testutil.CreateTestQuestion(t, db, "Doomed question", -day(1), nil)
	choiceID := testutil.AddTestChoice(t, db, questionID, "Doomed choice")
	testutil.CastTestVote(t, db, accountID, questionID, choiceID)

	req := testutil.MakeRequest("DELETE", "/admin/questions/"+questionID, nil, testutil.AuthHeader(adminToken))
	req.SetPathValue("id", questionID)
	w := httptest.NewRecorder()

	wrapped(w, req)

	testutil.AssertStatus(t, w, http.StatusNoContent)

	// Choices and votes cascade with the question
	var questions, choices, votes int
	db.QueryRow(`SELECT COUNT(*) FROM question WHERE id = $1`, questionID).Scan(&questions)
	db.QueryRow(`SELECT COUNT(*) FROM choice WHERE question_id = $1`, questionID).Scan(&choices)
	db.QueryRow(`SELECT COUNT(*) FROM vote WHERE question_id = $1`, questionID).Scan(&votes)
	if questions != 0 || choices != 0 || votes != 0 {
		t.Errorf("Expected full cascade, got question=%d choice=%d vote=%d", questions, choices, votes)
	}

	t.Run("unknown question", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/admin/questions/no-such-id", nil, testutil.AuthHeader(adminToken))
		req.SetPathValue("id", "no-such-id")
		w := httptest.NewRecorder()

		wrapped(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}
