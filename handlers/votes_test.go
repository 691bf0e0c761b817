// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/testutil"
)

func TestCastVote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(db, cfg)
	wrapped := middleware.RequireUser(cfg.SessionSecret, handler.CastVote)

	accountID, token := testutil.CreateTestAccount(t, db, cfg, "voter@example.com", "password123", false)

	open := testutil.CreateTestQuestion(t, db, "Open question", -day(1), testutil.Days(3))
	choiceX := testutil.AddTestChoice(t, db, open, "X")
	choiceY := testutil.AddTestChoice(t, db, open, "Y")
	ended := testutil.CreateTestQuestion(t, db, "Ended question", -day(5), testutil.Days(-3))
	endedChoice := testutil.AddTestChoice(t, db, ended, "Too late")
	future := testutil.CreateTestQuestion(t, db, "Scheduled question", day(2), nil)
	futureChoice := testutil.AddTestChoice(t, db, future, "Too soon")

	otherQuestion := testutil.CreateTestQuestion(t, db, "Other question", -day(1), nil)
	otherChoice := testutil.AddTestChoice(t, db, otherQuestion, "Elsewhere")

	tests := []struct {
		name           string
		questionID     string
		token          string
		body           interface{}
		expectedStatus int
	}{
		{"unauthenticated", open, "", models.VoteRequest{Choice: choiceX}, http.StatusUnauthorized},
		{"no choice selected", open, token, models.VoteRequest{}, http.StatusBadRequest},
		{"invalid JSON", open, token, "not json", http.StatusBadRequest},
		{"unknown question", "no-such-id", token, models.VoteRequest{Choice: choiceX}, http.StatusNotFound},
		{"choice of another question", open, token, models.VoteRequest{Choice: otherChoice}, http.StatusBadRequest},
		{"voting closed", ended, token, models.VoteRequest{Choice: endedChoice}, http.StatusForbidden},
		{"not yet published", future, token, models.VoteRequest{Choice: futureChoice}, http.StatusNotFound},
		{"valid vote", open, token, models.VoteRequest{Choice: choiceX}, http.StatusCreated},
		{"revote updates choice", open, token, models.VoteRequest{Choice: choiceY}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var headers map[string]string
			if tt.token != "" {
				headers = testutil.AuthHeader(tt.token)
			}
			req := testutil.MakeRequest("POST", "/polls/"+tt.questionID+"/vote", tt.body, headers)
			req.SetPathValue("id", tt.questionID)
			w := httptest.NewRecorder()

			wrapped(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	// The failed attempts above must not have touched the ledger for the
	// closed or scheduled questions.
	if n := testutil.CountVotes(t, db, accountID, ended); n != 0 {
		t.Errorf("Closed question ledger changed: %d votes", n)
	}
	if n := testutil.CountVotes(t, db, accountID, future); n != 0 {
		t.Errorf("Scheduled question ledger changed: %d votes", n)
	}
}

func TestRevoteReplacesChoice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(db, cfg)
	wrapped := middleware.RequireUser(cfg.SessionSecret, handler.CastVote)

	accountID, token := testutil.CreateTestAccount(t, db, cfg, "voter@example.com", "password123", false)

	questionID := testutil.CreateTestQuestion(t, db, "Changing my mind", -day(1), nil)
	choiceX := testutil.AddTestChoice(t, db, questionID, "X")
	choiceY := testutil.AddTestChoice(t, db, questionID, "Y")

	cast := func(choiceID string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/polls/"+questionID+"/vote",
			models.VoteRequest{Choice: choiceID}, testutil.AuthHeader(token))
		req.SetPathValue("id", questionID)
		w := httptest.NewRecorder()
		wrapped(w, req)
		return w
	}

	// First vote creates
	w := cast(choiceX)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var first models.VoteResponse
	testutil.AssertJSON(t, w, &first)

	// Second vote updates the existing row
	w = cast(choiceY)
	testutil.AssertStatus(t, w, http.StatusOK)

	var second models.VoteResponse
	testutil.AssertJSON(t, w, &second)

	if first.VoteID != second.VoteID {
		t.Errorf("Revote created a new vote row: %s vs %s", first.VoteID, second.VoteID)
	}
	if second.ChoiceID != choiceY {
		t.Errorf("Expected choice %s after revote, got %s", choiceY, second.ChoiceID)
	}
	if n := testutil.CountVotes(t, db, accountID, questionID); n != 1 {
		t.Errorf("Expected exactly 1 vote row, got %d", n)
	}

	// Tally follows the latest choice only
	var tallyX, tallyY int
	db.QueryRow(`SELECT COUNT(*) FROM vote WHERE choice_id = $1`, choiceX).Scan(&tallyX)
	db.QueryRow(`SELECT COUNT(*) FROM vote WHERE choice_id = $1`, choiceY).Scan(&tallyY)
	if tallyX != 0 || tallyY != 1 {
		t.Errorf("Expected tallies X=0 Y=1, got X=%d Y=%d", tallyX, tallyY)
	}
}
