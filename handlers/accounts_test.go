// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/danielhkuo/pollbooth/auth"
	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/testutil"
)

func TestRegister(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAccountHandler(db, cfg)

	tests := []struct {
		name           string
		body           models.RegisterRequest
		expectedStatus int
		wantAdmin      bool
	}{
		{
			name: "valid registration",
			body: models.RegisterRequest{
				Email:    gofakeit.Email(),
				Username: gofakeit.Username(),
				Password: "a-decent-password",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "admin email gets admin claim",
			body: models.RegisterRequest{
				Email:    "Admin@Example.com",
				Username: "theadmin",
				Password: "a-decent-password",
			},
			expectedStatus: http.StatusCreated,
			wantAdmin:      true,
		},
		{
			name:           "missing email",
			body:           models.RegisterRequest{Username: "bob", Password: "a-decent-password"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not an email",
			body:           models.RegisterRequest{Email: "bob", Username: "bob", Password: "a-decent-password"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "username too short",
			body:           models.RegisterRequest{Email: gofakeit.Email(), Username: "b", Password: "a-decent-password"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "password too short",
			body:           models.RegisterRequest{Email: gofakeit.Email(), Username: "bob", Password: "short"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/accounts/register", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Register(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.TokenResponse
				testutil.AssertJSON(t, w, &resp)

				claims, err := auth.ParseSessionToken(resp.AccessToken, cfg.SessionSecret)
				if err != nil {
					t.Fatalf("Returned token does not parse: %v", err)
				}
				if claims.Admin != tt.wantAdmin {
					t.Errorf("Expected admin=%v, got %v", tt.wantAdmin, claims.Admin)
				}
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAccountHandler(db, cfg)

	body := models.RegisterRequest{
		Email:    "taken@example.com",
		Username: "first",
		Password: "a-decent-password",
	}

	req := testutil.MakeRequest("POST", "/accounts/register", body, nil)
	w := httptest.NewRecorder()
	handler.Register(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	body.Username = "second"
	req = testutil.MakeRequest("POST", "/accounts/register", body, nil)
	w = httptest.NewRecorder()
	handler.Register(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAccountHandler(db, cfg)

	testutil.CreateTestAccount(t, db, cfg, "alice@example.com", "correct-password", false)

	tests := []struct {
		name           string
		body           models.LoginRequest
		expectedStatus int
	}{
		{"valid login", models.LoginRequest{Email: "alice@example.com", Password: "correct-password"}, http.StatusOK},
		{"case-insensitive email", models.LoginRequest{Email: "Alice@Example.com", Password: "correct-password"}, http.StatusOK},
		{"wrong password", models.LoginRequest{Email: "alice@example.com", Password: "wrong-password"}, http.StatusUnauthorized},
		{"unknown email", models.LoginRequest{Email: "nobody@example.com", Password: "correct-password"}, http.StatusUnauthorized},
		{"missing fields", models.LoginRequest{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/accounts/login", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.TokenResponse
				testutil.AssertJSON(t, w, &resp)
				if _, err := auth.ParseSessionToken(resp.AccessToken, cfg.SessionSecret); err != nil {
					t.Errorf("Returned token does not parse: %v", err)
				}
			}
		})
	}
}

func TestMe(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAccountHandler(db, cfg)
	wrapped := middleware.RequireUser(cfg.SessionSecret, handler.Me)

	accountID, token := testutil.CreateTestAccount(t, db, cfg, "alice@example.com", "correct-password", false)

	req := testutil.MakeRequest("GET", "/accounts/me", nil, testutil.AuthHeader(token))
	w := httptest.NewRecorder()
	wrapped(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var account models.Account
	testutil.AssertJSON(t, w, &account)
	if account.ID != accountID || account.Email != "alice@example.com" {
		t.Errorf("Unexpected account payload: %+v", account)
	}
	if len(account.PassHash) != 0 {
		t.Error("Password hash leaked in response")
	}

	// No token
	req = testutil.MakeRequest("GET", "/accounts/me", nil, nil)
	w = httptest.NewRecorder()
	wrapped(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// A token whose account row is gone
	if _, err := db.Exec(`DELETE FROM account WHERE id = $1`, accountID); err != nil {
		t.Fatalf("Failed to delete test account: %v", err)
	}
	req = testutil.MakeRequest("GET", "/accounts/me", nil, testutil.AuthHeader(token))
	w = httptest.NewRecorder()
	wrapped(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}
