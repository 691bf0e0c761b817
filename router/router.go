// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/handlers"
	"github.com/danielhkuo/pollbooth/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(db, cfg)
	questionHandler := handlers.NewQuestionHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	secret := cfg.SessionSecret

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts (public)
	mux.HandleFunc("POST /accounts/register", middleware.WithLogging(accountHandler.Register))
	mux.HandleFunc("POST /accounts/login", middleware.WithLogging(accountHandler.Login))
	mux.HandleFunc("GET /accounts/me", middleware.WithLogging(middleware.RequireUser(secret, accountHandler.Me)))

	// Polls (index and results public; detail and voting authenticated)
	mux.HandleFunc("GET /polls", middleware.WithLogging(questionHandler.List))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(middleware.RequireUser(secret, questionHandler.Detail)))
	mux.HandleFunc("POST /polls/{id}/vote", middleware.WithLogging(middleware.RequireUser(secret, voteHandler.CastVote)))
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(questionHandler.Results))

	// Administration (admin session required)
	mux.HandleFunc("POST /admin/questions", middleware.WithLogging(middleware.RequireAdmin(secret, adminHandler.CreateQuestion)))
	mux.HandleFunc("POST /admin/questions/{id}/choices", middleware.WithLogging(middleware.RequireAdmin(secret, adminHandler.AddChoice)))
	mux.HandleFunc("DELETE /admin/questions/{id}", middleware.WithLogging(middleware.RequireAdmin(secret, adminHandler.DeleteQuestion)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollbooth API v1"))
	})

	return mux
}
