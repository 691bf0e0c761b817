// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Pollbooth API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Accounts (public):

	POST /accounts/register - Register and receive a session token
	POST /accounts/login    - Log in and receive a session token

Polls:

	GET  /polls              - Latest five published questions (public)
	GET  /polls/{id}         - Voting page (authenticated, open questions)
	POST /polls/{id}/vote    - Cast or change a vote (authenticated)
	GET  /polls/{id}/results - Per-choice tallies (public)

Administration (admin session required):

	POST   /admin/questions              - Create question
	POST   /admin/questions/{id}/choices - Add choice
	DELETE /admin/questions/{id}         - Delete question (cascades)

# Handler Initialization

The router creates handler instances with dependency injection:

	accountHandler := handlers.NewAccountHandler(db, cfg)
	questionHandler := handlers.NewQuestionHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

Authenticated routes are wrapped in middleware.RequireUser or RequireAdmin;
every route is wrapped in middleware.WithLogging.
*/
package router
