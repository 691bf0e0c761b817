// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Pollbooth API.

# Handler Types

Each handler is a struct owning its stores, built from *sql.DB and Config:

  - AccountHandler: registration and login
  - QuestionHandler: index listing, voting page, results
  - VoteHandler: vote casting
  - AdminHandler: question and choice administration

	questionHandler := handlers.NewQuestionHandler(db, cfg)

# Question Lifecycle

Questions become visible at pub_date and accept votes until end_date
(inclusive); without an end_date voting never closes.

	POST   /admin/questions              → CreateQuestion
	POST   /admin/questions/{id}/choices → AddChoice
	DELETE /admin/questions/{id}         → DeleteQuestion (cascades)

Admin operations require a session whose account is on the admin list.

# Voting Flow

	GET  /polls              → List (latest 5 published, public)
	GET  /polls/{id}         → Detail (authenticated, open questions only)
	POST /polls/{id}/vote    → CastVote (authenticated)
	GET  /polls/{id}/results → Results (public)

CastVote enforces at most one vote per account per question: a repeat vote
reassigns the existing choice and answers 200 instead of 201.

# Error Mapping

Store sentinels map onto the HTTP surface:

	ErrQuestionNotFound → 404
	ErrChoiceNotFound   → 400
	ErrVotingClosed     → 403
	missing session     → 401 (middleware.RequireUser)
*/
package handlers
