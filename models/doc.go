// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Question: poll prompt with a publication window
  - Choice: one selectable answer under a question
  - Vote: a user's current choice, unique per (account, question)
  - Account: registered user identity

# Voting Window

Question carries the time-window logic as pure methods:

	q.IsPublished(now)          // now >= pub_date
	q.WasPublishedRecently(now) // pub_date within the last 24h, never future
	q.CanVote(now)              // pub_date <= now <= end_date (inclusive)

A question without an end date accepts votes indefinitely once published.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest, LoginRequest
  - CreateQuestionRequest: text, optional pub_date and end_date
  - AddChoiceRequest: text
  - VoteRequest: choice

# Response Types

Types for JSON responses:

  - TokenResponse: access_token
  - QuestionSummary: index list entry with published_ago text
  - QuestionDetail: question, choices, my_choice_id
  - ResultsResponse: per-choice tallies
  - VoteResponse: vote_id, choice_id, message
  - ErrorResponse: error, message

# Constants

	MaxTextLen   = 200            // bound on question and choice text
	RecentWindow = 24 * time.Hour // "published recently" horizon
*/
package models
