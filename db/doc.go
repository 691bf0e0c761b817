// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Production deployments run the versioned migrations in migrations/ via
cmd/migrator instead.

# Tables

The schema includes:

  - account: Registered users and their admin flag
  - question: Poll prompts with pub_date and optional end_date
  - choice: Answers per question, insertion-ordered via seq
  - vote: One row per (account, question), reassigned on revote

# Relationships

	question 1──* choice
	choice   1──* vote
	account  1──* vote (at most one per question)

All foreign keys use ON DELETE CASCADE.

# Constraints

  - question.end_date must not precede pub_date
  - question and choice text capped at 200 characters
  - vote UNIQUE (account_id, question_id) backs the one-vote invariant
    against racing inserts

# Indexes

Performance indexes on:

  - account.email (unique)
  - question.pub_date
  - choice.question_id
  - vote.choice_id
  - vote.question_id
*/
package db
