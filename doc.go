// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pollbooth API server.

Pollbooth is a polling service: administrators publish questions with a
voting window, authenticated users cast one vote per question (revoting
changes the choice), and anyone can read the tallies.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... SESSION_SECRET=... go run main.go

Or with flags:

	go run main.go -p 8000 -d "postgres://..." -session-secret "..."

A .env file in the working directory is loaded when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - SESSION_SECRET (-session-secret): Secret for signing session tokens

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - SESSION_TTL (-session-ttl): Session lifetime (default: 24h)
  - ADMIN_EMAILS (-admin-emails): Emails granted admin on registration

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (accounts, questions, votes, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Auth guards, CORS, logging, JSON helpers
  - models: Domain and request/response types, voting-window logic
  - store: PostgreSQL persistence (question aggregate, vote ledger, accounts)
  - auth: Password hashing and session tokens
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
