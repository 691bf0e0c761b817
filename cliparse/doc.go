// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: PostgreSQL connection string (required)
  - SessionSecret: Secret for signing session tokens (required)
  - SessionTTL: Session token lifetime (default: 24h)
  - AdminEmails: Emails granted admin rights on registration

# CLI Flags

	-p               Server port
	-d               Database URL
	-session-secret  Session signing secret
	-session-ttl     Session lifetime (Go duration syntax)
	-admin-emails    Comma-separated admin email list

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	SESSION_SECRET → -session-secret
	SESSION_TTL    → -session-ttl
	ADMIN_EMAILS   → -admin-emails

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - SESSION_SECRET must be provided
  - SESSION_TTL, when set, must be a positive duration

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(db, cfg)
*/
package cliparse
