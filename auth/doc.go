// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identity primitives: ID generation, password hashing,
and session tokens.

# ID Generation

Random hex IDs for persisted rows:

	id, err := auth.GenerateID(16) // 32 hex chars

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password) // ErrInvalidCredentials on mismatch

# Session Tokens

Sessions are HS256 JWTs signed with the configured session secret, carrying
the account id, email, admin flag, and expiry:

	token, err := auth.NewSessionToken(account, cfg.SessionSecret, cfg.SessionTTL)
	claims, err := auth.ParseSessionToken(token, cfg.SessionSecret)

ParseSessionToken rejects expired, tampered, or non-HMAC tokens with
ErrInvalidToken. The middleware package turns that into a 401.
*/
package auth
