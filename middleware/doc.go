// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms) under
a per-request id.

# Authentication

RequireUser validates the Authorization Bearer session token and stores the
claims in the request context; RequireAdmin additionally requires the admin
claim:

	mux.HandleFunc("POST /polls/{id}/vote",
		middleware.WithLogging(middleware.RequireUser(cfg.SessionSecret, voteHandler.CastVote)))

Handlers read the identity back with:

	claims, ok := middleware.ClaimsFrom(r.Context())

Anonymous requests to protected routes get a 401 without reaching the handler.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
