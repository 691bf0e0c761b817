// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "errors"

// Sentinel errors returned by the stores. Handlers map these to HTTP
// statuses; none of them indicates a defect and none is retried.
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrChoiceNotFound   = errors.New("choice not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrVoteNotFound     = errors.New("vote not found")
	ErrVotingClosed     = errors.New("voting is closed for this question")
	ErrInvalidWindow    = errors.New("end date precedes publication date")
	ErrTextTooLong      = errors.New("text exceeds maximum length")
	ErrEmailTaken       = errors.New("email already registered")
)
