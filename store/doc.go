// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistence layer over PostgreSQL.

# Stores

Three stores share one *sql.DB:

	questions := store.NewQuestionStore(db)
	ledger := store.NewVoteLedger(db)
	accounts := store.NewAccountStore(db)

QuestionStore owns the question/choice aggregate: administrative creation and
deletion plus the read-only queries the handlers consume (LatestPublished,
QuestionByID, ChoicesOf).

VoteLedger enforces the one-vote-per-(account, question) invariant. CastVote
runs a read-then-update-or-insert transaction; the schema's unique constraint
covers the window where two first votes from the same account race. Tallies
are derived counts, recomputed on every read.

AccountStore persists registered users for the auth layer.

# Errors

Stores return sentinel errors (ErrQuestionNotFound, ErrVotingClosed,
ErrChoiceNotFound, ...) wrapped with an operation prefix:

	if errors.Is(err, store.ErrVotingClosed) { ... }

All of them are recoverable validation outcomes, surfaced to the user by the
handlers; none is retried.
*/
package store
