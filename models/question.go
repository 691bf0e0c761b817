// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// RecentWindow is how far back a publication still counts as "recent".
const RecentWindow = 24 * time.Hour

// Question is a poll prompt with a publication window. EndDate is nil when
// voting stays open indefinitely.
type Question struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	PubDate   time.Time  `json:"pub_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// IsPublished reports whether the question is visible at the given instant.
func (q Question) IsPublished(now time.Time) bool {
	return !now.Before(q.PubDate)
}

// WasPublishedRecently reports whether the question was published within the
// last day. A future PubDate is never recent, even when it falls inside the
// next 24 hours.
func (q Question) WasPublishedRecently(now time.Time) bool {
	if now.Before(q.PubDate) {
		return false
	}
	return !q.PubDate.Before(now.Add(-RecentWindow))
}

// CanVote reports whether votes are accepted at the given instant. The window
// is inclusive on both ends; without an EndDate it never closes.
func (q Question) CanVote(now time.Time) bool {
	if now.Before(q.PubDate) {
		return false
	}
	if q.EndDate == nil {
		return true
	}
	return !now.After(*q.EndDate)
}
