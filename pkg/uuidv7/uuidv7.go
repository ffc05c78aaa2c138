// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 generates time-ordered identifiers for request correlation.
// Sorting request IDs lexically sorts them by arrival time, which keeps
// log searches for a time range cheap.
package uuidv7

import "github.com/google/uuid"

// New returns a UUIDv7 string. If the clock-sequence generator fails it
// falls back to a random UUIDv4, so callers always receive a valid ID.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
