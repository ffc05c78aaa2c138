// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer bridges optional request fields and plain values.
//
// Create inputs carry *string fields so that an absent JSON key reaches the
// database as NULL; these helpers build and read such fields.
package pointer

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, yielding the zero value for nil.
func Val[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
