// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// ("limit" and "p") and how the resulting metadata is delivered alongside
// the listed items.
package pagination

import "fmt"

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// MaxLimit is the upper bound for items per page.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds a validated page and limit.
type Params struct {
	Page  int
	Limit int
}

// Valid reports whether the params describe a reachable page.
func (p Params) Valid() bool {
	return p.Page >= 1 && p.Limit >= 1 && p.Limit <= MaxLimit
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	TotalCount int    `json:"total_count"`
	Page       int    `json:"page"`
	Displaying string `json:"displaying"`
}

// NewMeta constructs pagination metadata for a response.
//
// TotalCount is the size of the filtered set before pagination.
func NewMeta(params Params, total int) Meta {
	offset := params.Offset()
	return Meta{
		TotalCount: total,
		Page:       params.Page,
		Displaying: fmt.Sprintf("showing results %d to %d", offset+1, offset+params.Limit),
	}
}
