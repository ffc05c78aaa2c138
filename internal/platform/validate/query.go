// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/jackc/pgerrcode"

	"github.com/taibuivan/newsroom/internal/platform/apperr"
	"github.com/taibuivan/newsroom/pkg/pagination"
)

// # Sort Whitelists

// Column names and directions cannot be bound as parameters, so they are
// interpolated only after matching one of these values exactly.
var (
	sortColumns = []string{"title", "topic", "author", "body", "created_at", "votes", "article_id"}
	sortOrders  = []string{"asc", "desc"}
)

// IsValidSortColumn reports whether name is a sortable article column.
func IsValidSortColumn(name string) bool {
	return slices.Contains(sortColumns, name)
}

// IsValidOrder reports whether direction is "asc" or "desc".
func IsValidOrder(direction string) bool {
	return slices.Contains(sortOrders, direction)
}

// SortColumns returns the sortable article columns.
func SortColumns() []string {
	return slices.Clone(sortColumns)
}

// # Integer Coercion

// Int parses raw as a 32-bit integer, matching INTEGER columns.
//
// A malformed value resolves to the same invalid-type error PostgreSQL raises
// for a bad bound parameter (SQLSTATE 22P02), without the round trip.
func Int(raw string) (int, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, invalidType(raw, err)
	}
	return int(n), nil
}

// IntDefault parses raw with [Int], returning def when raw is empty.
func IntDefault(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return Int(raw)
}

// IntFromJSON decodes an optional integer body field.
//
// An absent or null field returns nil so that it is bound as SQL NULL and
// the database reports the missing value. A present value that is not a whole
// number fails with the invalid-type error.
func IntFromJSON(raw json.RawMessage) (*int, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var n int32
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return nil, invalidType(string(trimmed), err)
	}

	value := int(n)
	return &value, nil
}

// # Paging

// Page coerces the raw "limit" and "p" query values.
//
// Empty values take the package defaults. Non-numeric values fail with the
// invalid-type error; numbers outside 1..MaxLimit (limit) or below 1 (page)
// fail with INVALID_QUERY.
func Page(limitRaw, pageRaw string) (pagination.Params, error) {
	limit, err := IntDefault(limitRaw, pagination.DefaultLimit)
	if err != nil {
		return pagination.Params{}, err
	}

	page, err := IntDefault(pageRaw, pagination.DefaultPage)
	if err != nil {
		return pagination.Params{}, err
	}

	params := pagination.Params{Page: page, Limit: limit}
	if !params.Valid() {
		return pagination.Params{}, apperr.InvalidQuery()
	}

	return params, nil
}

func invalidType(raw string, err error) error {
	return apperr.FromCode(pgerrcode.InvalidTextRepresentation,
		fmt.Errorf("validate: %q is not an integer: %w", raw, err))
}
