// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsroom/internal/platform/apperr"
	"github.com/taibuivan/newsroom/internal/platform/validate"
)

/*
TestIsValidSortColumn checks the whitelist, including injection payloads.
*/
func TestIsValidSortColumn(t *testing.T) {
	for _, column := range []string{"title", "topic", "author", "body", "created_at", "votes", "article_id"} {
		assert.True(t, validate.IsValidSortColumn(column), column)
	}

	rejected := []string{
		"",
		"comment_count",
		"TITLE",
		"title ",
		"title; DROP TABLE articles;--",
		"votes desc, (SELECT 1)",
		"articles.title",
	}
	for _, column := range rejected {
		assert.False(t, validate.IsValidSortColumn(column), column)
	}
}

func TestIsValidOrder(t *testing.T) {
	assert.True(t, validate.IsValidOrder("asc"))
	assert.True(t, validate.IsValidOrder("desc"))

	for _, order := range []string{"", "ASC", "up", "desc; DELETE FROM comments"} {
		assert.False(t, validate.IsValidOrder(order), order)
	}
}

func TestSortColumns_ReturnsCopy(t *testing.T) {
	columns := validate.SortColumns()
	columns[0] = "password"

	assert.False(t, validate.IsValidSortColumn("password"))
}

/*
TestInt covers the id/limit/page coercion path.
*/
func TestInt(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		isValid bool
	}{
		{"positive", "9001", 9001, true},
		{"negative", "-3", -3, true},
		{"word", "banana", 0, false},
		{"injection", "1; DROP TABLE articles", 0, false},
		{"float", "1.5", 0, false},
		{"overflow_int4", "99999999999", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validate.Int(tt.raw)

			if tt.isValid {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, apperr.KeyDBInvalidTextRepresentation))
			assert.Equal(t, 400, apperr.As(err).Status())
		})
	}
}

func TestIntDefault(t *testing.T) {
	got, err := validate.IntDefault("", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	got, err = validate.IntDefault("5", 10)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	_, err = validate.IntDefault("five", 10)
	assert.True(t, apperr.HasCode(err, apperr.KeyDBInvalidTextRepresentation))
}

func TestIntFromJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *int
		isValid bool
	}{
		{"absent", "", nil, true},
		{"null", "null", nil, true},
		{"positive", "40", intPtr(40), true},
		{"negative", " -400 ", intPtr(-400), true},
		{"string", `"forty"`, nil, false},
		{"numeric_string", `"40"`, nil, false},
		{"fraction", "1.5", nil, false},
		{"object", `{"x":1}`, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validate.IntFromJSON(json.RawMessage(tt.raw))

			if !tt.isValid {
				assert.True(t, apperr.HasCode(err, apperr.KeyDBInvalidTextRepresentation))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestValidator_Slug verifies topic slugs must already be normalized.
*/
func TestValidator_Slug(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"simple", "mitch", true},
		{"hyphenated", "cooking-101", true},
		{"uppercase", "Mitch", false},
		{"spaces", "paper cats", false},
		{"accents", "café", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Slug("slug", tt.value)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("slug", "").
		Slug("slug", "").
		MaxLen("description", "abcdef", 3).
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.KeyValidationFailed, ae.Code())
	assert.Len(t, ae.Details(), 3)
}

func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.Required("slug", "mitch").Slug("slug", "mitch").MaxLen("slug", "mitch", 10).Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

func intPtr(n int) *int { return &n }

func TestPage(t *testing.T) {
	params, err := validate.Page("", "")
	require.NoError(t, err)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, 1, params.Page)

	params, err = validate.Page("5", "3")
	require.NoError(t, err)
	assert.Equal(t, 5, params.Limit)
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 10, params.Offset())

	_, err = validate.Page("ten", "1")
	assert.True(t, apperr.HasCode(err, apperr.KeyDBInvalidTextRepresentation))

	_, err = validate.Page("10", "first")
	assert.True(t, apperr.HasCode(err, apperr.KeyDBInvalidTextRepresentation))

	_, err = validate.Page("0", "1")
	assert.True(t, apperr.HasCode(err, apperr.KeyInvalidQuery))

	_, err = validate.Page("10", "-1")
	assert.True(t, apperr.HasCode(err, apperr.KeyInvalidQuery))

	_, err = validate.Page("1000", "1")
	assert.True(t, apperr.HasCode(err, apperr.KeyInvalidQuery))
}
