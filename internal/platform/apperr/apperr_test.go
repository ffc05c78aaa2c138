// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsroom/internal/platform/apperr"
)

/*
TestFromCode_Taxonomy verifies that every classified SQLSTATE resolves to its entry.
*/
func TestFromCode_Taxonomy(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		key    string
		status int
	}{
		{"invalid_text_representation", "22P02", apperr.KeyDBInvalidTextRepresentation, http.StatusBadRequest},
		{"not_null_violation", "23502", apperr.KeyDBNotNullViolation, http.StatusBadRequest},
		{"foreign_key_violation", "23503", apperr.KeyDBForeignKeyViolation, http.StatusBadRequest},
		{"undefined_table", "42P01", apperr.KeyDBUndefinedTable, http.StatusInternalServerError},
		{"unique_violation_unclassified", "23505", apperr.KeyDefault, http.StatusInternalServerError},
		{"no_code", "", apperr.KeyDefault, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cause := errors.New("driver detail: SELECT * FROM secret_table")
			err := apperr.FromCode(tt.code, cause)

			assert.Equal(t, tt.key, err.Code())
			assert.Equal(t, tt.status, err.Status())
			assert.NotEmpty(t, err.Message())
			assert.NotEmpty(t, err.Tip())
			assert.ErrorIs(t, err, cause)
			assert.NotContains(t, err.Message(), "secret_table")
		})
	}
}

/*
TestLookup_Fallback ensures unknown keys never produce an empty body.
*/
func TestLookup_Fallback(t *testing.T) {
	entry := apperr.Lookup("NO_SUCH_KEY")
	assert.Equal(t, apperr.Lookup(apperr.KeyDefault), entry)
	assert.Equal(t, http.StatusInternalServerError, entry.Status)

	err := apperr.FromKey("NO_SUCH_KEY")
	assert.Equal(t, apperr.KeyDefault, err.Code())
}

func TestNotFound_Message(t *testing.T) {
	err := apperr.NotFound("article", "9001")

	assert.Equal(t, http.StatusNotFound, err.Status())
	assert.Equal(t, "article: 9001 does not exist", err.Message())
	assert.Contains(t, err.Tip(), "article")
	assert.Equal(t, apperr.KeyNotFound, err.Code())
}

func TestAs_WrappedChain(t *testing.T) {
	original := apperr.InvalidQuery()
	wrapped := fmt.Errorf("list articles: %w", original)

	require.True(t, apperr.IsAppError(wrapped))
	assert.Same(t, original, apperr.As(wrapped))
	assert.True(t, apperr.HasCode(wrapped, apperr.KeyInvalidQuery))
	assert.Nil(t, apperr.As(errors.New("plain")))
}

/*
TestBody_Shape checks the client-facing body never carries the cause.
*/
func TestBody_Shape(t *testing.T) {
	err := apperr.FromCode("42P01", errors.New(`relation "articles" does not exist`))
	body := err.Body()

	assert.Equal(t, http.StatusInternalServerError, body.Status)
	assert.Equal(t, err.Message(), body.Msg)
	assert.Equal(t, err.Tip(), body.Tip)
	assert.Empty(t, body.Details)
}

func TestValidationFailed_DetailsAreCopied(t *testing.T) {
	details := []apperr.FieldError{{Field: "slug", Message: "Must be a valid URL slug"}}
	err := apperr.ValidationFailed(details...)

	details[0].Field = "mutated"
	got := err.Details()
	got[0].Message = "mutated"

	assert.Equal(t, "slug", err.Details()[0].Field)
	assert.Equal(t, "Must be a valid URL slug", err.Details()[0].Message)
}
