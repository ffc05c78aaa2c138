// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for the news API.

It provides a rich error type that bridges the gap between low-level storage
errors and the client-facing `{status, msg, tip}` body.

Architecture:

  - Taxonomy: A closed, read-only catalogue mapping keys to {status, message, tip}.
  - AppError: An immutable value carrying one resolved taxonomy entry.
  - Construction: Either direct (domain errors such as not-found or invalid
    query) or derived from a raw database error code through the taxonomy.

Every error that leaves the service layer is an [AppError] so the HTTP layer
only has to read its status and body.
*/
package apperr

import (
	"errors"
	"fmt"
	"slices"
)

// AppError is the canonical error type for the news API.
//
// Fields are unexported so that a constructed value cannot be altered on its
// way to the response writer.
//
// # Security
//
// The cause is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	code    string
	status  int
	message string
	tip     string
	cause   error
	details []FieldError
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Body is the JSON shape written for every error response.
type Body struct {
	Status  int          `json:"status"`
	Msg     string       `json:"msg"`
	Tip     string       `json:"tip"`
	Details []FieldError `json:"details,omitempty"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.cause }

// Code returns the taxonomy key the error was resolved from.
func (e *AppError) Code() string { return e.code }

// Status returns the HTTP status code.
func (e *AppError) Status() int { return e.status }

// Message returns the client-safe message.
func (e *AppError) Message() string { return e.message }

// Tip returns the remediation hint shown to the client.
func (e *AppError) Tip() string { return e.tip }

// Details returns a copy of the per-field validation failures.
func (e *AppError) Details() []FieldError { return slices.Clone(e.details) }

// Body returns the client-facing representation of the error.
func (e *AppError) Body() Body {
	return Body{
		Status:  e.status,
		Msg:     e.message,
		Tip:     e.tip,
		Details: e.Details(),
	}
}

// # Direct Construction

// New creates an [AppError] from an explicit status, message and tip.
func New(code string, status int, message, tip string) *AppError {
	return &AppError{code: code, status: status, message: message, tip: tip}
}

// FromKey creates an [AppError] carrying the taxonomy entry for key.
func FromKey(key string) *AppError {
	if _, ok := taxonomy[key]; !ok {
		key = KeyDefault
	}
	entry := taxonomy[key]
	return New(key, entry.Status, entry.Message, entry.Tip)
}

// NotFound creates a 404 [AppError] naming the missing resource.
//
// Example:
//
//	apperr.NotFound("article", "9001") // "article: 9001 does not exist"
func NotFound(kind, identifier string) *AppError {
	entry := taxonomy[KeyNotFound]
	return New(KeyNotFound, entry.Status,
		fmt.Sprintf(entry.Message, kind, identifier),
		fmt.Sprintf(entry.Tip, kind),
	)
}

// InvalidQuery creates the 400 [AppError] for rejected sort, order or paging input.
func InvalidQuery() *AppError {
	return FromKey(KeyInvalidQuery)
}

// ValidationFailed creates a 400 [AppError] with per-field details.
func ValidationFailed(details ...FieldError) *AppError {
	err := FromKey(KeyValidationFailed)
	err.details = slices.Clone(details)
	return err
}

// # Derived Construction

// FromCode creates an [AppError] by resolving a raw database error code through
// the taxonomy. An unknown or empty code resolves to the DEFAULT entry.
// The cause is kept for server-side logging only.
func FromCode(sqlState string, cause error) *AppError {
	err := FromKey(KeyForSQLState(sqlState))
	err.cause = cause
	return err
}

// Internal creates the DEFAULT 500 [AppError] for an unclassified failure.
func Internal(cause error) *AppError {
	return FromCode("", cause)
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err is an [*AppError] resolved from key.
func HasCode(err error, key string) bool {
	ae := As(err)
	return ae != nil && ae.code == key
}
