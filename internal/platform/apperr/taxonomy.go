// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr

import (
	"net/http"

	"github.com/jackc/pgerrcode"
)

// # Taxonomy Keys

const (
	KeyNotFound                    = "NOT_FOUND"
	KeyInvalidQuery                = "INVALID_QUERY"
	KeyDBInvalidTextRepresentation = "DB_INVALID_TEXT_REPRESENTATION"
	KeyDBNotNullViolation          = "DB_NOT_NULL_VIOLATION"
	KeyDBForeignKeyViolation       = "DB_FOREIGN_KEY_VIOLATION"
	KeyDBUndefinedTable            = "DB_UNDEFINED_TABLE"
	KeyDefault                     = "DEFAULT"

	KeyPathNotFound     = "PATH_NOT_FOUND"
	KeyMethodNotAllowed = "METHOD_NOT_ALLOWED"
	KeyInvalidJSON      = "INVALID_JSON"
	KeyValidationFailed = "VALIDATION_FAILED"
	KeyRateLimited      = "RATE_LIMITED"
)

// Entry is the client-facing triple a taxonomy key resolves to.
type Entry struct {
	Status  int
	Message string
	Tip     string
}

// taxonomy is read-only after package initialisation.
// [KeyNotFound] holds the template used by [NotFound]; its message and tip
// are formatted with the resource kind and identifier.
var taxonomy = map[string]Entry{
	KeyNotFound: {
		Status:  http.StatusNotFound,
		Message: "%s: %s does not exist",
		Tip:     "Try a different %s",
	},
	KeyInvalidQuery: {
		Status:  http.StatusBadRequest,
		Message: "Bad request: invalid query",
		Tip:     "Check sort_by, order, limit and p against the values listed at GET /api",
	},
	KeyDBInvalidTextRepresentation: {
		Status:  http.StatusBadRequest,
		Message: "Bad request: a value has the wrong type",
		Tip:     "Identifiers, limits, pages and vote increments must be whole numbers",
	},
	KeyDBNotNullViolation: {
		Status:  http.StatusBadRequest,
		Message: "Bad request: a required field is missing",
		Tip:     "Include every required field in the request body",
	},
	KeyDBForeignKeyViolation: {
		Status:  http.StatusBadRequest,
		Message: "Bad request: a referenced resource does not exist",
		Tip:     "Make sure the referenced author, topic or article exists",
	},
	KeyDBUndefinedTable: {
		Status:  http.StatusInternalServerError,
		Message: "The table or database you tried to reference may not exist",
		Tip:     "Make sure your PSQL server has been spun up and seeded",
	},
	KeyDefault: {
		Status:  http.StatusInternalServerError,
		Message: "Something went wrong :(",
		Tip:     "Please try again later",
	},
	KeyPathNotFound: {
		Status:  http.StatusNotFound,
		Message: "Path Not Found :(",
		Tip:     "GET /api lists every available endpoint",
	},
	KeyMethodNotAllowed: {
		Status:  http.StatusMethodNotAllowed,
		Message: "Method not allowed",
		Tip:     "GET /api lists the methods each endpoint accepts",
	},
	KeyInvalidJSON: {
		Status:  http.StatusBadRequest,
		Message: "Bad request: invalid JSON payload",
		Tip:     "Send a well-formed JSON object as the request body",
	},
	KeyValidationFailed: {
		Status:  http.StatusBadRequest,
		Message: "Bad request: validation failed",
		Tip:     "See details for the fields that need fixing",
	},
	KeyRateLimited: {
		Status:  http.StatusTooManyRequests,
		Message: "Too many requests",
		Tip:     "Slow down and retry shortly",
	},
}

// sqlStateKeys maps the SQLSTATE codes we classify onto taxonomy keys.
var sqlStateKeys = map[string]string{
	pgerrcode.InvalidTextRepresentation: KeyDBInvalidTextRepresentation,
	pgerrcode.NotNullViolation:          KeyDBNotNullViolation,
	pgerrcode.ForeignKeyViolation:       KeyDBForeignKeyViolation,
	pgerrcode.UndefinedTable:            KeyDBUndefinedTable,
}

// Lookup returns the entry for key, or the [KeyDefault] entry when key is
// not part of the taxonomy.
func Lookup(key string) Entry {
	if entry, ok := taxonomy[key]; ok {
		return entry
	}
	return taxonomy[KeyDefault]
}

// KeyForSQLState resolves a database error code to its taxonomy key.
// Unknown and empty codes resolve to [KeyDefault].
func KeyForSQLState(code string) string {
	if key, ok := sqlStateKeys[code]; ok {
		return key
	}
	return KeyDefault
}
