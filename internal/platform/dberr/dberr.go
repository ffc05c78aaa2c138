// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/newsroom/internal/platform/apperr"
)

// Wrap inspects a database error and resolves it into an [apperr.AppError].
//
// An error that is already an [apperr.AppError] passes through untouched.
// A PostgreSQL error is classified by its SQLSTATE; anything else (dial
// failures, closed pools, cancelled contexts) carries no code and resolves to
// the DEFAULT entry. The action is recorded on the cause for server logs only.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if appError := apperr.As(err); appError != nil {
		return appError
	}

	cause := fmt.Errorf("postgres: %s: %w", action, err)

	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		return apperr.FromCode(pgError.Code, cause)
	}

	return apperr.Internal(cause)
}

// Code returns the SQLSTATE carried by err, or "" when err is not a
// PostgreSQL error.
func Code(err error) string {
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		return pgError.Code
	}
	return ""
}
