// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// Success bodies wrap the payload under a single resource key, such as
// {"article": {...}} or {"topics": [...]}. Paginated lists add the
// pagination metadata beside the key. Error bodies are always the
// {status, msg, tip} shape produced by [apperr.AppError.Body].
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taibuivan/newsroom/internal/platform/apperr"
	"github.com/taibuivan/newsroom/internal/platform/ctxutil"
	"github.com/taibuivan/newsroom/pkg/pagination"
)

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data under key.
func OK(writer http.ResponseWriter, key string, data any) {
	JSON(writer, http.StatusOK, map[string]any{key: data})
}

// Created writes a 201 Created response with data under key.
func Created(writer http.ResponseWriter, key string, data any) {
	JSON(writer, http.StatusCreated, map[string]any{key: data})
}

// Paginated writes a 200 OK response with items under key and the
// pagination metadata as sibling fields.
func Paginated(writer http.ResponseWriter, key string, items any, metadata pagination.Meta) {
	JSON(writer, http.StatusOK, map[string]any{
		key:           items,
		"total_count": metadata.TotalCount,
		"page":        metadata.Page,
		"displaying":  metadata.Displaying,
	})
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

/*
Error converts any Go error into the standardized {status, msg, tip} body.

Errors that are not an [*apperr.AppError] are logged and answered with the
DEFAULT entry. Every 5xx is logged with its cause; the cause never reaches
the client.
*/
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	logger := ctxutil.GetLogger(request.Context())
	requestID := ctxutil.GetRequestID(request.Context())

	appError := apperr.As(err)
	if appError == nil {
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", requestID),
		)
		appError = apperr.Internal(err)
	}

	if appError.Status() >= http.StatusInternalServerError {
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code()),
			slog.String("request_id", requestID),
			slog.Any("cause", appError.Unwrap()),
		)
	}

	JSON(writer, appError.Status(), appError.Body())
}
