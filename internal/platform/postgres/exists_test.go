// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres_test

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsroom/internal/platform/apperr"
	"github.com/taibuivan/newsroom/internal/platform/postgres"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

/*
TestEnsureExists_Found verifies the probe is parameterized and passes silently.
*/
func TestEnsureExists_Found(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1 FROM "topics" WHERE "slug" = $1 LIMIT 1`)).
		WithArgs("mitch").
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))

	checker := postgres.NewExistenceChecker(mock)

	err := checker.EnsureExists(context.Background(), postgres.TopicBySlug, "mitch")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureExists_Missing(t *testing.T) {
	tests := []struct {
		name    string
		target  postgres.Target
		query   string
		value   any
		message string
	}{
		{"article", postgres.ArticleByID, `SELECT 1 FROM "articles" WHERE "article_id" = $1 LIMIT 1`, 9001, "article: 9001 does not exist"},
		{"comment", postgres.CommentByID, `SELECT 1 FROM "comments" WHERE "comment_id" = $1 LIMIT 1`, 77, "comment: 77 does not exist"},
		{"user", postgres.UserByUsername, `SELECT 1 FROM "users" WHERE "username" = $1 LIMIT 1`, "nobody", "user: nobody does not exist"},
		{"topic", postgres.TopicBySlug, `SELECT 1 FROM "topics" WHERE "slug" = $1 LIMIT 1`, "not-a-topic", "topic: not-a-topic does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).
				WithArgs(tt.value).
				WillReturnRows(pgxmock.NewRows([]string{"?column?"}))

			err := postgres.NewExistenceChecker(mock).EnsureExists(context.Background(), tt.target, tt.value)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusNotFound, ae.Status())
			assert.Equal(t, tt.message, ae.Message())
			assert.Equal(t, tt.name, tt.target.Kind())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnsureExists_DatabaseFailure(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT 1 FROM "users"`).
		WithArgs("butter_bridge").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable, Message: `relation "users" does not exist`})

	err := postgres.NewExistenceChecker(mock).EnsureExists(context.Background(), postgres.UserByUsername, "butter_bridge")

	assert.True(t, apperr.HasCode(err, apperr.KeyDBUndefinedTable))
	assert.Equal(t, http.StatusInternalServerError, apperr.As(err).Status())
}

func TestPing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectPing()
	assert.NoError(t, postgres.Ping(context.Background(), mock))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.ErrorContains(t, postgres.Ping(context.Background(), mock), "postgres: ping failed")
}
