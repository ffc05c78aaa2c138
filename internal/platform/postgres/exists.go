// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/newsroom/internal/platform/apperr"
	"github.com/taibuivan/newsroom/internal/platform/database/schema"
	"github.com/taibuivan/newsroom/internal/platform/dberr"
)

// # Existence Targets

// Target names a table/column pair that can be probed for a value.
//
// The fields are unexported: the only targets are the package-level values
// below, so no table or column name can originate from client input.
type Target struct {
	table  string
	column string
	kind   string
}

// Kind returns the resource name used in not-found messages.
func (t Target) Kind() string { return t.kind }

var (
	TopicBySlug    = Target{table: schema.Topic.Table, column: schema.Topic.Slug, kind: "topic"}
	ArticleByID    = Target{table: schema.Article.Table, column: schema.Article.ID, kind: "article"}
	CommentByID    = Target{table: schema.Comment.Table, column: schema.Comment.ID, kind: "comment"}
	UserByUsername = Target{table: schema.User.Table, column: schema.User.Username, kind: "user"}
)

// query renders the probe with quoted identifiers and a bound value.
func (t Target) query() string {
	return fmt.Sprintf("SELECT 1 FROM %s WHERE %s = $1 LIMIT 1",
		pgx.Identifier{t.table}.Sanitize(),
		pgx.Identifier{t.column}.Sanitize(),
	)
}

// # Existence Checker

// ExistenceChecker turns "zero rows" into a domain-level not-found error.
type ExistenceChecker struct {
	db Querier
}

// NewExistenceChecker constructs a checker over the given connection.
func NewExistenceChecker(db Querier) *ExistenceChecker {
	return &ExistenceChecker{db: db}
}

/*
EnsureExists returns nil when a row in target matches value.

Returns:
  - nil: A matching row exists
  - error: apperr NOT_FOUND naming target.Kind() and value, or the wrapped
    database failure
*/
func (checker *ExistenceChecker) EnsureExists(ctx context.Context, target Target, value any) error {
	var found int
	err := checker.db.QueryRow(ctx, target.query(), value).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(target.kind, fmt.Sprint(value))
	}
	if err != nil {
		return dberr.Wrap(err, "ensure_"+target.kind+"_exists")
	}
	return nil
}
