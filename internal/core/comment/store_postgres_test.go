package comment_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsroom/internal/core/comment"
	"github.com/taibuivan/newsroom/internal/platform/apperr"
	"github.com/taibuivan/newsroom/pkg/pagination"
	"github.com/taibuivan/newsroom/pkg/pointer"
)

var commentRow = []string{"comment_id", "article_id", "author", "body", "votes", "created_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestPostgresRepository_ListComments(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT CAST(COUNT(*) AS INTEGER) FROM comments WHERE article_id = $1`)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE article_id = $1 ORDER BY created_at DESC, comment_id DESC LIMIT $2 OFFSET $3`)).
		WithArgs(1, 10, 10).
		WillReturnRows(pgxmock.NewRows(commentRow).
			AddRow(9, 1, "icellusedkars", "Superficially charming", 0, time.Now()))

	comments, total, err := comment.NewPostgresRepository(mock).ListComments(context.Background(), 1,
		pagination.Params{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 11, total)
	assert.Len(t, comments, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_DeleteComment(t *testing.T) {
	mock := newMock(t)
	query := regexp.QuoteMeta(`DELETE FROM comments WHERE comment_id = $1 RETURNING comment_id`)

	mock.ExpectQuery(query).WithArgs(1).WillReturnRows(pgxmock.NewRows([]string{"comment_id"}).AddRow(1))
	mock.ExpectQuery(query).WithArgs(1).WillReturnRows(pgxmock.NewRows([]string{"comment_id"}))

	repo := comment.NewPostgresRepository(mock)

	deleted, err := repo.DeleteComment(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteComment(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateComment_ForeignKey(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO comments (article_id, author, body) VALUES ($1, $2, $3)`)).
		WithArgs(9001, pointer.To("butter_bridge"), pointer.To("hi")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "comments_article_id_fkey"})

	_, err := comment.NewPostgresRepository(mock).CreateComment(context.Background(), comment.CreateInput{
		ArticleID: 9001,
		Username:  pointer.To("butter_bridge"),
		Body:      pointer.To("hi"),
	})

	assert.True(t, apperr.HasCode(err, apperr.KeyDBForeignKeyViolation))
	assert.NotContains(t, apperr.As(err).Message(), "fkey")
}

func TestPostgresRepository_IncrementVotes(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE comments SET votes = votes + $2 WHERE comment_id = $1 RETURNING`)).
		WithArgs(3, pointer.To(1)).
		WillReturnRows(pgxmock.NewRows(commentRow).AddRow(3, 1, "icellusedkars", "Replacing the quiet elegance", 101, time.Now()))
	mock.ExpectQuery(`UPDATE comments`).
		WithArgs(9001, pointer.To(1)).
		WillReturnRows(pgxmock.NewRows(commentRow))

	repo := comment.NewPostgresRepository(mock)

	updated, err := repo.IncrementVotes(context.Background(), 3, pointer.To(1))
	require.NoError(t, err)
	assert.Equal(t, 101, updated.Votes)

	missing, err := repo.IncrementVotes(context.Background(), 9001, pointer.To(1))
	require.NoError(t, err)
	assert.Nil(t, missing)
}
