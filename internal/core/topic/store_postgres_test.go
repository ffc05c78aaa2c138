package topic_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsroom/internal/core/topic"
	"github.com/taibuivan/newsroom/internal/platform/apperr"
	"github.com/taibuivan/newsroom/pkg/pointer"
)

func TestPostgresRepository_ListTopics(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT slug, description FROM topics ORDER BY slug ASC`)).
		WillReturnRows(pgxmock.NewRows([]string{"slug", "description"}).
			AddRow("cats", "Not dogs").
			AddRow("paper", "what books are made of"))

	topics, err := topic.NewPostgresRepository(mock).ListTopics(context.Background())

	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "paper", topics[1].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListTopics_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT slug, description FROM topics`).
		WillReturnRows(pgxmock.NewRows([]string{"slug", "description"}))

	topics, err := topic.NewPostgresRepository(mock).ListTopics(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, topics)
	assert.Empty(t, topics)
}

func TestPostgresRepository_CreateTopic_NotNull(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO topics (slug, description) VALUES ($1, $2)`)).
		WithArgs("dogs", (*string)(nil)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.NotNullViolation})

	_, err = topic.NewPostgresRepository(mock).CreateTopic(context.Background(), topic.CreateInput{Slug: "dogs"})

	assert.True(t, apperr.HasCode(err, apperr.KeyDBNotNullViolation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateTopic(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	description := pointer.To("woof")
	mock.ExpectQuery(`INSERT INTO topics`).
		WithArgs("dogs", description).
		WillReturnRows(pgxmock.NewRows([]string{"slug", "description"}).AddRow("dogs", "woof"))

	created, err := topic.NewPostgresRepository(mock).CreateTopic(context.Background(),
		topic.CreateInput{Slug: "dogs", Description: description})

	require.NoError(t, err)
	assert.Equal(t, &topic.Topic{Slug: "dogs", Description: "woof"}, created)
}
