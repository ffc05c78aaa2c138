package topic

import (
	"context"
	"fmt"

	"github.com/taibuivan/newsroom/internal/platform/database/schema"
	"github.com/taibuivan/newsroom/internal/platform/dberr"
	"github.com/taibuivan/newsroom/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListTopics(context context.Context) ([]*Topic, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Topic.Slug, schema.Topic.Description, schema.Topic.Table, schema.Topic.Slug)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_topics")
	}
	defer rows.Close()

	topics := make([]*Topic, 0)
	for rows.Next() {
		t := &Topic{}
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_topic")
		}
		topics = append(topics, t)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_topics")
	}

	return topics, nil
}

func (repository *PostgresRepository) CreateTopic(context context.Context, input CreateInput) (*Topic, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s, %s`,
		schema.Topic.Table, schema.Topic.Slug, schema.Topic.Description,
		schema.Topic.Slug, schema.Topic.Description)

	t := &Topic{}
	err := repository.db.QueryRow(context, query, input.Slug, input.Description).Scan(&t.Slug, &t.Description)
	if err != nil {
		return nil, dberr.Wrap(err, "insert_topic")
	}

	return t, nil
}
