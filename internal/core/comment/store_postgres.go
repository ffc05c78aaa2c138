package comment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/newsroom/internal/platform/database/schema"
	"github.com/taibuivan/newsroom/internal/platform/dberr"
	"github.com/taibuivan/newsroom/internal/platform/postgres"
	"github.com/taibuivan/newsroom/pkg/pagination"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func columns() string {
	return strings.Join(schema.Comment.Columns(), ", ")
}

type scanner interface {
	Scan(dest ...any) error
}

func scanComment(row scanner) (*Comment, error) {
	c := &Comment{}
	err := row.Scan(&c.ID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt)
	return c, err
}

func (repository *PostgresRepository) ListComments(context context.Context, articleID int, page pagination.Params) ([]*Comment, int, error) {
	countQuery := fmt.Sprintf(`SELECT CAST(COUNT(*) AS INTEGER) FROM %s WHERE %s = $1`,
		schema.Comment.Table, schema.Comment.ArticleID)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC, %s DESC LIMIT $2 OFFSET $3`,
		columns(), schema.Comment.Table, schema.Comment.ArticleID,
		schema.Comment.CreatedAt, schema.Comment.ID,
	)

	var total int
	if err := repository.db.QueryRow(context, countQuery, articleID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_comments")
	}

	rows, err := repository.db.Query(context, query, articleID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	comments := make([]*Comment, 0, page.Limit)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_comments")
	}

	return comments, total, nil
}

func (repository *PostgresRepository) CreateComment(context context.Context, input CreateInput) (*Comment, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		schema.Comment.Table,
		schema.Comment.ArticleID, schema.Comment.Author, schema.Comment.Body,
		columns(),
	)

	c, err := scanComment(repository.db.QueryRow(context, query, input.ArticleID, input.Username, input.Body))
	if err != nil {
		return nil, dberr.Wrap(err, "insert_comment")
	}

	return c, nil
}

func (repository *PostgresRepository) DeleteComment(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		schema.Comment.Table, schema.Comment.ID, schema.Comment.ID)

	var deleted int
	err := repository.db.QueryRow(context, query, id).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, dberr.Wrap(err, "delete_comment")
	}

	return true, nil
}

func (repository *PostgresRepository) IncrementVotes(context context.Context, id int, delta *int) (*Comment, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + $2 WHERE %s = $1 RETURNING %s`,
		schema.Comment.Table,
		schema.Comment.Votes, schema.Comment.Votes,
		schema.Comment.ID,
		columns(),
	)

	c, err := scanComment(repository.db.QueryRow(context, query, id, delta))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "increment_comment_votes")
	}

	return c, nil
}
