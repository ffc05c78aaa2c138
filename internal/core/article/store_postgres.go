package article

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/newsroom/internal/platform/apperr"
	"github.com/taibuivan/newsroom/internal/platform/database/schema"
	"github.com/taibuivan/newsroom/internal/platform/dberr"
	"github.com/taibuivan/newsroom/internal/platform/postgres"
	"github.com/taibuivan/newsroom/internal/platform/validate"
	"github.com/taibuivan/newsroom/pkg/pagination"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # SQL Fragments

// articleColumns lists the article columns qualified by table name.
func articleColumns() string {
	columns := schema.Article.Columns()
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = schema.Article.Table + "." + column
	}
	return strings.Join(qualified, ", ")
}

// selectWithCommentCount is the aggregate read shared by list and get.
func selectWithCommentCount() string {
	return fmt.Sprintf(
		`SELECT %s, CAST(COUNT(%s.%s) AS INTEGER) AS comment_count FROM %s LEFT JOIN %s ON %s.%s = %s.%s`,
		articleColumns(),
		schema.Comment.Table, schema.Comment.ID,
		schema.Article.Table,
		schema.Comment.Table,
		schema.Comment.Table, schema.Comment.ArticleID,
		schema.Article.Table, schema.Article.ID,
	)
}

// commentCountSubquery computes comment_count for rows returned by a write.
func commentCountSubquery() string {
	return fmt.Sprintf(
		`(SELECT CAST(COUNT(*) AS INTEGER) FROM %s WHERE %s.%s = %s.%s) AS comment_count`,
		schema.Comment.Table,
		schema.Comment.Table, schema.Comment.ArticleID,
		schema.Article.Table, schema.Article.ID,
	)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (*Article, error) {
	a := &Article{}
	err := row.Scan(&a.ID, &a.Title, &a.Topic, &a.Author, &a.Body, &a.CreatedAt, &a.Votes, &a.CommentCount)
	return a, err
}

// # Reads

/*
ListArticles returns one page of articles and the size of the filtered set.

Only the whitelisted sort column and direction are formatted into the SQL
text; the topic, limit and offset are bound parameters.

Returns:
  - []*Article: The requested page (never nil)
  - int: Total rows matching the filter, ignoring pagination
  - error: INVALID_QUERY for a non-whitelisted sort, or the wrapped database failure
*/
func (repository *PostgresRepository) ListArticles(context context.Context, filter Filter, page pagination.Params) ([]*Article, int, error) {
	if !validate.IsValidSortColumn(filter.SortBy) || !validate.IsValidOrder(filter.Order) {
		return nil, 0, apperr.InvalidQuery()
	}

	query := selectWithCommentCount()
	countQuery := fmt.Sprintf(`SELECT CAST(COUNT(*) AS INTEGER) FROM %s`, schema.Article.Table)

	args := []any{}
	if filter.Topic != nil {
		args = append(args, *filter.Topic)
		where := fmt.Sprintf(` WHERE %s.%s = $1`, schema.Article.Table, schema.Article.Topic)
		query += where
		countQuery += where
	}
	countArgs := append([]any{}, args...)

	direction := strings.ToUpper(filter.Order)
	query += fmt.Sprintf(` GROUP BY %s.%s ORDER BY %s.%s %s, %s.%s %s LIMIT $%s OFFSET $%s`,
		schema.Article.Table, schema.Article.ID,
		schema.Article.Table, filter.SortBy, direction,
		schema.Article.Table, schema.Article.ID, direction,
		strconv.Itoa(len(args)+1), strconv.Itoa(len(args)+2),
	)
	args = append(args, page.Limit, page.Offset())

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_articles")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_articles")
	}
	defer rows.Close()

	articles := make([]*Article, 0, page.Limit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_article")
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_articles")
	}

	return articles, total, nil
}

func (repository *PostgresRepository) GetArticle(context context.Context, id int) (*Article, error) {
	query := selectWithCommentCount() + fmt.Sprintf(` WHERE %s.%s = $1 GROUP BY %s.%s`,
		schema.Article.Table, schema.Article.ID,
		schema.Article.Table, schema.Article.ID,
	)

	a, err := scanArticle(repository.db.QueryRow(context, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_article")
	}

	return a, nil
}

// # Writes

func (repository *PostgresRepository) CreateArticle(context context.Context, input CreateInput) (*Article, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) RETURNING %s, 0`,
		schema.Article.Table,
		schema.Article.Author, schema.Article.Title, schema.Article.Body, schema.Article.Topic,
		strings.Join(schema.Article.Columns(), ", "),
	)

	a, err := scanArticle(repository.db.QueryRow(context, query, input.Author, input.Title, input.Body, input.Topic))
	if err != nil {
		return nil, dberr.Wrap(err, "insert_article")
	}

	return a, nil
}

func (repository *PostgresRepository) IncrementVotes(context context.Context, id int, delta *int) (*Article, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + $2 WHERE %s = $1 RETURNING %s, %s`,
		schema.Article.Table,
		schema.Article.Votes, schema.Article.Votes,
		schema.Article.ID,
		articleColumns(), commentCountSubquery(),
	)

	a, err := scanArticle(repository.db.QueryRow(context, query, id, delta))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "increment_article_votes")
	}

	return a, nil
}
