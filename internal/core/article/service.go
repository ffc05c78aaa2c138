package article

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/newsroom/internal/platform/apperr"
	"github.com/taibuivan/newsroom/internal/platform/postgres"
	"github.com/taibuivan/newsroom/internal/platform/validate"
	"github.com/taibuivan/newsroom/pkg/pagination"
)

// Checker resolves an empty result into the matching not-found error.
type Checker interface {
	EnsureExists(context context.Context, target postgres.Target, value any) error
}

type Service struct {
	repo    Repository
	checker Checker
	logger  *slog.Logger
}

func NewService(repo Repository, checker Checker, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		checker: checker,
		logger:  logger,
	}
}

/*
ListArticles validates the raw query, fetches one page and builds its metadata.

Validation runs before any SQL: sort column and order first, then limit and
page coercion, then their ranges. An empty page for a topic filter is
checked against the topics table so a missing topic reports 404 while an
existing topic with no articles reports an empty list.
*/
func (service *Service) ListArticles(context context.Context, query ListQuery) ([]*Article, pagination.Meta, error) {
	filter := Filter{
		SortBy: orDefault(query.SortBy, DefaultSortBy),
		Order:  orDefault(query.Order, DefaultOrder),
		Topic:  query.Topic,
	}

	if !validate.IsValidSortColumn(filter.SortBy) || !validate.IsValidOrder(filter.Order) {
		return nil, pagination.Meta{}, apperr.InvalidQuery()
	}

	params, err := validate.Page(query.Limit, query.Page)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	articles, total, err := service.repo.ListArticles(context, filter, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	if len(articles) == 0 && filter.Topic != nil {
		if err := service.checker.EnsureExists(context, postgres.TopicBySlug, *filter.Topic); err != nil {
			return nil, pagination.Meta{}, err
		}
	}

	return articles, pagination.NewMeta(params, total), nil
}

func (service *Service) GetArticle(context context.Context, id int) (*Article, error) {
	found, err := service.repo.GetArticle(context, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, service.missing(context, id)
	}
	return found, nil
}

func (service *Service) CreateArticle(context context.Context, input CreateInput) (*Article, error) {
	created, err := service.repo.CreateArticle(context, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("article_created",
		slog.Int("article_id", created.ID),
		slog.String("topic", created.Topic),
	)
	return created, nil
}

// UpdateVotes applies delta atomically. A nil delta reaches the database as
// NULL and is rejected there as a missing field.
func (service *Service) UpdateVotes(context context.Context, id int, delta *int) (*Article, error) {
	updated, err := service.repo.IncrementVotes(context, id, delta)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, service.missing(context, id)
	}
	return updated, nil
}

// missing escalates a zero-row result on an article id.
func (service *Service) missing(context context.Context, id int) error {
	if err := service.checker.EnsureExists(context, postgres.ArticleByID, id); err != nil {
		return err
	}
	return apperr.NotFound(postgres.ArticleByID.Kind(), fmt.Sprint(id))
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
