package comment

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

// ListComments pages through an article's comments. An empty page is only
// valid for an article that exists.
func (service *Service) ListComments(context context.Context, articleID int, limit, page string) ([]*Comment, pagination.Meta, error) {
	params, err := validate.Page(limit, page)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	comments, total, err := service.repo.ListComments(context, articleID, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	if len(comments) == 0 {
		if err := service.checker.EnsureExists(context, postgres.ArticleByID, articleID); err != nil {
			return nil, pagination.Meta{}, err
		}
	}

	return comments, pagination.NewMeta(params, total), nil
}

/*
CreateComment inserts a comment on an article.

When the insert fails on a foreign key the author is checked first and then
the article, so the client learns which reference is missing. If both exist
the original foreign-key error is returned.
*/
func (service *Service) CreateComment(context context.Context, input CreateInput) (*Comment, error) {
	created, err := service.repo.CreateComment(context, input)
	if err == nil {
		service.logger.Info("comment_created",
			slog.Int("comment_id", created.ID),
			slog.Int("article_id", created.ArticleID),
		)
		return created, nil
	}

	if !apperr.HasCode(err, apperr.KeyDBForeignKeyViolation) {
		return nil, err
	}

	if input.Username != nil {
		if checkErr := service.checker.EnsureExists(context, postgres.UserByUsername, *input.Username); checkErr != nil {
			return nil, checkErr
		}
	}
	if checkErr := service.checker.EnsureExists(context, postgres.ArticleByID, input.ArticleID); checkErr != nil {
		return nil, checkErr
	}

	return nil, err
}

func (service *Service) DeleteComment(context context.Context, id int) error {
	deleted, err := service.repo.DeleteComment(context, id)
	if err != nil {
		return err
	}
	if !deleted {
		return service.missing(context, id)
	}

	service.logger.Warn("comment_deleted", slog.Int("comment_id", id))
	return nil
}

func (service *Service) UpdateVotes(context context.Context, id int, delta *int) (*Comment, error) {
	updated, err := service.repo.IncrementVotes(context, id, delta)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, service.missing(context, id)
	}
	return updated, nil
}

func (service *Service) missing(context context.Context, id int) error {
	if err := service.checker.EnsureExists(context, postgres.CommentByID, id); err != nil {
		return err
	}
	return apperr.NotFound(postgres.CommentByID.Kind(), fmt.Sprint(id))
}
