package topic

import (
	"context"
	"log/slog"

	"github.com/taibuivan/newsroom/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListTopics(context context.Context) ([]*Topic, error) {
	return service.repo.ListTopics(context)
}

// CreateTopic checks the slug is already in normalized form before the insert.
func (service *Service) CreateTopic(context context.Context, input CreateInput) (*Topic, error) {
	validator := &validate.Validator{}
	validator.Slug(FieldSlug, input.Slug).MaxLen(FieldSlug, input.Slug, 100)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	created, err := service.repo.CreateTopic(context, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("topic_created", slog.String("slug", created.Slug))
	return created, nil
}
