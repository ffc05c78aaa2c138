package user

import (
	"context"
	"log/slog"

	"github.com/taibuivan/newsroom/internal/platform/apperr"
	"github.com/taibuivan/newsroom/internal/platform/postgres"
)

// Checker resolves an empty lookup into the matching not-found error.
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

func (service *Service) ListUsers(context context.Context) ([]*User, error) {
	return service.repo.ListUsers(context)
}

func (service *Service) GetUser(context context.Context, username string) (*User, error) {
	found, err := service.repo.GetUser(context, username)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return found, nil
	}

	if err := service.checker.EnsureExists(context, postgres.UserByUsername, username); err != nil {
		return nil, err
	}

	// The row appeared between the two reads; report the original miss.
	return nil, apperr.NotFound(postgres.UserByUsername.Kind(), username)
}
