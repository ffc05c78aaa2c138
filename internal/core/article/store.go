package article

import (
	"context"

	"github.com/taibuivan/newsroom/pkg/pagination"
)

// Repository reads and writes articles.
//
// Single-row methods return a nil article without error when no row
// matches; the caller decides whether that means "not found".
type Repository interface {
	ListArticles(context context.Context, filter Filter, page pagination.Params) ([]*Article, int, error)
	GetArticle(context context.Context, id int) (*Article, error)
	CreateArticle(context context.Context, input CreateInput) (*Article, error)

	// IncrementVotes adds delta to the stored votes in a single statement.
	// A nil delta is bound as NULL.
	IncrementVotes(context context.Context, id int, delta *int) (*Article, error)
}
