package comment

import (
	"context"

	"github.com/taibuivan/newsroom/pkg/pagination"
)

// Repository reads and writes comments.
type Repository interface {
	// ListComments returns one page for an article, newest first, and the
	// article's total comment count.
	ListComments(context context.Context, articleID int, page pagination.Params) ([]*Comment, int, error)

	CreateComment(context context.Context, input CreateInput) (*Comment, error)

	// DeleteComment reports whether a row was removed.
	DeleteComment(context context.Context, id int) (bool, error)

	// IncrementVotes returns nil without error when no row matches.
	IncrementVotes(context context.Context, id int, delta *int) (*Comment, error)
}
