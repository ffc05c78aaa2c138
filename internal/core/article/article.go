package article

import "time"

// Article is a published story together with its derived comment count.
type Article struct {
	ID           int       `json:"article_id"`
	Title        string    `json:"title"`
	Topic        string    `json:"topic"`
	Author       string    `json:"author"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int       `json:"comment_count"`
}

// ListQuery holds the untrusted list parameters exactly as received.
//
// Empty SortBy, Order, Limit and Page take their defaults. A nil Topic means
// no filter; a non-nil Topic filters even when empty.
type ListQuery struct {
	SortBy string
	Order  string
	Topic  *string
	Limit  string
	Page   string
}

// Filter is a validated [ListQuery] ready for SQL assembly.
type Filter struct {
	SortBy string
	Order  string
	Topic  *string
}

// CreateInput carries the body fields of a new article. Nil fields are bound
// as NULL so the database reports them as missing.
type CreateInput struct {
	Author *string
	Title  *string
	Body   *string
	Topic  *string
}

// List defaults
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
)
