package comment

import "time"

// Comment is a reader's response to an article.
type Comment struct {
	ID        int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateInput carries a new comment. Nil fields are bound as NULL.
type CreateInput struct {
	ArticleID int
	Username  *string
	Body      *string
}
