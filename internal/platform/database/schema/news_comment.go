package schema

// CommentTable represents the 'comments' table
type CommentTable struct {
	Table     string
	ID        string
	ArticleID string
	Author    string
	Body      string
	Votes     string
	CreatedAt string
}

// Comment is the schema definition for comments
var Comment = CommentTable{
	Table:     "comments",
	ID:        "comment_id",
	ArticleID: "article_id",
	Author:    "author",
	Body:      "body",
	Votes:     "votes",
	CreatedAt: "created_at",
}

func (t CommentTable) Columns() []string {
	return []string{t.ID, t.ArticleID, t.Author, t.Body, t.Votes, t.CreatedAt}
}
