package schema

// ArticleTable represents the 'articles' table
type ArticleTable struct {
	Table     string
	ID        string
	Title     string
	Topic     string
	Author    string
	Body      string
	CreatedAt string
	Votes     string
}

// Article is the schema definition for articles
var Article = ArticleTable{
	Table:     "articles",
	ID:        "article_id",
	Title:     "title",
	Topic:     "topic",
	Author:    "author",
	Body:      "body",
	CreatedAt: "created_at",
	Votes:     "votes",
}

func (t ArticleTable) Columns() []string {
	return []string{t.ID, t.Title, t.Topic, t.Author, t.Body, t.CreatedAt, t.Votes}
}
