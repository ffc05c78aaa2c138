package schema

// TopicTable represents the 'topics' table
type TopicTable struct {
	Table       string
	Slug        string
	Description string
}

// Topic is the schema definition for topics
var Topic = TopicTable{
	Table:       "topics",
	Slug:        "slug",
	Description: "description",
}

func (t TopicTable) Columns() []string {
	return []string{t.Slug, t.Description}
}
