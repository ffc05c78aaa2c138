package topic

// Topic is a subject area that articles are filed under.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// CreateInput carries the body fields of a new topic. A nil description is
// bound as NULL and rejected by the database.
type CreateInput struct {
	Slug        string
	Description *string
}

// Global field names for validation
const (
	FieldSlug        = "slug"
	FieldDescription = "description"
)
