// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"net/http"

	"github.com/taibuivan/newsroom/internal/platform/respond"
	"github.com/taibuivan/newsroom/internal/platform/validate"
	"github.com/taibuivan/newsroom/pkg/pagination"
)

// Endpoint describes one route in the GET /api catalogue.
type Endpoint struct {
	Description     string         `json:"description"`
	Queries         []string       `json:"queries"`
	Body            map[string]any `json:"exampleBody,omitempty"`
	ExampleResponse map[string]any `json:"exampleResponse,omitempty"`
}

// catalogue lists every public route, keyed by "METHOD path".
func catalogue() map[string]Endpoint {
	pageQueries := []string{"limit", "p"}

	return map[string]Endpoint{
		"GET /api": {
			Description: "serves a description of all available endpoints",
			Queries:     []string{},
		},
		"GET /api/topics": {
			Description:     "serves an array of all topics",
			Queries:         []string{},
			ExampleResponse: map[string]any{"topics": []map[string]string{{"slug": "football", "description": "Footie!"}}},
		},
		"POST /api/topics": {
			Description: "adds a topic; the slug must be lowercase letters, digits and hyphens",
			Queries:     []string{},
			Body:        map[string]any{"slug": "football", "description": "Footie!"},
		},
		"GET /api/articles": {
			Description: "serves a page of articles with comment counts",
			Queries:     append([]string{"sort_by", "order", "topic"}, pageQueries...),
			ExampleResponse: map[string]any{
				"sort_by":     validate.SortColumns(),
				"order":       []string{"asc", "desc"},
				"limit":       map[string]int{"default": pagination.DefaultLimit, "max": pagination.MaxLimit},
				"articles":    []map[string]any{exampleArticle()},
				"total_count": 1,
				"page":        1,
				"displaying":  "showing results 1 to 10",
			},
		},
		"POST /api/articles": {
			Description:     "adds an article",
			Queries:         []string{},
			Body:            map[string]any{"author": "weegembump", "title": "Seafood substitutions are increasing", "body": "Text from the article..", "topic": "cooking"},
			ExampleResponse: map[string]any{"article": exampleArticle()},
		},
		"GET /api/articles/:article_id": {
			Description:     "serves a single article with its comment count",
			Queries:         []string{},
			ExampleResponse: map[string]any{"article": exampleArticle()},
		},
		"PATCH /api/articles/:article_id": {
			Description:     "adds inc_votes to the article's votes",
			Queries:         []string{},
			Body:            map[string]any{"inc_votes": 1},
			ExampleResponse: map[string]any{"article": exampleArticle()},
		},
		"GET /api/articles/:article_id/comments": {
			Description: "serves a page of comments for an article, newest first",
			Queries:     pageQueries,
			ExampleResponse: map[string]any{
				"comments":    []map[string]any{exampleComment()},
				"total_count": 1,
				"page":        1,
				"displaying":  "showing results 1 to 10",
			},
		},
		"POST /api/articles/:article_id/comments": {
			Description:     "adds a comment to an article",
			Queries:         []string{},
			Body:            map[string]any{"username": "butter_bridge", "body": "Great read"},
			ExampleResponse: map[string]any{"comment": exampleComment()},
		},
		"PATCH /api/comments/:comment_id": {
			Description:     "adds inc_votes to the comment's votes",
			Queries:         []string{},
			Body:            map[string]any{"inc_votes": -1},
			ExampleResponse: map[string]any{"comment": exampleComment()},
		},
		"DELETE /api/comments/:comment_id": {
			Description: "deletes a comment and responds with no content",
			Queries:     []string{},
		},
		"GET /api/users": {
			Description:     "serves an array of all users",
			Queries:         []string{},
			ExampleResponse: map[string]any{"users": []map[string]string{exampleUser()}},
		},
		"GET /api/users/:username": {
			Description:     "serves a single user",
			Queries:         []string{},
			ExampleResponse: map[string]any{"user": exampleUser()},
		},
	}
}

func exampleArticle() map[string]any {
	return map[string]any{
		"article_id":    34,
		"title":         "Seafood substitutions are increasing",
		"topic":         "cooking",
		"author":        "weegembump",
		"body":          "Text from the article..",
		"created_at":    "2018-05-30T15:59:13.341Z",
		"votes":         0,
		"comment_count": 6,
	}
}

func exampleComment() map[string]any {
	return map[string]any{
		"comment_id": 5,
		"article_id": 1,
		"author":     "icellusedkars",
		"body":       "I hate streaming noses",
		"votes":      0,
		"created_at": "2020-11-03T21:00:00.000Z",
	}
}

func exampleUser() map[string]string {
	return map[string]string{
		"username":   "butter_bridge",
		"name":       "jonny",
		"avatar_url": "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg",
	}
}

// serveEndpoints handles GET /api.
func serveEndpoints(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, "endpoints", catalogue())
}
