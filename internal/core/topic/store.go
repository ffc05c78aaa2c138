package topic

import "context"

type Repository interface {
	ListTopics(context context.Context) ([]*Topic, error)
	CreateTopic(context context.Context, input CreateInput) (*Topic, error)
}
