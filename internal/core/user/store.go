package user

import "context"

type Repository interface {
	ListUsers(context context.Context) ([]*User, error)

	// GetUser returns nil without error when no row matches.
	GetUser(context context.Context, username string) (*User, error)
}
