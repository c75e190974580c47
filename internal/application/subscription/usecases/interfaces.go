package usecases

import (
	"context"

	"marketplace/internal/domain/user"
)

// UserReader is the slice of the user repository subscription workflows need.
type UserReader interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
}

// UserWriter additionally persists the subscribed flag and plan expiration.
type UserWriter interface {
	UserReader
	Update(ctx context.Context, u *user.User) error
}
