package user

import (
	"context"

	"marketplace/internal/shared/query"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
}

// ListFilter searches first name, last name and email.
type ListFilter struct {
	query.BaseFilter
	Role *string
}

type OTPRepository interface {
	Create(ctx context.Context, otp *OTPRecord) error
	// FindLatestUnverified returns the newest unverified record for email, or nil.
	FindLatestUnverified(ctx context.Context, email string) (*OTPRecord, error)
	MarkVerified(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	DeleteUnverifiedByEmail(ctx context.Context, email string) error
}
