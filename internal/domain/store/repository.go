package store

import (
	"context"

	"marketplace/internal/shared/query"
)

type Repository interface {
	// Create inserts the store and its category links.
	Create(ctx context.Context, store *Store) error
	GetByID(ctx context.Context, id uint) (*Store, error)
	GetByUserID(ctx context.Context, userID uint) (*Store, error)
	// Update saves scalar fields and replaces the category links.
	Update(ctx context.Context, store *Store) error
	List(ctx context.Context, filter ListFilter) ([]*Store, int64, error)
}

// ListFilter narrows store listings. Search matches name, description and location.
type ListFilter struct {
	query.BaseFilter
	ShopStatus *ShopStatus
	Status     *Status
	CategoryID *uint
}
