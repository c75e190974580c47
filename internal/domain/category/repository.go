package category

import (
	"context"

	"marketplace/internal/shared/query"
)

type Repository interface {
	Create(ctx context.Context, category *Category) error
	// GetByID loads the category with its association counts.
	GetByID(ctx context.Context, id uint) (*Category, error)
	FindByNameAndType(ctx context.Context, name string, typ Type) (*Category, error)
	List(ctx context.Context, filter ListFilter) ([]*Category, int64, error)
	ListByType(ctx context.Context, typ Type) ([]*Category, error)
	// MissingIDs returns the ids that do not exist.
	MissingIDs(ctx context.Context, ids []uint) ([]uint, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uint) error
}

type ListFilter struct {
	query.BaseFilter
	Type *Type
}
