package blog

import (
	"context"
	"errors"
	"strings"
	"time"

	"marketplace/internal/shared/query"
)

var (
	ErrBlogNotFound    = errors.New("blog not found")
	ErrTitleRequired   = errors.New("blog title is required")
	ErrContentRequired = errors.New("blog description is required")
)

// Blog is an article whose description is markdown. DescriptionHTML is the
// sanitized rendering kept next to the source.
type Blog struct {
	id              uint
	title           string
	description     string
	descriptionHTML string
	image           string
	category        string
	views           int64
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBlog(title, description, descriptionHTML, image, category string) (*Blog, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrContentRequired
	}
	now := time.Now().UTC()
	return &Blog{
		title:           title,
		description:     description,
		descriptionHTML: descriptionHTML,
		image:           image,
		category:        strings.TrimSpace(category),
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func Reconstruct(id uint, title, description, descriptionHTML, image, category string, views int64, createdAt, updatedAt time.Time) *Blog {
	return &Blog{
		id:              id,
		title:           title,
		description:     description,
		descriptionHTML: descriptionHTML,
		image:           image,
		category:        category,
		views:           views,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Blog) ID() uint { return b.id }
func (b *Blog) SetID(id uint) { b.id = id }
func (b *Blog) Title() string { return b.title }
func (b *Blog) Description() string { return b.description }
func (b *Blog) DescriptionHTML() string { return b.descriptionHTML }
func (b *Blog) Image() string { return b.image }
func (b *Blog) Category() string { return b.category }
func (b *Blog) Views() int64 { return b.views }
func (b *Blog) CreatedAt() time.Time { return b.createdAt }
func (b *Blog) UpdatedAt() time.Time { return b.updatedAt }

// Update holds optional edits. DescriptionHTML must accompany Description.
type Update struct {
	Title           *string
	Description     *string
	DescriptionHTML string
	Image           string
	Category        *string
}

func (b *Blog) Apply(u Update) error {
	if u.Title != nil {
		title := strings.TrimSpace(*u.Title)
		if title == "" {
			return ErrTitleRequired
		}
		b.title = title
	}
	if u.Description != nil {
		if strings.TrimSpace(*u.Description) == "" {
			return ErrContentRequired
		}
		b.description = *u.Description
		b.descriptionHTML = u.DescriptionHTML
	}
	if u.Image != "" {
		b.image = u.Image
	}
	if u.Category != nil {
		b.category = strings.TrimSpace(*u.Category)
	}
	b.updatedAt = time.Now().UTC()
	return nil
}

type Repository interface {
	Create(ctx context.Context, blog *Blog) error
	GetByID(ctx context.Context, id uint) (*Blog, error)
	// IncrementViews adds one view; it returns ErrBlogNotFound when no row matched.
	IncrementViews(ctx context.Context, id uint) error
	Update(ctx context.Context, blog *Blog) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Blog, int64, error)
}

// ListFilter searches title and category.
type ListFilter struct {
	query.BaseFilter
	Category string
}
