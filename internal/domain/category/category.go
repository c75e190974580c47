package category

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrNameRequired     = errors.New("category name is required")
	ErrInvalidType      = errors.New("category type is required")
	ErrDuplicate        = errors.New("category with this name and type already exists")
	ErrHasAssociations  = errors.New("cannot delete category with associated stores, products, services, or consultations")
)

type Type string

const (
	TypeProduct      Type = "PRODUCT"
	TypeService      Type = "SERVICE"
	TypeConsultation Type = "CONSULTATION"
	TypeStore        Type = "STORE"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeProduct, TypeService, TypeConsultation, TypeStore:
		return true
	}
	return false
}

// ParseType accepts any letter case.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// AssociationCounts are the rows that reference a category.
type AssociationCounts struct {
	StoreCategories int64 `json:"storeCategories"`
	Products        int64 `json:"products"`
	Services        int64 `json:"services"`
	Consultations   int64 `json:"consultations"`
}

func (c AssociationCounts) Any() bool {
	return c.StoreCategories > 0 || c.Products > 0 || c.Services > 0 || c.Consultations > 0
}

type Category struct {
	id          uint
	name        string
	description string
	typ         Type
	comment     string
	counts      AssociationCounts
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCategory(name, description string, typ Type, comment string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !typ.IsValid() {
		return nil, ErrInvalidType
	}
	now := time.Now().UTC()
	return &Category{
		name:        name,
		description: description,
		typ:         typ,
		comment:     comment,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(id uint, name, description string, typ Type, comment string, counts AssociationCounts, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		typ:         typ,
		comment:     comment,
		counts:      counts,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) SetID(id uint) {
	c.id = id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) Type() Type {
	return c.typ
}

func (c *Category) Comment() string {
	return c.comment
}

func (c *Category) Counts() AssociationCounts {
	return c.counts
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

// Update holds optional changes to a category.
type Update struct {
	Name        *string
	Description *string
	Type        *Type
	Comment     *string
}

// RenamesOrRetypes reports whether the (name, type) key would change, which
// requires a duplicate check before saving.
func (c *Category) RenamesOrRetypes(u Update) bool {
	if u.Name != nil && strings.TrimSpace(*u.Name) != c.name {
		return true
	}
	return u.Type != nil && *u.Type != c.typ
}

// Target returns the (name, type) key after applying u.
func (c *Category) Target(u Update) (string, Type) {
	name, typ := c.name, c.typ
	if u.Name != nil && strings.TrimSpace(*u.Name) != "" {
		name = strings.TrimSpace(*u.Name)
	}
	if u.Type != nil {
		typ = *u.Type
	}
	return name, typ
}

func (c *Category) Apply(u Update) error {
	if u.Type != nil && !u.Type.IsValid() {
		return ErrInvalidType
	}
	c.name, c.typ = c.Target(u)
	if u.Description != nil {
		c.description = *u.Description
	}
	if u.Comment != nil {
		c.comment = *u.Comment
	}
	c.updatedAt = time.Now().UTC()
	return nil
}
