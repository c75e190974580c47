package dto

import (
	"time"

	"marketplace/internal/domain/category"
	"marketplace/internal/shared/mapper"
)

type CategoryDTO struct {
	ID          uint                       `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Type        string                     `json:"type"`
	Comment     string                     `json:"comment"`
	Count       category.AssociationCounts `json:"_count"`
	CreatedAt   time.Time                  `json:"createdAt"`
	UpdatedAt   time.Time                  `json:"updatedAt"`
}

func ToCategoryDTO(c *category.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		Type:        string(c.Type()),
		Comment:     c.Comment(),
		Count:       c.Counts(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func ToCategoryDTOs(categories []*category.Category) []*CategoryDTO {
	return mapper.MapSlice(categories, ToCategoryDTO)
}
