package dto

import (
	"time"

	"marketplace/internal/domain/blog"
	"marketplace/internal/shared/mapper"
)

type BlogDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"descriptionHtml"`
	Image           string    `json:"image"`
	Category        string    `json:"category"`
	Views           int64     `json:"views"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func ToBlogDTO(b *blog.Blog) *BlogDTO {
	if b == nil {
		return nil
	}
	return &BlogDTO{
		ID:              b.ID(),
		Title:           b.Title(),
		Description:     b.Description(),
		DescriptionHTML: b.DescriptionHTML(),
		Image:           b.Image(),
		Category:        b.Category(),
		Views:           b.Views(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

func ToBlogDTOs(blogs []*blog.Blog) []*BlogDTO {
	return mapper.MapSlice(blogs, ToBlogDTO)
}
