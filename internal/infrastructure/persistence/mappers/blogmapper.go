package mappers

import (
	"marketplace/internal/domain/blog"
	"marketplace/internal/infrastructure/persistence/models"
)

func BlogToEntity(model *models.BlogModel) *blog.Blog {
	if model == nil {
		return nil
	}
	return blog.Reconstruct(
		model.ID,
		model.Title,
		model.Description,
		model.DescriptionHTML,
		model.Image,
		model.Category,
		model.Views,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func BlogToModel(entity *blog.Blog) *models.BlogModel {
	return &models.BlogModel{
		ID:              entity.ID(),
		Title:           entity.Title(),
		Description:     entity.Description(),
		DescriptionHTML: entity.DescriptionHTML(),
		Image:           entity.Image(),
		Category:        entity.Category(),
		Views:           entity.Views(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}
