package mappers

import (
	"marketplace/internal/domain/category"
	"marketplace/internal/infrastructure/persistence/models"
)

func CategoryToEntity(model *models.CategoryModel, counts category.AssociationCounts) *category.Category {
	if model == nil {
		return nil
	}
	return category.Reconstruct(
		model.ID,
		model.Name,
		model.Description,
		category.Type(model.Type),
		model.Comment,
		counts,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func CategoryToModel(entity *category.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Type:        string(entity.Type()),
		Comment:     entity.Comment(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}
