package handlers

import (
	"context"

	categorydto "marketplace/internal/application/category/dto"
	categoryUsecases "marketplace/internal/application/category/usecases"
)

// Use case interfaces for CategoryHandler

type createCategoryUseCase interface {
	Execute(ctx context.Context, cmd categoryUsecases.CreateCategoryCommand) (*categorydto.CategoryDTO, error)
}

type listCategoriesUseCase interface {
	Execute(ctx context.Context, q categoryUsecases.ListCategoriesQuery) (*categoryUsecases.ListCategoriesResult, error)
}

type listCategoriesByTypeUseCase interface {
	Execute(ctx context.Context, rawType string) ([]*categorydto.CategoryDTO, error)
}

type getCategoryUseCase interface {
	Execute(ctx context.Context, categoryID uint) (*categorydto.CategoryDTO, error)
}

type updateCategoryUseCase interface {
	Execute(ctx context.Context, cmd categoryUsecases.UpdateCategoryCommand) (*categorydto.CategoryDTO, error)
}

type deleteCategoryUseCase interface {
	Execute(ctx context.Context, categoryID uint) error
}
