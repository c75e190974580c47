package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/application/category/dto"
	"marketplace/internal/domain/category"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type GetCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewGetCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *GetCategoryUseCase) Execute(ctx context.Context, categoryID uint) (*dto.CategoryDTO, error) {
	c, err := loadCategory(ctx, uc.categoryRepo, uc.logger, categoryID)
	if err != nil {
		return nil, err
	}
	return dto.ToCategoryDTO(c), nil
}

func loadCategory(ctx context.Context, repo category.Repository, log logger.Interface, categoryID uint) (*category.Category, error) {
	c, err := repo.GetByID(ctx, categoryID)
	if err != nil {
		log.Errorw("failed to get category", "error", err, "category_id", categoryID)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if c == nil {
		return nil, errors.NewNotFoundError("Category not found")
	}
	return c, nil
}
