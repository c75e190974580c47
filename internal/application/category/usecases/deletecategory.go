package usecases

import (
	"context"

	"marketplace/internal/domain/category"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type DeleteCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Execute refuses to delete a category that stores, products, services or consultations still use.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, categoryID uint) error {
	c, err := loadCategory(ctx, uc.categoryRepo, uc.logger, categoryID)
	if err != nil {
		return err
	}
	if c.Counts().Any() {
		return errors.NewBadRequestError(category.ErrHasAssociations.Error())
	}

	if err := uc.categoryRepo.Delete(ctx, categoryID); err != nil {
		return err
	}

	uc.logger.Infow("category deleted successfully", "category_id", categoryID)
	return nil
}
