package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"marketplace/internal/application/category/dto"
	"marketplace/internal/domain/category"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type CreateCategoryCommand struct {
	Name        string
	Description string
	Type        string
	Comment     string
}

type CreateCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error) {
	typ, err := category.ParseType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), cmd.Type)
	}
	c, err := category.NewCategory(cmd.Name, cmd.Description, typ, cmd.Comment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.categoryRepo.FindByNameAndType(ctx, c.Name(), c.Type())
	if err != nil {
		uc.logger.Errorw("failed to check category", "error", err, "name", c.Name())
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError(category.ErrDuplicate.Error())
	}

	if err := uc.categoryRepo.Create(ctx, c); err != nil {
		if stderrors.Is(err, category.ErrDuplicate) {
			return nil, errors.NewConflictError(category.ErrDuplicate.Error())
		}
		return nil, err
	}

	uc.logger.Infow("category created successfully", "category_id", c.ID(), "type", c.Type())
	return dto.ToCategoryDTO(c), nil
}
