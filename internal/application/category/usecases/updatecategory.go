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

type UpdateCategoryCommand struct {
	CategoryID  uint
	Name        *string
	Description *string
	Type        *string
	Comment     *string
}

type UpdateCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewUpdateCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*dto.CategoryDTO, error) {
	update := category.Update{
		Name:        cmd.Name,
		Description: cmd.Description,
		Comment:     cmd.Comment,
	}
	if cmd.Type != nil {
		typ, err := category.ParseType(*cmd.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error(), *cmd.Type)
		}
		update.Type = &typ
	}

	c, err := loadCategory(ctx, uc.categoryRepo, uc.logger, cmd.CategoryID)
	if err != nil {
		return nil, err
	}

	if c.RenamesOrRetypes(update) {
		name, typ := c.Target(update)
		dup, err := uc.categoryRepo.FindByNameAndType(ctx, name, typ)
		if err != nil {
			uc.logger.Errorw("failed to check category", "error", err, "category_id", cmd.CategoryID)
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
		if dup != nil && dup.ID() != c.ID() {
			return nil, errors.NewConflictError(category.ErrDuplicate.Error())
		}
	}

	if err := c.Apply(update); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Update(ctx, c); err != nil {
		if stderrors.Is(err, category.ErrDuplicate) {
			return nil, errors.NewConflictError(category.ErrDuplicate.Error())
		}
		return nil, err
	}

	uc.logger.Infow("category updated successfully", "category_id", c.ID())
	return dto.ToCategoryDTO(c), nil
}
