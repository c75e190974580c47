package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/application/category/dto"
	"marketplace/internal/domain/category"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/query"
)

type ListCategoriesQuery struct {
	Page      int
	PageSize  int
	Search    string
	Type      string
	SortBy    string
	SortOrder string
}

type ListCategoriesResult struct {
	Categories []*dto.CategoryDTO
	Total      int64
}

type ListCategoriesUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.Repository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, q ListCategoriesQuery) (*ListCategoriesResult, error) {
	filter := category.ListFilter{
		BaseFilter: query.BaseFilter{
			PageFilter: query.PageFilter{Page: q.Page, PageSize: q.PageSize},
			SortFilter: query.SortFilter{SortBy: q.SortBy, SortOrder: q.SortOrder},
			Search:     q.Search,
		},
	}
	if q.Type != "" {
		typ, err := category.ParseType(q.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error(), q.Type)
		}
		filter.Type = &typ
	}

	categories, total, err := uc.categoryRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesResult{Categories: dto.ToCategoryDTOs(categories), Total: total}, nil
}

type ListCategoriesByTypeUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewListCategoriesByTypeUseCase(categoryRepo category.Repository, logger logger.Interface) *ListCategoriesByTypeUseCase {
	return &ListCategoriesByTypeUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesByTypeUseCase) Execute(ctx context.Context, rawType string) ([]*dto.CategoryDTO, error) {
	typ, err := category.ParseType(rawType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), rawType)
	}

	categories, err := uc.categoryRepo.ListByType(ctx, typ)
	if err != nil {
		uc.logger.Errorw("failed to list categories by type", "error", err, "type", typ)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return dto.ToCategoryDTOs(categories), nil
}
