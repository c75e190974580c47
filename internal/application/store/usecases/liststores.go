package usecases

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/application/store/dto"
	"marketplace/internal/domain/store"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/query"
)

type ListStoresQuery struct {
	Page       int
	PageSize   int
	Search     string
	ShopStatus string
	Status     string
	CategoryID *uint
	SortBy     string
	SortOrder  string
}

type ListStoresResult struct {
	Stores []*dto.StoreDTO
	Total  int64
}

type ListStoresUseCase struct {
	storeRepo store.Repository
	logger    logger.Interface
}

func NewListStoresUseCase(storeRepo store.Repository, logger logger.Interface) *ListStoresUseCase {
	return &ListStoresUseCase{
		storeRepo: storeRepo,
		logger:    logger,
	}
}

func (uc *ListStoresUseCase) Execute(ctx context.Context, q ListStoresQuery) (*ListStoresResult, error) {
	filter := store.ListFilter{
		BaseFilter: query.BaseFilter{
			PageFilter: query.PageFilter{Page: q.Page, PageSize: q.PageSize},
			SortFilter: query.SortFilter{SortBy: q.SortBy, SortOrder: q.SortOrder},
			Search:     q.Search,
		},
		CategoryID: q.CategoryID,
	}

	if q.ShopStatus != "" {
		shopStatus := store.ShopStatus(strings.ToUpper(q.ShopStatus))
		if !shopStatus.IsValid() {
			return nil, errors.NewValidationError("invalid shopStatus", q.ShopStatus)
		}
		filter.ShopStatus = &shopStatus
	}
	if q.Status != "" {
		status := store.Status(strings.ToUpper(q.Status))
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status", q.Status)
		}
		filter.Status = &status
	}

	stores, total, err := uc.storeRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list stores", "error", err)
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	return &ListStoresResult{Stores: dto.ToStoreDTOs(stores), Total: total}, nil
}

// ListStoresByCategoryUseCase lists the approved stores linked to one category,
// which must exist. Any shopStatus in the query is ignored.
type ListStoresByCategoryUseCase struct {
	list         *ListStoresUseCase
	categoryRepo CategoryChecker
	logger       logger.Interface
}

func NewListStoresByCategoryUseCase(storeRepo store.Repository, categoryRepo CategoryChecker, logger logger.Interface) *ListStoresByCategoryUseCase {
	return &ListStoresByCategoryUseCase{
		list:         NewListStoresUseCase(storeRepo, logger),
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListStoresByCategoryUseCase) Execute(ctx context.Context, categoryID uint, q ListStoresQuery) (*ListStoresResult, error) {
	if err := ensureCategoriesExist(ctx, uc.categoryRepo, uc.logger, []uint{categoryID}); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("Category not found")
		}
		return nil, err
	}
	q.CategoryID = &categoryID
	q.ShopStatus = string(store.ShopStatusApproved)
	return uc.list.Execute(ctx, q)
}
