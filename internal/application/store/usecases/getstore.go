package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/application/store/dto"
	"marketplace/internal/domain/store"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type GetStoreUseCase struct {
	storeRepo store.Repository
	logger    logger.Interface
}

func NewGetStoreUseCase(storeRepo store.Repository, logger logger.Interface) *GetStoreUseCase {
	return &GetStoreUseCase{
		storeRepo: storeRepo,
		logger:    logger,
	}
}

func (uc *GetStoreUseCase) Execute(ctx context.Context, storeID uint) (*dto.StoreDTO, error) {
	s, err := loadStore(ctx, uc.storeRepo, uc.logger, storeID)
	if err != nil {
		return nil, err
	}
	return dto.ToStoreDTO(s), nil
}

// GetMyStoreUseCase returns the caller's own store.
type GetMyStoreUseCase struct {
	storeRepo store.Repository
	logger    logger.Interface
}

func NewGetMyStoreUseCase(storeRepo store.Repository, logger logger.Interface) *GetMyStoreUseCase {
	return &GetMyStoreUseCase{
		storeRepo: storeRepo,
		logger:    logger,
	}
}

func (uc *GetMyStoreUseCase) Execute(ctx context.Context, userID uint) (*dto.StoreDTO, error) {
	s, err := uc.storeRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get store by user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	if s == nil {
		return nil, errors.NewNotFoundError("Store not found")
	}
	return dto.ToStoreDTO(s), nil
}
