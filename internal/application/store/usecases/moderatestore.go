package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/application/store/dto"
	"marketplace/internal/domain/store"
	"marketplace/internal/shared/logger"
)

// ModerateStoreUseCase applies an admin decision. Rejecting also takes the store offline.
type ModerateStoreUseCase struct {
	storeRepo store.Repository
	approve   bool
	logger    logger.Interface
}

func NewApproveStoreUseCase(storeRepo store.Repository, logger logger.Interface) *ModerateStoreUseCase {
	return &ModerateStoreUseCase{storeRepo: storeRepo, approve: true, logger: logger}
}

func NewRejectStoreUseCase(storeRepo store.Repository, logger logger.Interface) *ModerateStoreUseCase {
	return &ModerateStoreUseCase{storeRepo: storeRepo, logger: logger}
}

func (uc *ModerateStoreUseCase) Execute(ctx context.Context, storeID uint) (*dto.StoreDTO, error) {
	s, err := loadStore(ctx, uc.storeRepo, uc.logger, storeID)
	if err != nil {
		return nil, err
	}

	if uc.approve {
		s.Approve()
	} else {
		s.Reject()
	}

	if err := uc.storeRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update store", "error", err, "store_id", storeID)
		return nil, fmt.Errorf("failed to update store: %w", err)
	}

	uc.logger.Infow("store moderated", "store_id", storeID, "shop_status", s.ShopStatus())
	return dto.ToStoreDTO(s), nil
}
