package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"marketplace/internal/application/store/dto"
	"marketplace/internal/domain/store"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type SetStoreStatusCommand struct {
	StoreID uint
	UserID  uint
}

// SetStoreStatusUseCase lets an owner take the store online or offline.
type SetStoreStatusUseCase struct {
	storeRepo store.Repository
	target    store.Status
	logger    logger.Interface
}

func NewSetStoreOnlineUseCase(storeRepo store.Repository, logger logger.Interface) *SetStoreStatusUseCase {
	return &SetStoreStatusUseCase{storeRepo: storeRepo, target: store.StatusOnline, logger: logger}
}

func NewSetStoreOfflineUseCase(storeRepo store.Repository, logger logger.Interface) *SetStoreStatusUseCase {
	return &SetStoreStatusUseCase{storeRepo: storeRepo, target: store.StatusOffline, logger: logger}
}

func (uc *SetStoreStatusUseCase) Execute(ctx context.Context, cmd SetStoreStatusCommand) (*dto.StoreDTO, error) {
	s, err := uc.storeRepo.GetByID(ctx, cmd.StoreID)
	if err != nil {
		uc.logger.Errorw("failed to get store", "error", err, "store_id", cmd.StoreID)
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	if s == nil {
		return nil, errors.NewNotFoundError(store.ErrNotOwner.Error())
	}

	if uc.target == store.StatusOnline {
		err = s.GoOnline(cmd.UserID)
	} else {
		err = s.GoOffline(cmd.UserID)
	}
	switch {
	case stderrors.Is(err, store.ErrNotOwner):
		return nil, errors.NewNotFoundError(store.ErrNotOwner.Error())
	case stderrors.Is(err, store.ErrNotApproved):
		return nil, errors.NewBadRequestError(store.ErrNotApproved.Error())
	case err != nil:
		return nil, err
	}

	if err := uc.storeRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update store", "error", err, "store_id", cmd.StoreID)
		return nil, fmt.Errorf("failed to update store: %w", err)
	}

	uc.logger.Infow("store status changed", "store_id", cmd.StoreID, "status", s.Status())
	return dto.ToStoreDTO(s), nil
}
