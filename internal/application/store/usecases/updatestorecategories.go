package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/application/store/dto"
	"marketplace/internal/domain/store"
	"marketplace/internal/shared/db"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type UpdateStoreCategoriesCommand struct {
	StoreID     uint
	UserID      uint
	CategoryIDs []uint
}

type UpdateStoreCategoriesUseCase struct {
	storeRepo    store.Repository
	categoryRepo CategoryChecker
	txMgr        db.Transactor
	logger       logger.Interface
}

func NewUpdateStoreCategoriesUseCase(
	storeRepo store.Repository,
	categoryRepo CategoryChecker,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateStoreCategoriesUseCase {
	return &UpdateStoreCategoriesUseCase{
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *UpdateStoreCategoriesUseCase) Execute(ctx context.Context, cmd UpdateStoreCategoriesCommand) (*dto.StoreDTO, error) {
	var updated *store.Store
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		s, err := uc.storeRepo.GetByID(txCtx, cmd.StoreID)
		if err != nil {
			uc.logger.Errorw("failed to get store", "error", err, "store_id", cmd.StoreID)
			return fmt.Errorf("failed to get store: %w", err)
		}
		if s == nil || !s.IsOwnedBy(cmd.UserID) {
			return errors.NewNotFoundError(store.ErrNotOwner.Error())
		}

		if err := s.ReplaceCategories(cmd.CategoryIDs); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := ensureCategoriesExist(txCtx, uc.categoryRepo, uc.logger, s.CategoryIDs()); err != nil {
			return err
		}

		if err := uc.storeRepo.Update(txCtx, s); err != nil {
			uc.logger.Errorw("failed to update store categories", "error", err, "store_id", cmd.StoreID)
			return fmt.Errorf("failed to update store: %w", err)
		}

		updated, err = loadStore(txCtx, uc.storeRepo, uc.logger, cmd.StoreID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("store categories updated", "store_id", cmd.StoreID, "count", len(updated.CategoryIDs()))
	return dto.ToStoreDTO(updated), nil
}
