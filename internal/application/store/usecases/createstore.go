package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"marketplace/internal/application/store/dto"
	"marketplace/internal/domain/store"
	"marketplace/internal/shared/db"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type CreateStoreCommand struct {
	UserID      uint
	Name        string
	Profile     store.Profile
	CategoryIDs []uint
}

type CreateStoreUseCase struct {
	storeRepo    store.Repository
	categoryRepo CategoryChecker
	txMgr        db.Transactor
	logger       logger.Interface
}

func NewCreateStoreUseCase(
	storeRepo store.Repository,
	categoryRepo CategoryChecker,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateStoreUseCase {
	return &CreateStoreUseCase{
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *CreateStoreUseCase) Execute(ctx context.Context, cmd CreateStoreCommand) (*dto.StoreDTO, error) {
	newStore, err := store.NewStore(cmd.UserID, cmd.Name, cmd.Profile, cmd.CategoryIDs)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var created *store.Store
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.storeRepo.GetByUserID(txCtx, cmd.UserID)
		if err != nil {
			uc.logger.Errorw("failed to get store by user", "error", err, "user_id", cmd.UserID)
			return fmt.Errorf("failed to get store: %w", err)
		}
		if existing != nil {
			return errors.NewConflictError("You already have a store")
		}

		if err := ensureCategoriesExist(txCtx, uc.categoryRepo, uc.logger, newStore.CategoryIDs()); err != nil {
			return err
		}

		if err := uc.storeRepo.Create(txCtx, newStore); err != nil {
			if stderrors.Is(err, store.ErrStoreExists) {
				return errors.NewConflictError("You already have a store")
			}
			return err
		}

		created, err = loadStore(txCtx, uc.storeRepo, uc.logger, newStore.ID())
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("store created successfully", "store_id", created.ID(), "user_id", cmd.UserID)
	return dto.ToStoreDTO(created), nil
}
