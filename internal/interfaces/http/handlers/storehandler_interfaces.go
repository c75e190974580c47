package handlers

import (
	"context"

	storedto "marketplace/internal/application/store/dto"
	storeUsecases "marketplace/internal/application/store/usecases"
)

// Use case interfaces for StoreHandler

type createStoreUseCase interface {
	Execute(ctx context.Context, cmd storeUsecases.CreateStoreCommand) (*storedto.StoreDTO, error)
}

type listStoresUseCase interface {
	Execute(ctx context.Context, q storeUsecases.ListStoresQuery) (*storeUsecases.ListStoresResult, error)
}

type listStoresByCategoryUseCase interface {
	Execute(ctx context.Context, categoryID uint, q storeUsecases.ListStoresQuery) (*storeUsecases.ListStoresResult, error)
}

// getStoreUseCase serves both lookups: by store id and by owner id.
type getStoreUseCase interface {
	Execute(ctx context.Context, id uint) (*storedto.StoreDTO, error)
}

type moderateStoreUseCase interface {
	Execute(ctx context.Context, storeID uint) (*storedto.StoreDTO, error)
}

type setStoreStatusUseCase interface {
	Execute(ctx context.Context, cmd storeUsecases.SetStoreStatusCommand) (*storedto.StoreDTO, error)
}

type updateStoreCategoriesUseCase interface {
	Execute(ctx context.Context, cmd storeUsecases.UpdateStoreCategoriesCommand) (*storedto.StoreDTO, error)
}
