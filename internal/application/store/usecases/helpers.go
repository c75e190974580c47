package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"marketplace/internal/domain/store"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

func loadStore(ctx context.Context, repo store.Repository, log logger.Interface, storeID uint) (*store.Store, error) {
	s, err := repo.GetByID(ctx, storeID)
	if err != nil {
		log.Errorw("failed to get store", "error", err, "store_id", storeID)
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	if s == nil {
		return nil, errors.NewNotFoundError("Store not found")
	}
	return s, nil
}

func ensureCategoriesExist(ctx context.Context, checker CategoryChecker, log logger.Interface, ids []uint) error {
	missing, err := checker.MissingIDs(ctx, ids)
	if err != nil {
		log.Errorw("failed to check categories", "error", err)
		return fmt.Errorf("failed to check categories: %w", err)
	}
	if len(missing) > 0 {
		parts := make([]string, 0, len(missing))
		for _, id := range missing {
			parts = append(parts, strconv.FormatUint(uint64(id), 10))
		}
		return errors.NewNotFoundError(store.ErrCategoriesNotFound.Error(), strings.Join(parts, ","))
	}
	return nil
}
