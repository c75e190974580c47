package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"marketplace/internal/domain/store"
	"marketplace/internal/infrastructure/persistence/mappers"
	"marketplace/internal/infrastructure/persistence/models"
	"marketplace/internal/shared/db"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type StoreRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewStoreRepository(db *gorm.DB, logger logger.Interface) store.Repository {
	return &StoreRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *StoreRepositoryImpl) Create(ctx context.Context, s *store.Store) error {
	model, err := mappers.StoreToModel(s)
	if err != nil {
		r.logger.Errorw("failed to convert store to model", "error", err)
		return fmt.Errorf("failed to convert store to model: %w", err)
	}

	err = db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		return r.replaceLinks(tx, model.ID, s.CategoryIDs())
	})
	if err != nil {
		if appErrors.IsDuplicateError(err) {
			return store.ErrStoreExists
		}
		r.logger.Errorw("failed to create store", "error", err, "user_id", s.UserID())
		return fmt.Errorf("failed to create store: %w", err)
	}

	s.SetID(model.ID)
	r.logger.Infow("store created successfully", "store_id", model.ID, "user_id", s.UserID())
	return nil
}

func (r *StoreRepositoryImpl) GetByID(ctx context.Context, id uint) (*store.Store, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *StoreRepositoryImpl) GetByUserID(ctx context.Context, userID uint) (*store.Store, error) {
	return r.getOne(ctx, "user_id = ?", userID)
}

func (r *StoreRepositoryImpl) getOne(ctx context.Context, cond string, arg uint) (*store.Store, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.StoreModel
	if err := tx.Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get store", "error", err)
		return nil, fmt.Errorf("failed to get store: %w", err)
	}

	stores, err := r.withCategories(tx, []*models.StoreModel{&model})
	if err != nil {
		return nil, err
	}
	return stores[0], nil
}

func (r *StoreRepositoryImpl) Update(ctx context.Context, s *store.Store) error {
	model, err := mappers.StoreToModel(s)
	if err != nil {
		r.logger.Errorw("failed to convert store to model", "error", err)
		return fmt.Errorf("failed to convert store to model: %w", err)
	}

	err = db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.StoreModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]interface{}{
				"name":          model.Name,
				"location":      model.Location,
				"tags":          model.Tags,
				"description":   model.Description,
				"logo":          model.Logo,
				"banner":        model.Banner,
				"phone":         model.Phone,
				"email":         model.Email,
				"facebook_url":  model.FacebookURL,
				"instagram_url": model.InstagramURL,
				"youtube_url":   model.YoutubeURL,
				"shop_status":   model.ShopStatus,
				"status":        model.Status,
				"updated_at":    model.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		return r.replaceLinks(tx, model.ID, s.CategoryIDs())
	})
	if err != nil {
		r.logger.Errorw("failed to update store", "error", err, "store_id", model.ID)
		return fmt.Errorf("failed to update store: %w", err)
	}

	r.logger.Infow("store updated successfully", "store_id", model.ID)
	return nil
}

func (r *StoreRepositoryImpl) List(ctx context.Context, filter store.ListFilter) ([]*store.Store, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.StoreModel{})

	if filter.ShopStatus != nil && *filter.ShopStatus != "" {
		q = q.Where("shop_status = ?", string(*filter.ShopStatus))
	}
	if filter.Status != nil && *filter.Status != "" {
		q = q.Where("status = ?", string(*filter.Status))
	}
	if filter.CategoryID != nil {
		q = q.Where("id IN (?)", tx.Model(&models.StoreCategoryModel{}).
			Select("store_id").
			Where("category_id = ?", *filter.CategoryID))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count stores", "error", err)
		return nil, 0, fmt.Errorf("failed to count stores: %w", err)
	}

	var storeModels []*models.StoreModel
	err := paginate(q, filter.PageFilter).
		Order(filter.OrderClause("created_at", "created_at", "name")).
		Order("id DESC").
		Find(&storeModels).Error
	if err != nil {
		r.logger.Errorw("failed to list stores", "error", err)
		return nil, 0, fmt.Errorf("failed to list stores: %w", err)
	}

	stores, err := r.withCategories(tx, storeModels)
	if err != nil {
		return nil, 0, err
	}
	return stores, total, nil
}

func (r *StoreRepositoryImpl) replaceLinks(tx *gorm.DB, storeID uint, categoryIDs []uint) error {
	if err := tx.Where("store_id = ?", storeID).Delete(&models.StoreCategoryModel{}).Error; err != nil {
		return err
	}
	if len(categoryIDs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	links := make([]models.StoreCategoryModel, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		links = append(links, models.StoreCategoryModel{StoreID: storeID, CategoryID: id, CreatedAt: now})
	}
	return tx.Create(&links).Error
}

type storeCategoryRow struct {
	StoreID uint
	ID      uint
	Name    string
	Type    string
}

func (r *StoreRepositoryImpl) withCategories(tx *gorm.DB, storeModels []*models.StoreModel) ([]*store.Store, error) {
	ids := make([]uint, 0, len(storeModels))
	for _, m := range storeModels {
		ids = append(ids, m.ID)
	}

	refs := make(map[uint][]store.CategoryRef, len(ids))
	if len(ids) > 0 {
		var rows []storeCategoryRow
		err := tx.Table(models.StoreCategoryModel{}.TableName()+" AS sc").
			Select("sc.store_id, c.id, c.name, c.type").
			Joins("JOIN "+models.CategoryModel{}.TableName()+" AS c ON c.id = sc.category_id").
			Where("sc.store_id IN ?", ids).
			Order("c.id ASC").
			Scan(&rows).Error
		if err != nil {
			r.logger.Errorw("failed to load store categories", "error", err)
			return nil, fmt.Errorf("failed to load store categories: %w", err)
		}
		for _, row := range rows {
			refs[row.StoreID] = append(refs[row.StoreID], store.CategoryRef{ID: row.ID, Name: row.Name, Type: row.Type})
		}
	}

	stores := make([]*store.Store, 0, len(storeModels))
	for _, m := range storeModels {
		s, err := mappers.StoreToEntity(m, refs[m.ID])
		if err != nil {
			return nil, fmt.Errorf("failed to map store: %w", err)
		}
		stores = append(stores, s)
	}
	return stores, nil
}
