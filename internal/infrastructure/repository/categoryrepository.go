package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"marketplace/internal/domain/category"
	"marketplace/internal/infrastructure/persistence/mappers"
	"marketplace/internal/infrastructure/persistence/models"
	"marketplace/internal/shared/db"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCategoryRepository(db *gorm.DB, logger logger.Interface) category.Repository {
	return &CategoryRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, c *category.Category) error {
	model := mappers.CategoryToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return category.ErrDuplicate
		}
		r.logger.Errorw("failed to create category", "error", err, "name", c.Name())
		return fmt.Errorf("failed to create category: %w", err)
	}

	c.SetID(model.ID)
	r.logger.Infow("category created successfully", "category_id", model.ID, "name", c.Name())
	return nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.CategoryModel
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get category by ID", "error", err, "category_id", id)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	counts, err := r.countAssociations(tx, []uint{model.ID})
	if err != nil {
		return nil, err
	}
	return mappers.CategoryToEntity(&model, counts[model.ID]), nil
}

func (r *CategoryRepositoryImpl) FindByNameAndType(ctx context.Context, name string, typ category.Type) (*category.Category, error) {
	var model models.CategoryModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("name = ? AND type = ?", name, string(typ)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find category", "error", err, "name", name, "type", typ)
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return mappers.CategoryToEntity(&model, category.AssociationCounts{}), nil
}

func (r *CategoryRepositoryImpl) List(ctx context.Context, filter category.ListFilter) ([]*category.Category, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.CategoryModel{})

	if filter.Type != nil && *filter.Type != "" {
		q = q.Where("type = ?", string(*filter.Type))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count categories", "error", err)
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	var categoryModels []*models.CategoryModel
	err := paginate(q, filter.PageFilter).
		Order(filter.OrderClause("created_at", "created_at", "name", "type")).
		Order("id DESC").
		Find(&categoryModels).Error
	if err != nil {
		r.logger.Errorw("failed to list categories", "error", err)
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}

	categories, err := r.withCounts(tx, categoryModels)
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *CategoryRepositoryImpl) ListByType(ctx context.Context, typ category.Type) ([]*category.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var categoryModels []*models.CategoryModel
	err := tx.Where("type = ?", string(typ)).
		Order("name ASC").
		Find(&categoryModels).Error
	if err != nil {
		r.logger.Errorw("failed to list categories by type", "error", err, "type", typ)
		return nil, fmt.Errorf("failed to list categories by type: %w", err)
	}
	return r.withCounts(tx, categoryModels)
}

func (r *CategoryRepositoryImpl) MissingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	missing := []uint{}
	if len(ids) == 0 {
		return missing, nil
	}

	var found []uint
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CategoryModel{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		r.logger.Errorw("failed to check category ids", "error", err)
		return nil, fmt.Errorf("failed to check category ids: %w", err)
	}

	exists := make(map[uint]struct{}, len(found))
	for _, id := range found {
		exists[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := exists[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, c *category.Category) error {
	model := mappers.CategoryToModel(c)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CategoryModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
			"type":        model.Type,
			"comment":     model.Comment,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		if appErrors.IsDuplicateError(result.Error) {
			return category.ErrDuplicate
		}
		r.logger.Errorw("failed to update category", "error", result.Error, "category_id", model.ID)
		return fmt.Errorf("failed to update category: %w", result.Error)
	}

	r.logger.Infow("category updated successfully", "category_id", model.ID)
	return nil
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.CategoryModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete category", "error", result.Error, "category_id", id)
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("Category not found")
	}

	r.logger.Infow("category deleted successfully", "category_id", id)
	return nil
}

func (r *CategoryRepositoryImpl) withCounts(tx *gorm.DB, categoryModels []*models.CategoryModel) ([]*category.Category, error) {
	ids := make([]uint, 0, len(categoryModels))
	for _, m := range categoryModels {
		ids = append(ids, m.ID)
	}

	counts, err := r.countAssociations(tx, ids)
	if err != nil {
		return nil, err
	}

	categories := make([]*category.Category, 0, len(categoryModels))
	for _, m := range categoryModels {
		categories = append(categories, mappers.CategoryToEntity(m, counts[m.ID]))
	}
	return categories, nil
}

type categoryCount struct {
	CategoryID uint
	Total      int64
}

// countAssociations counts store links, products, services and consultations per category.
func (r *CategoryRepositoryImpl) countAssociations(tx *gorm.DB, ids []uint) (map[uint]category.AssociationCounts, error) {
	result := make(map[uint]category.AssociationCounts, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	sources := []struct {
		model any
		set   func(c *category.AssociationCounts, n int64)
	}{
		{&models.StoreCategoryModel{}, func(c *category.AssociationCounts, n int64) { c.StoreCategories = n }},
		{&models.ProductModel{}, func(c *category.AssociationCounts, n int64) { c.Products = n }},
		{&models.ServiceModel{}, func(c *category.AssociationCounts, n int64) { c.Services = n }},
		{&models.ConsultationModel{}, func(c *category.AssociationCounts, n int64) { c.Consultations = n }},
	}

	for _, src := range sources {
		var rows []categoryCount
		err := tx.Model(src.model).
			Select("category_id, COUNT(*) AS total").
			Where("category_id IN ?", ids).
			Group("category_id").
			Scan(&rows).Error
		if err != nil {
			r.logger.Errorw("failed to count category associations", "error", err)
			return nil, fmt.Errorf("failed to count category associations: %w", err)
		}
		for _, row := range rows {
			c := result[row.CategoryID]
			src.set(&c, row.Total)
			result[row.CategoryID] = c
		}
	}
	return result, nil
}
