package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"marketplace/internal/domain/blog"
	"marketplace/internal/infrastructure/persistence/mappers"
	"marketplace/internal/infrastructure/persistence/models"
	"marketplace/internal/shared/db"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/mapper"
)

type BlogRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewBlogRepository(db *gorm.DB, logger logger.Interface) blog.Repository {
	return &BlogRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *BlogRepositoryImpl) Create(ctx context.Context, b *blog.Blog) error {
	model := mappers.BlogToModel(b)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create blog", "error", err)
		return fmt.Errorf("failed to create blog: %w", err)
	}
	b.SetID(model.ID)
	return nil
}

func (r *BlogRepositoryImpl) GetByID(ctx context.Context, id uint) (*blog.Blog, error) {
	var model models.BlogModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get blog by ID", "error", err, "blog_id", id)
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return mappers.BlogToEntity(&model), nil
}

func (r *BlogRepositoryImpl) IncrementViews(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.BlogModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		r.logger.Errorw("failed to increment blog views", "error", result.Error, "blog_id", id)
		return fmt.Errorf("failed to increment blog views: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return blog.ErrBlogNotFound
	}
	return nil
}

func (r *BlogRepositoryImpl) Update(ctx context.Context, b *blog.Blog) error {
	model := mappers.BlogToModel(b)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.BlogModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":            model.Title,
			"description":      model.Description,
			"description_html": model.DescriptionHTML,
			"image":            model.Image,
			"category":         model.Category,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update blog", "error", result.Error, "blog_id", model.ID)
		return fmt.Errorf("failed to update blog: %w", result.Error)
	}
	return nil
}

func (r *BlogRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.BlogModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete blog", "error", result.Error, "blog_id", id)
		return fmt.Errorf("failed to delete blog: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewNotFoundError("Blog not found")
	}
	return nil
}

func (r *BlogRepositoryImpl) List(ctx context.Context, filter blog.ListFilter) ([]*blog.Blog, int64, error) {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.BlogModel{})

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		q = q.Where("LOWER(title) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count blogs", "error", err)
		return nil, 0, fmt.Errorf("failed to count blogs: %w", err)
	}

	var blogModels []*models.BlogModel
	err := paginate(q, filter.PageFilter).
		Order(filter.OrderClause("created_at", "created_at", "views", "title")).
		Order("id DESC").
		Find(&blogModels).Error
	if err != nil {
		r.logger.Errorw("failed to list blogs", "error", err)
		return nil, 0, fmt.Errorf("failed to list blogs: %w", err)
	}

	return mapper.MapSlice(blogModels, mappers.BlogToEntity), total, nil
}
