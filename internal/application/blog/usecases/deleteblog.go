package usecases

import (
	"context"

	"marketplace/internal/domain/blog"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type DeleteBlogUseCase struct {
	blogRepo blog.Repository
	logger   logger.Interface
}

func NewDeleteBlogUseCase(blogRepo blog.Repository, logger logger.Interface) *DeleteBlogUseCase {
	return &DeleteBlogUseCase{
		blogRepo: blogRepo,
		logger:   logger,
	}
}

func (uc *DeleteBlogUseCase) Execute(ctx context.Context, blogID uint) error {
	if err := uc.blogRepo.Delete(ctx, blogID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete blog", "error", err, "blog_id", blogID)
		}
		return err
	}

	uc.logger.Infow("blog deleted successfully", "blog_id", blogID)
	return nil
}
