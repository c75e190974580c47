package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"marketplace/internal/application/blog/dto"
	"marketplace/internal/domain/blog"
	"marketplace/internal/shared/db"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

// GetBlogUseCase returns a blog and counts the read.
type GetBlogUseCase struct {
	blogRepo blog.Repository
	txMgr    db.Transactor
	logger   logger.Interface
}

func NewGetBlogUseCase(blogRepo blog.Repository, txMgr db.Transactor, logger logger.Interface) *GetBlogUseCase {
	return &GetBlogUseCase{
		blogRepo: blogRepo,
		txMgr:    txMgr,
		logger:   logger,
	}
}

func (uc *GetBlogUseCase) Execute(ctx context.Context, blogID uint) (*dto.BlogDTO, error) {
	var result *blog.Blog
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.blogRepo.IncrementViews(txCtx, blogID); err != nil {
			if stderrors.Is(err, blog.ErrBlogNotFound) {
				return errors.NewNotFoundError("Blog not found")
			}
			return err
		}

		b, err := uc.blogRepo.GetByID(txCtx, blogID)
		if err != nil {
			return fmt.Errorf("failed to get blog: %w", err)
		}
		if b == nil {
			return errors.NewNotFoundError("Blog not found")
		}
		result = b
		return nil
	})
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to get blog", "error", err, "blog_id", blogID)
		}
		return nil, err
	}

	return dto.ToBlogDTO(result), nil
}
