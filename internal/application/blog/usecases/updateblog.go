package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/application/blog/dto"
	"marketplace/internal/domain/blog"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type UpdateBlogCommand struct {
	BlogID      uint
	Title       *string
	Description *string
	Image       string
	Category    *string
}

type UpdateBlogUseCase struct {
	blogRepo blog.Repository
	renderer MarkdownRenderer
	logger   logger.Interface
}

func NewUpdateBlogUseCase(blogRepo blog.Repository, renderer MarkdownRenderer, logger logger.Interface) *UpdateBlogUseCase {
	return &UpdateBlogUseCase{
		blogRepo: blogRepo,
		renderer: renderer,
		logger:   logger,
	}
}

func (uc *UpdateBlogUseCase) Execute(ctx context.Context, cmd UpdateBlogCommand) (*dto.BlogDTO, error) {
	b, err := uc.blogRepo.GetByID(ctx, cmd.BlogID)
	if err != nil {
		uc.logger.Errorw("failed to get blog", "error", err, "blog_id", cmd.BlogID)
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	if b == nil {
		return nil, errors.NewNotFoundError("Blog not found")
	}

	update := blog.Update{
		Title:       cmd.Title,
		Description: cmd.Description,
		Image:       cmd.Image,
		Category:    cmd.Category,
	}
	if cmd.Description != nil {
		html, err := uc.renderer.MarkdownToHTML(*cmd.Description)
		if err != nil {
			uc.logger.Errorw("failed to render blog description", "error", err, "blog_id", cmd.BlogID)
			return nil, errors.NewValidationError("invalid markdown description")
		}
		update.DescriptionHTML = html
	}

	if err := b.Apply(update); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.blogRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to update blog", "error", err, "blog_id", cmd.BlogID)
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}

	uc.logger.Infow("blog updated successfully", "blog_id", cmd.BlogID)
	return dto.ToBlogDTO(b), nil
}
