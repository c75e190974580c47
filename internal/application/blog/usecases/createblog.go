package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/application/blog/dto"
	"marketplace/internal/domain/blog"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type CreateBlogCommand struct {
	Title       string
	Description string
	Image       string
	Category    string
}

type CreateBlogUseCase struct {
	blogRepo blog.Repository
	renderer MarkdownRenderer
	logger   logger.Interface
}

func NewCreateBlogUseCase(blogRepo blog.Repository, renderer MarkdownRenderer, logger logger.Interface) *CreateBlogUseCase {
	return &CreateBlogUseCase{
		blogRepo: blogRepo,
		renderer: renderer,
		logger:   logger,
	}
}

func (uc *CreateBlogUseCase) Execute(ctx context.Context, cmd CreateBlogCommand) (*dto.BlogDTO, error) {
	html, err := uc.renderer.MarkdownToHTML(cmd.Description)
	if err != nil {
		uc.logger.Errorw("failed to render blog description", "error", err)
		return nil, errors.NewValidationError("invalid markdown description")
	}

	b, err := blog.NewBlog(cmd.Title, cmd.Description, html, cmd.Image, cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.blogRepo.Create(ctx, b); err != nil {
		uc.logger.Errorw("failed to create blog", "error", err)
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	uc.logger.Infow("blog created successfully", "blog_id", b.ID())
	return dto.ToBlogDTO(b), nil
}
