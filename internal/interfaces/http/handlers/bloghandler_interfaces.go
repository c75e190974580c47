package handlers

import (
	"context"

	blogdto "marketplace/internal/application/blog/dto"
	blogUsecases "marketplace/internal/application/blog/usecases"
)

// Use case interfaces for BlogHandler

type createBlogUseCase interface {
	Execute(ctx context.Context, cmd blogUsecases.CreateBlogCommand) (*blogdto.BlogDTO, error)
}

type listBlogsUseCase interface {
	Execute(ctx context.Context, q blogUsecases.ListBlogsQuery) (*blogUsecases.ListBlogsResult, error)
}

type getBlogUseCase interface {
	Execute(ctx context.Context, blogID uint) (*blogdto.BlogDTO, error)
}

type updateBlogUseCase interface {
	Execute(ctx context.Context, cmd blogUsecases.UpdateBlogCommand) (*blogdto.BlogDTO, error)
}

type deleteBlogUseCase interface {
	Execute(ctx context.Context, blogID uint) error
}
