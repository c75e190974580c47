package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/application/blog/dto"
	"marketplace/internal/domain/blog"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/query"
)

type ListBlogsQuery struct {
	Page      int
	PageSize  int
	Search    string
	Category  string
	SortBy    string
	SortOrder string
}

type ListBlogsResult struct {
	Blogs []*dto.BlogDTO
	Total int64
}

type ListBlogsUseCase struct {
	blogRepo blog.Repository
	logger   logger.Interface
}

func NewListBlogsUseCase(blogRepo blog.Repository, logger logger.Interface) *ListBlogsUseCase {
	return &ListBlogsUseCase{
		blogRepo: blogRepo,
		logger:   logger,
	}
}

func (uc *ListBlogsUseCase) Execute(ctx context.Context, q ListBlogsQuery) (*ListBlogsResult, error) {
	blogs, total, err := uc.blogRepo.List(ctx, blog.ListFilter{
		BaseFilter: query.BaseFilter{
			PageFilter: query.PageFilter{Page: q.Page, PageSize: q.PageSize},
			SortFilter: query.SortFilter{SortBy: q.SortBy, SortOrder: q.SortOrder},
			Search:     q.Search,
		},
		Category: q.Category,
	})
	if err != nil {
		uc.logger.Errorw("failed to list blogs", "error", err)
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	return &ListBlogsResult{Blogs: dto.ToBlogDTOs(blogs), Total: total}, nil
}
