package usecases

import (
	"context"
	"fmt"

	"marketplace/internal/application/user/dto"
	"marketplace/internal/domain/user"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/query"
)

type ListUsersQuery struct {
	Page       int
	PageSize   int
	SearchTerm string
	Role       string
	SortBy     string
	SortOrder  string
}

type ListUsersResult struct {
	Users []*dto.UserDTO
	Total int64
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, q ListUsersQuery) (*ListUsersResult, error) {
	filter := user.ListFilter{
		BaseFilter: query.BaseFilter{
			PageFilter: query.PageFilter{Page: q.Page, PageSize: q.PageSize},
			SortFilter: query.SortFilter{SortBy: q.SortBy, SortOrder: q.SortOrder},
			Search:     q.SearchTerm,
		},
	}
	if q.Role != "" {
		role := q.Role
		filter.Role = &role
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &ListUsersResult{Users: dto.ToUserDTOs(users), Total: total}, nil
}
