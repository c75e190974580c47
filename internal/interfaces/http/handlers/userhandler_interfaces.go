package handlers

import (
	"context"

	userdto "marketplace/internal/application/user/dto"
	userUsecases "marketplace/internal/application/user/usecases"
)

// Use case interfaces for UserHandler

type registerUserUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.RegisterUserCommand) (*userdto.UserDTO, error)
}

type listUsersUseCase interface {
	Execute(ctx context.Context, q userUsecases.ListUsersQuery) (*userUsecases.ListUsersResult, error)
}

type getUserUseCase interface {
	Execute(ctx context.Context, userID uint) (*userdto.UserDTO, error)
}

type updateUserUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.UpdateUserCommand) (*userdto.UserDTO, error)
}

type updateProfileUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.UpdateProfileCommand) (*userdto.UserDTO, error)
}

type deleteUserUseCase interface {
	Execute(ctx context.Context, userID uint) error
}
