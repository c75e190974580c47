package handlers

import (
	"context"

	userdto "marketplace/internal/application/user/dto"
	userUsecases "marketplace/internal/application/user/usecases"
)

// Use case interfaces for AuthHandler

type requestRegistrationOTPUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.RequestRegistrationOTPCommand) error
}

type verifyRegistrationOTPUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.VerifyRegistrationOTPCommand) (*userdto.TokenPairDTO, error)
}

type tokenLinkUseCase interface {
	Execute(ctx context.Context, token string) error
}

type loginWithPasswordUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.LoginWithPasswordCommand) (*userdto.TokenPairDTO, error)
}

type changePasswordUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.ChangePasswordCommand) error
}

type emailOnlyUseCase interface {
	Execute(ctx context.Context, email string) error
}

type verifyResetOTPUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.VerifyResetOTPCommand) error
}

type resetPasswordUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.ResetPasswordCommand) error
}

type getMeUseCase interface {
	Execute(ctx context.Context, userID uint) (*userdto.MeDTO, error)
}

type refreshTokenUseCase interface {
	Execute(ctx context.Context, refreshToken string) (*userdto.TokenPairDTO, error)
}

type socialLoginUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.SocialLoginCommand) (*userdto.TokenPairDTO, error)
}
