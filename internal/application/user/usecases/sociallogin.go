package usecases

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/application/user/dto"
	"marketplace/internal/domain/user"
	"marketplace/internal/shared/authorization"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type SocialLoginCommand struct {
	// IDToken is the provider identity token. Google may send Code instead.
	IDToken   string
	Code      string
	FirstName string
	LastName  string
}

// SocialLoginUseCase signs in with a verified provider identity, creating the account on first use.
type SocialLoginUseCase struct {
	provider       user.AuthProvider
	verifier       IDTokenVerifier
	exchanger      CodeExchanger
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokens         TokenService
	logger         logger.Interface
}

func NewGoogleLoginUseCase(
	verifier IDTokenVerifier,
	exchanger CodeExchanger,
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *SocialLoginUseCase {
	return &SocialLoginUseCase{
		provider:       user.ProviderGoogle,
		verifier:       verifier,
		exchanger:      exchanger,
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokens:         tokens,
		logger:         logger,
	}
}

func NewAppleLoginUseCase(
	verifier IDTokenVerifier,
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *SocialLoginUseCase {
	return &SocialLoginUseCase{
		provider:       user.ProviderApple,
		verifier:       verifier,
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokens:         tokens,
		logger:         logger,
	}
}

func (uc *SocialLoginUseCase) Execute(ctx context.Context, cmd SocialLoginCommand) (*dto.TokenPairDTO, error) {
	rawToken := strings.TrimSpace(cmd.IDToken)
	if rawToken == "" && cmd.Code != "" && uc.exchanger != nil {
		exchanged, err := uc.exchanger.ExchangeForIDToken(ctx, cmd.Code)
		if err != nil {
			uc.logger.Warnw("failed to exchange authorization code", "provider", uc.provider, "error", err)
			return nil, errors.NewUnauthorizedError("Invalid authorization code")
		}
		rawToken = exchanged
	}
	if rawToken == "" {
		return nil, errors.NewBadRequestError("Identity token is required!")
	}

	identity, err := uc.verifier.Verify(ctx, rawToken)
	if err != nil {
		uc.logger.Warnw("identity token rejected", "provider", uc.provider, "error", err)
		return nil, errors.NewUnauthorizedError("Invalid identity token")
	}
	if identity.Email == "" {
		return nil, errors.NewUnauthorizedError("Identity token has no email")
	}

	existing, err := uc.userRepo.GetByEmail(ctx, user.NormalizeEmail(identity.Email))
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if existing == nil {
		existing, err = uc.createUser(ctx, identity, cmd)
		if err != nil {
			return nil, err
		}
	}

	tokens, err := issueTokens(uc.tokens, existing)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "error", err, "user_id", existing.ID())
		return nil, err
	}

	uc.logger.Infow("social login successful", "provider", uc.provider, "user_id", existing.ID())
	return tokens, nil
}

func (uc *SocialLoginUseCase) createUser(ctx context.Context, identity *user.ExternalIdentity, cmd SocialLoginCommand) (*user.User, error) {
	// Apple sends the name only on first sign in, outside the token.
	firstName, lastName := identity.GivenName, identity.FamilyName
	if cmd.FirstName != "" {
		firstName = cmd.FirstName
	}
	if cmd.LastName != "" {
		lastName = cmd.LastName
	}

	hash, err := uc.passwordHasher.HashRandom()
	if err != nil {
		uc.logger.Errorw("failed to hash random password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(user.NewUserParams{
		Email:        identity.Email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         authorization.RoleUser,
		ProfilePic:   identity.Picture,
		Provider:     uc.provider,
		Verified:     true,
	})
	if err != nil {
		return nil, errors.NewUnauthorizedError("Identity token has an invalid email")
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err, "provider", uc.provider)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user created from social login", "provider", uc.provider, "user_id", newUser.ID())
	return newUser, nil
}
