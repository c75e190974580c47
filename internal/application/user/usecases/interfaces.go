package usecases

import (
	"context"
	"time"

	"marketplace/internal/domain/subscription"
	"marketplace/internal/domain/user"
	"marketplace/internal/shared/authorization"
)

type TokenService interface {
	// Generate returns an access token and a refresh token.
	Generate(userID uint, email string, role authorization.UserRole, isVerified bool) (string, string, error)
	GenerateAccess(userID uint, email string, role authorization.UserRole, isVerified bool) (string, error)
	GenerateLinkToken(userID uint, email, purpose string) (string, error)
	// VerifyRefresh returns the user id and the issue time of the token.
	VerifyRefresh(token string) (uint, time.Time, error)
	VerifyLinkToken(token, purpose string) (uint, error)
}

type EmailService interface {
	SendRegistrationOTP(ctx context.Context, to, otp string) error
	SendVerificationLink(ctx context.Context, to, name, link string) error
	SendResetOTP(ctx context.Context, to, name, otp string) error
	SendPasswordChanged(ctx context.Context, to, name string) error
}

type OTPGenerator interface {
	Generate() (string, error)
}

// IDTokenVerifier checks a provider identity token's signature, issuer, audience and expiry.
type IDTokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*user.ExternalIdentity, error)
}

// CodeExchanger trades an OAuth authorization code for an identity token.
type CodeExchanger interface {
	ExchangeForIDToken(ctx context.Context, code string) (string, error)
}

type SubscriptionReader interface {
	GetByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error)
}

type PlanReader interface {
	GetByID(ctx context.Context, id uint) (*subscription.Plan, error)
}
