package http

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/infrastructure/auth"
	"marketplace/internal/infrastructure/cache"
	"marketplace/internal/infrastructure/email"
	"marketplace/internal/infrastructure/payment"
	"marketplace/internal/infrastructure/permission"
	"marketplace/internal/infrastructure/ratelimit"
	"marketplace/internal/infrastructure/storage"
	"marketplace/internal/infrastructure/token"
	"marketplace/internal/interfaces/http/middleware"
	shareddb "marketplace/internal/shared/db"
	"marketplace/internal/shared/services/content"
)

const webhookDedupTTL = 24 * time.Hour

// services holds the infrastructure adapters shared by several use cases.
type services struct {
	txMgr          *shareddb.TransactionManager
	jwt            *auth.JWTService
	hasher         *auth.BcryptPasswordHasher
	otpGen         token.OTPGenerator
	googleVerifier *auth.IDTokenVerifier
	appleVerifier  *auth.IDTokenVerifier
	googleCode     *auth.GoogleCodeExchanger
	emailSvc       *email.Service
	stripe         *payment.StripeGateway
	webhookDedup   *cache.WebhookDeduplicator
	renderer       content.Renderer
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.cfg
	log := c.log

	redisClient, err := cache.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.redis = redisClient
	log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())

	c.repos = newRepositories(c.db, log)

	c.enforcer, err = permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.InitDefaultPermissions(c.enforcer, log); err != nil {
		return fmt.Errorf("failed to initialize permissions: %w", err)
	}

	c.storage, err = storage.NewLocalStorage(cfg.Upload.Dir, cfg.Upload.PublicBaseURL, log.Named("storage"))
	if err != nil {
		return fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	c.svcs = newServices(c)

	c.authMiddleware = middleware.NewAuthMiddleware(c.svcs.jwt, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)
	c.rateLimiter = middleware.NewRateLimiter(
		ratelimit.NewRedisRateLimiter(c.redis),
		ratelimit.Policy{
			Requests: cfg.RateLimit.Requests,
			Window:   time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
		},
		log,
	)

	return nil
}

func newServices(c *Container) *services {
	cfg := c.cfg
	log := c.log
	jwtCfg := cfg.Auth.JWT

	// A nil *SMTPSender must not end up inside the Sender interface.
	var sender email.Sender
	if smtp := email.NewSMTPSender(&cfg.Email); smtp != nil {
		sender = smtp
	} else {
		log.Warnw("smtp host not configured, outgoing email is disabled")
	}

	return &services{
		txMgr:          shareddb.NewTransactionManager(c.db),
		jwt:            auth.NewJWTService(jwtCfg.Secret, jwtCfg.RefreshSecret, jwtCfg.AccessExpMinutes, jwtCfg.RefreshExpDays, jwtCfg.LinkExpMinutes),
		hasher:         auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		otpGen:         token.NewOTPGenerator(),
		googleVerifier: auth.NewGoogleIDTokenVerifier(cfg.OAuth.Google.ClientIDs, auth.NewMemoryKeySetCache()),
		appleVerifier:  auth.NewAppleIDTokenVerifier(cfg.OAuth.Apple.ClientIDs, auth.NewMemoryKeySetCache()),
		googleCode: auth.NewGoogleCodeExchanger(auth.GoogleOAuthConfig{
			ClientID:     cfg.OAuth.Google.ClientID(),
			ClientSecret: cfg.OAuth.Google.ClientSecret,
			RedirectURL:  cfg.OAuth.Google.RedirectURL,
		}),
		emailSvc:     email.NewService(sender, cfg.Email.ContactInbox, otpTTL(cfg.Auth.OTP.TTLMinutes), log.Named("email")),
		stripe:       payment.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, log.Named("stripe")),
		webhookDedup: cache.NewWebhookDeduplicator(c.redis, webhookDedupTTL),
		renderer:     content.NewRenderer(),
	}
}

func otpTTL(minutes int) time.Duration {
	return time.Duration(minutes) * time.Minute
}
