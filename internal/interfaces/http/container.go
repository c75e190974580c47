package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"marketplace/internal/infrastructure/config"
	"marketplace/internal/infrastructure/permission"
	"marketplace/internal/infrastructure/storage"
	"marketplace/internal/interfaces/http/middleware"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/utils"
)

// Container holds the infrastructure components, repositories, use cases and
// handlers of the API and wires them together. Shutdown releases what it opened.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Infrastructure services
	svcs *services

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	enforcer *permission.Enforcer
	storage  *storage.LocalStorage
}

// NewContainer creates a Container with all dependencies wired together.
// It fails when Redis, the permission store or the upload directory is unavailable.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		ucs:    &allUseCases{},
	}

	// Section 1: Infrastructure - Redis, Repositories, Services, Middlewares
	if err := c.initInfrastructure(ctx); err != nil {
		c.Shutdown()
		return nil, err
	}

	// Section 2: Users & Auth - Registration, Login, Password Reset, Social Login
	c.initUsers()

	// Section 3: Billing - Plans, Subscriptions, Stripe Webhooks
	c.initBilling()

	// Section 4: Catalog - Stores, Categories, Blogs
	c.initCatalog()

	// Section 5: Contact form
	c.initContact()

	// Section 6: Handlers
	c.initHandlers()

	return c, nil
}

// SeedSuperAdmin creates the configured super admin account when it is missing.
func (c *Container) SeedSuperAdmin(ctx context.Context) error {
	created, err := c.ucs.seedSuperAdmin.Execute(ctx, c.cfg.SuperAdmin.Email, c.cfg.SuperAdmin.Password)
	if err != nil {
		return err
	}
	if created {
		c.log.Infow("super admin created", "email", utils.MaskEmail(c.cfg.SuperAdmin.Email))
	}
	return nil
}
