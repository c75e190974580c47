package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "marketplace/docs"
	"marketplace/internal/infrastructure/storage"
	"marketplace/internal/interfaces/http/middleware"
	"marketplace/internal/interfaces/http/routes"
	"marketplace/internal/shared/constants"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)
	c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	c.engine.Static(storage.PublicPrefix, c.storage.Dir())

	api := c.engine.Group(constants.APIPrefix)

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.rateLimiter,
	})

	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:    c.hdlrs.userHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupPlanRoutes(api, &routes.PlanRouteConfig{
		PlanHandler:          c.hdlrs.planHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupSubscriptionRoutes(api, &routes.SubscriptionRouteConfig{
		SubscriptionHandler:  c.hdlrs.subscriptionHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupStoreRoutes(api, &routes.StoreRouteConfig{
		StoreHandler:         c.hdlrs.storeHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupCategoryRoutes(api, &routes.CategoryRouteConfig{
		CategoryHandler:      c.hdlrs.categoryHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupBlogRoutes(api, &routes.BlogRouteConfig{
		BlogHandler:          c.hdlrs.blogHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupContactRoutes(api, c.hdlrs.contactHandler)
}

// GetEngine returns the gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Shutdown releases the connections opened by the container.
// The database is owned by the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
