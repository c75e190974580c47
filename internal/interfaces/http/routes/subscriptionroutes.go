package routes

import (
	"github.com/gin-gonic/gin"

	"marketplace/internal/domain/permission"
	"marketplace/internal/interfaces/http/handlers"
	"marketplace/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler  *handlers.SubscriptionHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSubscriptionRoutes configures subscription routes and the Stripe webhook.
func SetupSubscriptionRoutes(api *gin.RouterGroup, cfg *SubscriptionRouteConfig) {
	subscriptions := api.Group("/subscriptions")
	{
		// Verified by signature instead of a bearer token
		subscriptions.POST("/stripe/webhook", cfg.SubscriptionHandler.StripeWebhook)

		subscriptionsProtected := subscriptions.Group("")
		subscriptionsProtected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			subscriptionsProtected.POST("/create-subscription",
				cfg.PermissionMiddleware.RequirePermission(permission.ResourceSubscription, permission.ActionCreate),
				cfg.SubscriptionHandler.CreateSubscription)
			subscriptionsProtected.GET("/my-subscription", cfg.SubscriptionHandler.GetMySubscription)
		}

		subscriptionsAdmin := subscriptions.Group("")
		subscriptionsAdmin.Use(cfg.AuthMiddleware.RequireAuth())
		{
			subscriptionsAdmin.GET("",
				cfg.PermissionMiddleware.RequirePermission(permission.ResourceSubscription, permission.ActionRead),
				cfg.SubscriptionHandler.ListSubscriptions)
			subscriptionsAdmin.GET("/:subscriptionId",
				cfg.PermissionMiddleware.RequirePermission(permission.ResourceSubscription, permission.ActionRead),
				cfg.SubscriptionHandler.GetSubscription)
			subscriptionsAdmin.PUT("/:subscriptionId",
				cfg.PermissionMiddleware.RequirePermission(permission.ResourceSubscription, permission.ActionUpdate),
				cfg.SubscriptionHandler.UpdateSubscription)
			subscriptionsAdmin.DELETE("/:subscriptionId",
				cfg.PermissionMiddleware.RequirePermission(permission.ResourceSubscription, permission.ActionDelete),
				cfg.SubscriptionHandler.DeleteSubscription)
		}
	}
}
