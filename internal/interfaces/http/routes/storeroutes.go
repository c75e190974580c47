package routes

import (
	"github.com/gin-gonic/gin"

	"marketplace/internal/domain/permission"
	"marketplace/internal/interfaces/http/handlers"
	"marketplace/internal/interfaces/http/middleware"
)

// StoreRouteConfig holds dependencies for store routes.
type StoreRouteConfig struct {
	StoreHandler         *handlers.StoreHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupStoreRoutes configures store routes. Ownership of a store is checked by the use cases.
func SetupStoreRoutes(api *gin.RouterGroup, cfg *StoreRouteConfig) {
	perm := cfg.PermissionMiddleware

	stores := api.Group("/stores")
	{
		stores.GET("", cfg.StoreHandler.ListStores)
		stores.GET("/category/:categoryId", cfg.StoreHandler.ListStoresByCategory)

		storesProtected := stores.Group("")
		storesProtected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			storesProtected.POST("/create-store",
				perm.RequirePermission(permission.ResourceStore, permission.ActionCreate),
				cfg.StoreHandler.CreateStore)
			storesProtected.GET("/my/store", cfg.StoreHandler.GetMyStore)

			storesProtected.PATCH("/:id/approve",
				perm.RequirePermission(permission.ResourceStore, permission.ActionModerate),
				cfg.StoreHandler.ApproveStore)
			storesProtected.PATCH("/:id/reject",
				perm.RequirePermission(permission.ResourceStore, permission.ActionModerate),
				cfg.StoreHandler.RejectStore)

			ownerOnly := perm.RequirePermission(permission.ResourceStore, permission.ActionUpdate)
			storesProtected.PATCH("/:id/online", ownerOnly, cfg.StoreHandler.SetStoreOnline)
			storesProtected.PATCH("/:id/offline", ownerOnly, cfg.StoreHandler.SetStoreOffline)
			storesProtected.PATCH("/:id/categories", ownerOnly, cfg.StoreHandler.UpdateStoreCategories)
		}

		stores.GET("/:id", cfg.StoreHandler.GetStore)
	}
}
