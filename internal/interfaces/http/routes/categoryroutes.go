package routes

import (
	"github.com/gin-gonic/gin"

	"marketplace/internal/domain/permission"
	"marketplace/internal/interfaces/http/handlers"
	"marketplace/internal/interfaces/http/middleware"
)

// CategoryRouteConfig holds dependencies for category routes.
type CategoryRouteConfig struct {
	CategoryHandler      *handlers.CategoryHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupCategoryRoutes configures category routes.
func SetupCategoryRoutes(api *gin.RouterGroup, cfg *CategoryRouteConfig) {
	perm := cfg.PermissionMiddleware

	categories := api.Group("/categorys")
	{
		categories.GET("", cfg.CategoryHandler.ListCategories)
		categories.GET("/type/:type", cfg.CategoryHandler.ListCategoriesByType)
		categories.GET("/:id", cfg.CategoryHandler.GetCategory)

		categoriesAdmin := categories.Group("")
		categoriesAdmin.Use(cfg.AuthMiddleware.RequireAuth())
		{
			categoriesAdmin.POST("/create-one",
				perm.RequirePermission(permission.ResourceCategory, permission.ActionCreate),
				cfg.CategoryHandler.CreateCategory)
			categoriesAdmin.PATCH("/:id",
				perm.RequirePermission(permission.ResourceCategory, permission.ActionUpdate),
				cfg.CategoryHandler.UpdateCategory)
			categoriesAdmin.DELETE("/:id",
				perm.RequirePermission(permission.ResourceCategory, permission.ActionDelete),
				cfg.CategoryHandler.DeleteCategory)
		}
	}
}
