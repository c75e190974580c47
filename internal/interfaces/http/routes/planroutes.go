package routes

import (
	"github.com/gin-gonic/gin"

	"marketplace/internal/domain/permission"
	"marketplace/internal/interfaces/http/handlers"
	"marketplace/internal/interfaces/http/middleware"
)

// PlanRouteConfig holds dependencies for plan routes.
type PlanRouteConfig struct {
	PlanHandler          *handlers.PlanHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupPlanRoutes configures plan routes.
func SetupPlanRoutes(api *gin.RouterGroup, cfg *PlanRouteConfig) {
	plans := api.Group("/plans")
	{
		// Public endpoints (no authentication required)
		plans.GET("", cfg.PlanHandler.ListPlans)
		plans.GET("/:planId", cfg.PlanHandler.GetPlan)

		plansAdmin := plans.Group("")
		plansAdmin.Use(cfg.AuthMiddleware.RequireAuth())
		{
			plansAdmin.POST("/create-plan",
				cfg.PermissionMiddleware.RequirePermission(permission.ResourcePlan, permission.ActionCreate),
				cfg.PlanHandler.CreatePlan)
			plansAdmin.PATCH("/:planId",
				cfg.PermissionMiddleware.RequirePermission(permission.ResourcePlan, permission.ActionUpdate),
				cfg.PlanHandler.UpdatePlan)
			plansAdmin.DELETE("/:planId",
				cfg.PermissionMiddleware.RequirePermission(permission.ResourcePlan, permission.ActionDelete),
				cfg.PlanHandler.DeletePlan)
		}
	}
}
