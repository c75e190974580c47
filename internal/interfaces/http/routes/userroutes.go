package routes

import (
	"github.com/gin-gonic/gin"

	"marketplace/internal/interfaces/http/handlers"
	"marketplace/internal/interfaces/http/middleware"
	"marketplace/internal/shared/authorization"
)

// UserRouteConfig holds dependencies for user routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures user routes.
func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	users := api.Group("/users")
	{
		users.POST("/register", cfg.UserHandler.Register)

		// Self-service profile updates
		usersProtected := users.Group("")
		usersProtected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			usersProtected.PATCH("/update", cfg.UserHandler.UpdateUser)
			usersProtected.PATCH("/update-profile", cfg.UserHandler.UpdateProfile)
		}

		usersAdmin := users.Group("")
		usersAdmin.Use(cfg.AuthMiddleware.RequireAuth())
		usersAdmin.Use(authorization.RequireAdmin())
		{
			usersAdmin.GET("", cfg.UserHandler.ListUsers)
			usersAdmin.GET("/:userId", cfg.UserHandler.GetUser)
			usersAdmin.DELETE("/:userId", cfg.UserHandler.DeleteUser)
		}
	}
}
