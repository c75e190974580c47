package routes

import (
	"github.com/gin-gonic/gin"

	"marketplace/internal/domain/permission"
	"marketplace/internal/interfaces/http/handlers"
	"marketplace/internal/interfaces/http/middleware"
)

// BlogRouteConfig holds dependencies for blog routes.
type BlogRouteConfig struct {
	BlogHandler          *handlers.BlogHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupBlogRoutes configures blog routes.
func SetupBlogRoutes(api *gin.RouterGroup, cfg *BlogRouteConfig) {
	perm := cfg.PermissionMiddleware

	blogs := api.Group("/blogs")
	{
		blogs.GET("", cfg.BlogHandler.ListBlogs)
		blogs.GET("/:id", cfg.BlogHandler.GetBlog)

		blogsAdmin := blogs.Group("")
		blogsAdmin.Use(cfg.AuthMiddleware.RequireAuth())
		{
			blogsAdmin.POST("/create-blog",
				perm.RequirePermission(permission.ResourceBlog, permission.ActionCreate),
				cfg.BlogHandler.CreateBlog)
			blogsAdmin.PATCH("/update-blog/:id",
				perm.RequirePermission(permission.ResourceBlog, permission.ActionUpdate),
				cfg.BlogHandler.UpdateBlog)
			blogsAdmin.DELETE("/delete-blog/:id",
				perm.RequirePermission(permission.ResourceBlog, permission.ActionDelete),
				cfg.BlogHandler.DeleteBlog)
		}
	}
}
