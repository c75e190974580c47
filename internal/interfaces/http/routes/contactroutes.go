package routes

import (
	"github.com/gin-gonic/gin"

	"marketplace/internal/interfaces/http/handlers"
)

// SetupContactRoutes configures the public contact form.
func SetupContactRoutes(api *gin.RouterGroup, contactHandler *handlers.ContactHandler) {
	contacts := api.Group("/contacts")
	{
		contacts.POST("", contactHandler.SendMessage)
	}
}
