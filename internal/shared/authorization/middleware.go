package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles aborts with 403 unless the authenticated role is one of roles.
// It expects the auth middleware to have set "user_role".
func RequireRoles(roles ...UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := UserRole(c.GetString("user_role"))
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"type":    "forbidden",
				"message": "You are not authorized!",
			},
		})
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(RoleAdmin, RoleSuperAdmin)
}

func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
