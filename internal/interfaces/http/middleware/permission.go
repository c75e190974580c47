package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/internal/domain/permission"
	"marketplace/internal/shared/constants"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/utils"
)

type PermissionMiddleware struct {
	enforcer permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer permission.Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission must run after RequireAuth; it checks the role carried by the access token.
func (m *PermissionMiddleware) RequirePermission(resource permission.Resource, action permission.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied",
				"user_id", c.GetUint(constants.ContextKeyUserID),
				"role", role,
				"resource", resource,
				"action", action)
			utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		c.Next()
	}
}
