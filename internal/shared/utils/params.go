package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace/internal/shared/errors"
)

// ParseUintParam reads a positive integer id from a URL path parameter.
// entityName is used in error messages (e.g., "plan", "store").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// CurrentUserID returns the authenticated user id set by the auth middleware.
func CurrentUserID(c *gin.Context) (uint, error) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, errors.NewUnauthorizedError("You are not authorized!")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.NewUnauthorizedError("You are not authorized!")
	}
	return id, nil
}
