package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"marketplace/internal/infrastructure/auth"
	"marketplace/internal/shared/constants"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/utils"
)

// AccessTokenVerifier validates bearer tokens issued at login.
type AccessTokenVerifier interface {
	VerifyAccess(tokenString string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier AccessTokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier AccessTokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth accepts "Bearer <token>" as well as a bare token in the Authorization header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader(constants.HeaderAuthorization))
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		claims, err := m.verifier.VerifyAccess(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err, "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth populates the user context when a valid token is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c.GetHeader(constants.HeaderAuthorization)); token != "" {
			if claims, err := m.verifier.VerifyAccess(token); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(constants.ContextKeyUserID, claims.UserID)
	c.Set(constants.ContextKeyUserEmail, claims.Email)
	c.Set(constants.ContextKeyUserRole, string(claims.Role))
	c.Set(constants.ContextKeyIsVerified, claims.IsVerified)
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}
