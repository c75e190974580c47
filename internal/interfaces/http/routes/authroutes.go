package routes

import (
	"github.com/gin-gonic/gin"

	"marketplace/internal/interfaces/http/handlers"
	"marketplace/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		// Registration by emailed code
		auth.POST("/register-user", cfg.RateLimiter.Limit(), cfg.AuthHandler.RegisterUser)
		auth.POST("/verify-otp", cfg.RateLimiter.Limit(), cfg.AuthHandler.VerifyOTP)
		auth.GET("/verify-email", cfg.AuthHandler.VerifyEmail)
		auth.POST("/resend-verification-link", cfg.AuthHandler.ResendVerificationLink)

		auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		auth.POST("/refresh-token", cfg.AuthHandler.RefreshToken)
		auth.POST("/google-login", cfg.AuthHandler.GoogleLogin)
		auth.POST("/apple-login", cfg.AuthHandler.AppleLogin)

		// Password recovery
		auth.POST("/forgot-password", cfg.RateLimiter.Limit(), cfg.AuthHandler.ForgotPassword)
		auth.GET("/verify-reset-password", cfg.AuthHandler.VerifyResetPassword)
		auth.POST("/verify-reset-password-otp", cfg.RateLimiter.Limit(), cfg.AuthHandler.VerifyResetPasswordOTP)
		auth.POST("/reset-password", cfg.AuthHandler.ResetPassword)
		auth.POST("/resend-reset-pass-link", cfg.AuthHandler.ResendResetPassLink)

		authProtected := auth.Group("")
		authProtected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			authProtected.GET("/me", cfg.AuthHandler.GetMe)
			authProtected.PUT("/change-password", cfg.AuthHandler.ChangePassword)
		}
	}
}
