package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"marketplace/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances.
type allHandlers struct {
	healthHandler       *handlers.HealthHandler
	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	planHandler         *handlers.PlanHandler
	subscriptionHandler *handlers.SubscriptionHandler
	storeHandler        *handlers.StoreHandler
	categoryHandler     *handlers.CategoryHandler
	blogHandler         *handlers.BlogHandler
	contactHandler      *handlers.ContactHandler
}

func (c *Container) initHandlers() {
	ucs, log := c.ucs, c.log

	c.hdlrs = &allHandlers{
		healthHandler: handlers.NewHealthHandler("marketplace", map[string]handlers.HealthCheck{
			"database": c.pingDatabase,
			"redis": func(ctx context.Context) error {
				return c.redis.Ping(ctx).Err()
			},
		}, log),

		authHandler: handlers.NewAuthHandler(handlers.AuthUseCases{
			RequestRegistrationOTP: ucs.requestRegistrationOTP,
			VerifyRegistrationOTP:  ucs.verifyRegistrationOTP,
			VerifyEmail:            ucs.verifyEmail,
			VerifyResetLink:        ucs.verifyResetLink,
			Login:                  ucs.loginWithPassword,
			ChangePassword:         ucs.changePassword,
			ForgotPassword:         ucs.forgotPassword,
			VerifyResetOTP:         ucs.verifyResetOTP,
			ResetPassword:          ucs.resetPassword,
			ResendVerificationLink: ucs.resendVerificationLink,
			ResendResetPassLink:    ucs.resetPasswordNotice,
			GetMe:                  ucs.getMe,
			RefreshToken:           ucs.refreshToken,
			GoogleLogin:            ucs.googleLogin,
			AppleLogin:             ucs.appleLogin,
		}, c.cfg.Server.FrontendURL, handlers.CookieSettings{
			Secure: c.cfg.Server.Mode == gin.ReleaseMode,
			MaxAge: c.cfg.Auth.JWT.RefreshExpDays * 24 * 60 * 60,
		}, log),

		userHandler: handlers.NewUserHandler(
			ucs.registerUser,
			ucs.listUsers,
			ucs.getUser,
			ucs.updateUser,
			ucs.updateProfile,
			ucs.deleteUser,
			c.storage,
			log,
		),

		planHandler: handlers.NewPlanHandler(
			ucs.createPlan,
			ucs.updatePlan,
			ucs.getPlan,
			ucs.listPlans,
			ucs.deletePlan,
			log,
		),

		subscriptionHandler: handlers.NewSubscriptionHandler(
			ucs.createSubscription,
			ucs.getMySubscription,
			ucs.listSubscriptions,
			ucs.getSubscription,
			ucs.updateSubscription,
			ucs.deleteSubscription,
			ucs.handleWebhook,
			log,
		),

		storeHandler: handlers.NewStoreHandler(handlers.StoreUseCases{
			Create:           ucs.createStore,
			List:             ucs.listStores,
			ListByCategory:   ucs.listStoresByCategory,
			Get:              ucs.getStore,
			GetMine:          ucs.getMyStore,
			Approve:          ucs.approveStore,
			Reject:           ucs.rejectStore,
			SetOnline:        ucs.setStoreOnline,
			SetOffline:       ucs.setStoreOffline,
			UpdateCategories: ucs.updateStoreCategories,
		}, log),

		categoryHandler: handlers.NewCategoryHandler(
			ucs.createCategory,
			ucs.listCategories,
			ucs.listCategoriesByType,
			ucs.getCategory,
			ucs.updateCategory,
			ucs.deleteCategory,
			log,
		),

		blogHandler: handlers.NewBlogHandler(
			ucs.createBlog,
			ucs.listBlogs,
			ucs.getBlog,
			ucs.updateBlog,
			ucs.deleteBlog,
			c.storage,
			log,
		),

		contactHandler: handlers.NewContactHandler(ucs.sendContactMessage, log),
	}
}

func (c *Container) pingDatabase(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
