package http

import (
	"gorm.io/gorm"

	"marketplace/internal/domain/blog"
	"marketplace/internal/domain/category"
	"marketplace/internal/domain/store"
	"marketplace/internal/domain/subscription"
	"marketplace/internal/domain/user"
	"marketplace/internal/infrastructure/repository"
	"marketplace/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo         user.Repository
	otpRepo          user.OTPRepository
	planRepo         subscription.PlanRepository
	subscriptionRepo subscription.SubscriptionRepository
	storeRepo        store.Repository
	categoryRepo     category.Repository
	blogRepo         blog.Repository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:         repository.NewUserRepository(db, log),
		otpRepo:          repository.NewOTPRepository(db, log),
		planRepo:         repository.NewPlanRepository(db, log),
		subscriptionRepo: repository.NewSubscriptionRepository(db, log),
		storeRepo:        repository.NewStoreRepository(db, log),
		categoryRepo:     repository.NewCategoryRepository(db, log),
		blogRepo:         repository.NewBlogRepository(db, log),
	}
}
