package http

import (
	blogUsecases "marketplace/internal/application/blog/usecases"
	categoryUsecases "marketplace/internal/application/category/usecases"
	contactUsecases "marketplace/internal/application/contact/usecases"
	paymentUsecases "marketplace/internal/application/payment/usecases"
	storeUsecases "marketplace/internal/application/store/usecases"
	subscriptionUsecases "marketplace/internal/application/subscription/usecases"
	userUsecases "marketplace/internal/application/user/usecases"
)

// allUseCases holds every use case the handlers depend on.
type allUseCases struct {
	// Users & auth
	requestRegistrationOTP *userUsecases.RequestRegistrationOTPUseCase
	verifyRegistrationOTP  *userUsecases.VerifyRegistrationOTPUseCase
	registerUser           *userUsecases.RegisterUserUseCase
	verifyEmail            *userUsecases.VerifyEmailUseCase
	resendVerificationLink *userUsecases.ResendVerificationLinkUseCase
	loginWithPassword      *userUsecases.LoginWithPasswordUseCase
	refreshToken           *userUsecases.RefreshTokenUseCase
	changePassword         *userUsecases.ChangePasswordUseCase
	forgotPassword         *userUsecases.ForgotPasswordUseCase
	verifyResetOTP         *userUsecases.VerifyResetOTPUseCase
	verifyResetLink        *userUsecases.VerifyResetLinkUseCase
	resetPassword          *userUsecases.ResetPasswordUseCase
	resetPasswordNotice    *userUsecases.ResetPasswordUseCase
	googleLogin            *userUsecases.SocialLoginUseCase
	appleLogin             *userUsecases.SocialLoginUseCase
	getMe                  *userUsecases.GetMeUseCase
	listUsers              *userUsecases.ListUsersUseCase
	getUser                *userUsecases.GetUserUseCase
	updateUser             *userUsecases.UpdateUserUseCase
	updateProfile          *userUsecases.UpdateProfileUseCase
	deleteUser             *userUsecases.DeleteUserUseCase
	seedSuperAdmin         *userUsecases.SeedSuperAdminUseCase

	// Billing
	createPlan           *subscriptionUsecases.CreatePlanUseCase
	updatePlan           *subscriptionUsecases.UpdatePlanUseCase
	getPlan              *subscriptionUsecases.GetPlanUseCase
	listPlans            *subscriptionUsecases.ListPlansUseCase
	deletePlan           *subscriptionUsecases.DeletePlanUseCase
	createSubscription   *subscriptionUsecases.CreateSubscriptionUseCase
	getMySubscription    *subscriptionUsecases.GetMySubscriptionUseCase
	listSubscriptions    *subscriptionUsecases.ListSubscriptionsUseCase
	getSubscription      *subscriptionUsecases.GetSubscriptionUseCase
	updateSubscription   *subscriptionUsecases.UpdateSubscriptionUseCase
	deleteSubscription   *subscriptionUsecases.DeleteSubscriptionUseCase
	completeSubscription *subscriptionUsecases.CompleteSubscriptionUseCase
	failSubscription     *subscriptionUsecases.FailSubscriptionUseCase
	handleWebhook        *paymentUsecases.HandleWebhookUseCase

	// Catalog
	createStore           *storeUsecases.CreateStoreUseCase
	listStores            *storeUsecases.ListStoresUseCase
	listStoresByCategory  *storeUsecases.ListStoresByCategoryUseCase
	getStore              *storeUsecases.GetStoreUseCase
	getMyStore            *storeUsecases.GetMyStoreUseCase
	approveStore          *storeUsecases.ModerateStoreUseCase
	rejectStore           *storeUsecases.ModerateStoreUseCase
	setStoreOnline        *storeUsecases.SetStoreStatusUseCase
	setStoreOffline       *storeUsecases.SetStoreStatusUseCase
	updateStoreCategories *storeUsecases.UpdateStoreCategoriesUseCase

	createCategory       *categoryUsecases.CreateCategoryUseCase
	listCategories       *categoryUsecases.ListCategoriesUseCase
	listCategoriesByType *categoryUsecases.ListCategoriesByTypeUseCase
	getCategory          *categoryUsecases.GetCategoryUseCase
	updateCategory       *categoryUsecases.UpdateCategoryUseCase
	deleteCategory       *categoryUsecases.DeleteCategoryUseCase

	createBlog *blogUsecases.CreateBlogUseCase
	listBlogs  *blogUsecases.ListBlogsUseCase
	getBlog    *blogUsecases.GetBlogUseCase
	updateBlog *blogUsecases.UpdateBlogUseCase
	deleteBlog *blogUsecases.DeleteBlogUseCase

	// Contact
	sendContactMessage *contactUsecases.SendContactMessageUseCase
}

func (c *Container) initUsers() {
	repos, svcs, log := c.repos, c.svcs, c.log
	authCfg := c.cfg.Auth
	ttl := otpTTL(authCfg.OTP.TTLMinutes)

	c.ucs.requestRegistrationOTP = userUsecases.NewRequestRegistrationOTPUseCase(repos.userRepo, repos.otpRepo, svcs.otpGen, svcs.emailSvc, ttl, log)
	c.ucs.verifyRegistrationOTP = userUsecases.NewVerifyRegistrationOTPUseCase(repos.userRepo, repos.otpRepo, svcs.hasher, svcs.jwt, svcs.txMgr, log)
	c.ucs.registerUser = userUsecases.NewRegisterUserUseCase(repos.userRepo, svcs.hasher, svcs.jwt, svcs.emailSvc, authCfg.VerifyEmailURL, log)
	c.ucs.verifyEmail = userUsecases.NewVerifyEmailUseCase(repos.userRepo, svcs.jwt, log)
	c.ucs.resendVerificationLink = userUsecases.NewResendVerificationLinkUseCase(repos.userRepo, svcs.jwt, svcs.emailSvc, authCfg.VerifyEmailURL, log)
	c.ucs.loginWithPassword = userUsecases.NewLoginWithPasswordUseCase(repos.userRepo, svcs.hasher, svcs.jwt, log)
	c.ucs.refreshToken = userUsecases.NewRefreshTokenUseCase(repos.userRepo, svcs.jwt, log)
	c.ucs.changePassword = userUsecases.NewChangePasswordUseCase(repos.userRepo, svcs.hasher, log)
	c.ucs.forgotPassword = userUsecases.NewForgotPasswordUseCase(repos.userRepo, svcs.otpGen, svcs.emailSvc, ttl, log)
	c.ucs.verifyResetOTP = userUsecases.NewVerifyResetOTPUseCase(repos.userRepo, log)
	c.ucs.verifyResetLink = userUsecases.NewVerifyResetLinkUseCase(repos.userRepo, svcs.jwt, log)
	c.ucs.resetPassword = userUsecases.NewResetPasswordUseCase(repos.userRepo, svcs.hasher, log)
	c.ucs.resetPasswordNotice = userUsecases.NewResetPasswordWithNoticeUseCase(repos.userRepo, svcs.hasher, svcs.emailSvc, log)
	c.ucs.googleLogin = userUsecases.NewGoogleLoginUseCase(svcs.googleVerifier, svcs.googleCode, repos.userRepo, svcs.hasher, svcs.jwt, log.Named("google"))
	c.ucs.appleLogin = userUsecases.NewAppleLoginUseCase(svcs.appleVerifier, repos.userRepo, svcs.hasher, svcs.jwt, log.Named("apple"))
	c.ucs.getMe = userUsecases.NewGetMeUseCase(repos.userRepo, repos.subscriptionRepo, repos.planRepo, log)
	c.ucs.listUsers = userUsecases.NewListUsersUseCase(repos.userRepo, log)
	c.ucs.getUser = userUsecases.NewGetUserUseCase(repos.userRepo, log)
	c.ucs.updateUser = userUsecases.NewUpdateUserUseCase(repos.userRepo, log)
	c.ucs.updateProfile = userUsecases.NewUpdateProfileUseCase(repos.userRepo, log)
	c.ucs.deleteUser = userUsecases.NewDeleteUserUseCase(repos.userRepo, log)
	c.ucs.seedSuperAdmin = userUsecases.NewSeedSuperAdminUseCase(repos.userRepo, svcs.hasher, log)
}

func (c *Container) initBilling() {
	repos, svcs, log := c.repos, c.svcs, c.log
	gateway := svcs.stripe

	c.ucs.createPlan = subscriptionUsecases.NewCreatePlanUseCase(repos.planRepo, gateway, svcs.txMgr, c.cfg.Stripe.Currency, log)
	c.ucs.updatePlan = subscriptionUsecases.NewUpdatePlanUseCase(repos.planRepo, gateway, svcs.txMgr, log)
	c.ucs.getPlan = subscriptionUsecases.NewGetPlanUseCase(repos.planRepo, log)
	c.ucs.listPlans = subscriptionUsecases.NewListPlansUseCase(repos.planRepo, log)
	c.ucs.deletePlan = subscriptionUsecases.NewDeletePlanUseCase(repos.planRepo, gateway, svcs.txMgr, log)

	c.ucs.createSubscription = subscriptionUsecases.NewCreateSubscriptionUseCase(repos.subscriptionRepo, repos.planRepo, repos.userRepo, gateway, svcs.txMgr, log)
	c.ucs.getMySubscription = subscriptionUsecases.NewGetMySubscriptionUseCase(repos.subscriptionRepo, repos.planRepo, repos.userRepo, log)
	c.ucs.listSubscriptions = subscriptionUsecases.NewListSubscriptionsUseCase(repos.subscriptionRepo, log)
	c.ucs.getSubscription = subscriptionUsecases.NewGetSubscriptionUseCase(repos.subscriptionRepo, repos.planRepo, log)
	c.ucs.updateSubscription = subscriptionUsecases.NewUpdateSubscriptionUseCase(repos.subscriptionRepo, log)
	c.ucs.deleteSubscription = subscriptionUsecases.NewDeleteSubscriptionUseCase(repos.subscriptionRepo, log)
	c.ucs.completeSubscription = subscriptionUsecases.NewCompleteSubscriptionUseCase(repos.subscriptionRepo, repos.userRepo, svcs.txMgr, log)
	c.ucs.failSubscription = subscriptionUsecases.NewFailSubscriptionUseCase(repos.subscriptionRepo, svcs.txMgr, log)

	c.ucs.handleWebhook = paymentUsecases.NewHandleWebhookUseCase(
		gateway,
		svcs.webhookDedup,
		c.ucs.completeSubscription,
		c.ucs.failSubscription,
		log.Named("webhook"),
	)
}

func (c *Container) initCatalog() {
	repos, svcs, log := c.repos, c.svcs, c.log

	c.ucs.createStore = storeUsecases.NewCreateStoreUseCase(repos.storeRepo, repos.categoryRepo, svcs.txMgr, log)
	c.ucs.listStores = storeUsecases.NewListStoresUseCase(repos.storeRepo, log)
	c.ucs.listStoresByCategory = storeUsecases.NewListStoresByCategoryUseCase(repos.storeRepo, repos.categoryRepo, log)
	c.ucs.getStore = storeUsecases.NewGetStoreUseCase(repos.storeRepo, log)
	c.ucs.getMyStore = storeUsecases.NewGetMyStoreUseCase(repos.storeRepo, log)
	c.ucs.approveStore = storeUsecases.NewApproveStoreUseCase(repos.storeRepo, log)
	c.ucs.rejectStore = storeUsecases.NewRejectStoreUseCase(repos.storeRepo, log)
	c.ucs.setStoreOnline = storeUsecases.NewSetStoreOnlineUseCase(repos.storeRepo, log)
	c.ucs.setStoreOffline = storeUsecases.NewSetStoreOfflineUseCase(repos.storeRepo, log)
	c.ucs.updateStoreCategories = storeUsecases.NewUpdateStoreCategoriesUseCase(repos.storeRepo, repos.categoryRepo, svcs.txMgr, log)

	c.ucs.createCategory = categoryUsecases.NewCreateCategoryUseCase(repos.categoryRepo, log)
	c.ucs.listCategories = categoryUsecases.NewListCategoriesUseCase(repos.categoryRepo, log)
	c.ucs.listCategoriesByType = categoryUsecases.NewListCategoriesByTypeUseCase(repos.categoryRepo, log)
	c.ucs.getCategory = categoryUsecases.NewGetCategoryUseCase(repos.categoryRepo, log)
	c.ucs.updateCategory = categoryUsecases.NewUpdateCategoryUseCase(repos.categoryRepo, log)
	c.ucs.deleteCategory = categoryUsecases.NewDeleteCategoryUseCase(repos.categoryRepo, log)

	c.ucs.createBlog = blogUsecases.NewCreateBlogUseCase(repos.blogRepo, svcs.renderer, log)
	c.ucs.listBlogs = blogUsecases.NewListBlogsUseCase(repos.blogRepo, log)
	c.ucs.getBlog = blogUsecases.NewGetBlogUseCase(repos.blogRepo, svcs.txMgr, log)
	c.ucs.updateBlog = blogUsecases.NewUpdateBlogUseCase(repos.blogRepo, svcs.renderer, log)
	c.ucs.deleteBlog = blogUsecases.NewDeleteBlogUseCase(repos.blogRepo, log)
}

func (c *Container) initContact() {
	c.ucs.sendContactMessage = contactUsecases.NewSendContactMessageUseCase(c.svcs.emailSvc, c.svcs.renderer, c.log)
}
