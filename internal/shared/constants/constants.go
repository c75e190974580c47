package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization   = "Authorization"
	HeaderXRequestID      = "X-Request-ID"
	HeaderStripeSignature = "Stripe-Signature"

	APIPrefix = "/api/v1"

	// Context keys
	ContextKeyUserID     = "user_id"
	ContextKeyUserEmail  = "user_email"
	ContextKeyUserRole   = "user_role"
	ContextKeyIsVerified = "is_verified"
	ContextKeyRequestID  = "request_id"

	// Database table names
	TableUsers           = "users"
	TableOTPs            = "otps"
	TablePlans           = "plans"
	TableSubscriptions   = "subscriptions"
	TableStores          = "stores"
	TableCategories      = "categories"
	TableStoreCategories = "store_categories"
	TableProducts        = "products"
	TableServices        = "services"
	TableConsultations   = "consultations"
	TableBlogs           = "blogs"

	// Upload limits
	MaxImageUploadBytes = 5 << 20
	MaxPDFUploadBytes   = 20 << 20

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "You are not authorized!"
	ErrMsgForbidden           = "Access forbidden"
)
