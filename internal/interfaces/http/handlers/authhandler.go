package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	userUsecases "marketplace/internal/application/user/usecases"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/utils"
)

const refreshTokenCookie = "refreshToken"

// AuthUseCases groups the use cases behind /auth.
type AuthUseCases struct {
	RequestRegistrationOTP requestRegistrationOTPUseCase
	VerifyRegistrationOTP  verifyRegistrationOTPUseCase
	VerifyEmail            tokenLinkUseCase
	VerifyResetLink        tokenLinkUseCase
	Login                  loginWithPasswordUseCase
	ChangePassword         changePasswordUseCase
	ForgotPassword         emailOnlyUseCase
	VerifyResetOTP         verifyResetOTPUseCase
	ResetPassword          resetPasswordUseCase
	ResendVerificationLink emailOnlyUseCase
	ResendResetPassLink    resetPasswordUseCase
	GetMe                  getMeUseCase
	RefreshToken           refreshTokenUseCase
	GoogleLogin            socialLoginUseCase
	AppleLogin             socialLoginUseCase
}

// CookieSettings controls the refresh token cookie set on login.
type CookieSettings struct {
	Secure bool
	MaxAge int
}

type AuthHandler struct {
	ucs         AuthUseCases
	frontendURL string
	cookie      CookieSettings
	logger      logger.Interface
}

func NewAuthHandler(ucs AuthUseCases, frontendURL string, cookie CookieSettings, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		ucs:         ucs,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		cookie:      cookie,
		logger:      logger,
	}
}

type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type RegistrationPayload struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type VerifyOTPRequest struct {
	OTPCode string              `json:"otpCode"`
	Data    RegistrationPayload `json:"data"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type VerifyResetOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
	Code    string `json:"code"`
}

type AppleLoginRequest struct {
	IdentityToken string `json:"identityToken"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
}

// RegisterUser emails a one-time code that completes sign-up.
// @Summary Request a registration OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Email"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/register-user [post]
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Email is required"))
		return
	}

	cmd := userUsecases.RequestRegistrationOTPCommand{Email: req.Email}
	if err := h.ucs.RequestRegistrationOTP.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "We have sent a 6-digit verification code to your email address. Please check your inbox and use the code to complete verification.", nil)
}

// VerifyOTP creates the account once the emailed code matches.
// @Summary Verify a registration OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "Code and account details"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	if strings.TrimSpace(req.Data.Email) == "" {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Email is required"))
		return
	}
	if req.Data.Password == "" {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Password is required"))
		return
	}

	tokens, err := h.ucs.VerifyRegistrationOTP.Execute(c.Request.Context(), userUsecases.VerifyRegistrationOTPCommand{
		OTP:       req.OTPCode,
		Email:     req.Data.Email,
		Password:  req.Data.Password,
		FirstName: req.Data.FirstName,
		LastName:  req.Data.LastName,
		Role:      req.Data.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Email verification completed successfully! Your account is now verified.", tokens)
}

// VerifyEmail confirms the emailed link and redirects to the frontend.
// @Summary Verify email address
// @Tags auth
// @Param token query string true "Verification token"
// @Success 302
// @Failure 401 {object} utils.APIResponse
// @Router /auth/verify-email [get]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	if err := h.ucs.VerifyEmail.Execute(c.Request.Context(), c.Query("token")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, h.frontendURL+"/success")
}

// VerifyResetPassword accepts the reset link and redirects to the reset form.
// @Summary Verify reset password link
// @Tags auth
// @Param token query string true "Reset token"
// @Success 302
// @Failure 401 {object} utils.APIResponse
// @Router /auth/verify-reset-password [get]
func (h *AuthHandler) VerifyResetPassword(c *gin.Context) {
	if err := h.ucs.VerifyResetLink.Execute(c.Request.Context(), c.Query("token")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, h.frontendURL+"/reset-password")
}

// Login authenticates with email and password.
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	tokens, err := h.ucs.Login.Execute(c.Request.Context(), userUsecases.LoginWithPasswordCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	utils.OKResponse(c, "User logged in successfully!", tokens)
}

// ChangePassword replaces the signed-in user's password.
// @Summary Change password
// @Tags auth
// @Security Bearer
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Passwords"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/change-password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	err = h.ucs.ChangePassword.Execute(c.Request.Context(), userUsecases.ChangePasswordCommand{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "User password changed successfully!", nil)
}

// ForgotPassword emails a reset code.
// @Summary Request a password reset OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Email"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	if err := h.ucs.ForgotPassword.Execute(c.Request.Context(), req.Email); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "A 6-digit OTP has been sent to your email. Please check your inbox.", nil)
}

// VerifyResetPasswordOTP unlocks the reset step when the code matches.
// @Summary Verify a password reset OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyResetOTPRequest true "Email and code"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/verify-reset-password-otp [post]
func (h *AuthHandler) VerifyResetPasswordOTP(c *gin.Context) {
	var req VerifyResetOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	err := h.ucs.VerifyResetOTP.Execute(c.Request.Context(), userUsecases.VerifyResetOTPCommand{
		Email: req.Email,
		OTP:   req.OTP,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "OTP verified successfully! You can now reset your password.", nil)
}

// ResetPassword sets a new password after a verified reset.
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "New password"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	err := h.ucs.ResetPassword.Execute(c.Request.Context(), userUsecases.ResetPasswordCommand{
		Email:           req.Email,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Password reset successfully!", nil)
}

// ResendVerificationLink emails a fresh verification link.
// @Summary Resend the email verification link
// @Tags auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Email"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/resend-verification-link [post]
func (h *AuthHandler) ResendVerificationLink(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	if err := h.ucs.ResendVerificationLink.Execute(c.Request.Context(), req.Email); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Verification link sent successfully. Please check your inbox.", nil)
}

// ResendResetPassLink sets the new password after a verified reset link and confirms it by email.
// @Summary Complete a link based password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "New password"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/resend-reset-pass-link [post]
func (h *AuthHandler) ResendResetPassLink(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	if req.ConfirmPassword == "" {
		req.ConfirmPassword = req.NewPassword
	}

	err := h.ucs.ResendResetPassLink.Execute(c.Request.Context(), userUsecases.ResetPasswordCommand{
		Email:           req.Email,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Password reset successfully!", nil)
}

// GetMe returns the signed-in profile with its subscription.
// @Summary Current user profile
// @Tags auth
// @Security Bearer
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	me, err := h.ucs.GetMe.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "User fetched successfully!", me)
}

// RefreshToken reads the refresh token from the cookie, falling back to the JSON body.
// @Summary Issue a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest false "Refresh token when no cookie is sent"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, _ := c.Cookie(refreshTokenCookie)
	if token == "" {
		var req RefreshTokenRequest
		_ = c.ShouldBindJSON(&req)
		token = req.RefreshToken
	}
	if token == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("You are not authorized!"))
		return
	}

	tokens, err := h.ucs.RefreshToken.Execute(c.Request.Context(), token)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Access token is retrieved successfully!", tokens)
}

// GoogleLogin accepts a Google id token or an authorization code.
// @Summary Sign in with Google
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleLoginRequest true "idToken or code"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/google-login [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	if req.IDToken == "" && req.Code == "" {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Google ID token is required"))
		return
	}

	tokens, err := h.ucs.GoogleLogin.Execute(c.Request.Context(), userUsecases.SocialLoginCommand{
		IDToken: req.IDToken,
		Code:    req.Code,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	utils.OKResponse(c, "Google login successful!", tokens)
}

// AppleLogin accepts an Apple identity token.
// @Summary Sign in with Apple
// @Tags auth
// @Accept json
// @Produce json
// @Param request body AppleLoginRequest true "Identity token"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/apple-login [post]
func (h *AuthHandler) AppleLogin(c *gin.Context) {
	var req AppleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	if req.IdentityToken == "" {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Apple identity token is required"))
		return
	}

	tokens, err := h.ucs.AppleLogin.Execute(c.Request.Context(), userUsecases.SocialLoginCommand{
		IDToken:   req.IdentityToken,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	utils.OKResponse(c, "Apple login successful!", tokens)
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	if token == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshTokenCookie, token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
}
