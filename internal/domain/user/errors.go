package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailExists       = errors.New("user with this email already exists")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrAlreadyVerified   = errors.New("user is already verified")
	ErrNotVerified       = errors.New("user is not verified")
	ErrOTPNotFound       = errors.New("no pending otp for this email")
	ErrInvalidOTP        = errors.New("invalid otp")
	ErrOTPExpired        = errors.New("otp has expired")
	ErrResetNotRequested = errors.New("password reset was not requested")
	ErrResetNotAllowed   = errors.New("password reset is not allowed")
)
