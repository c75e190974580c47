package user

import (
	"net/mail"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"marketplace/internal/shared/authorization"
)

type AuthProvider string

const (
	ProviderEmail  AuthProvider = "email"
	ProviderGoogle AuthProvider = "google"
	ProviderApple  AuthProvider = "apple"
)

// User is the account aggregate. Reset-password state lives on the user:
// isResetPassword marks a pending request and canResetPassword is set once
// the reset OTP or link has been verified.
type User struct {
	id                uint
	firstName         string
	lastName          string
	fullName          string
	email             string
	passwordHash      string
	role              authorization.UserRole
	profilePic        string
	provider          AuthProvider
	isVerified        bool
	isSubscribed      bool
	planExpiration    *time.Time
	passwordChangedAt *time.Time
	isResetPassword   bool
	canResetPassword  bool
	resetOTP          string
	resetOTPExpiresAt *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

// NewUserParams carries the inputs for a new account.
type NewUserParams struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         authorization.UserRole
	ProfilePic   string
	Provider     AuthProvider
	Verified     bool
}

// NormalizeEmail lower-cases and trims an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email parses as a bare address.
func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func normalizeName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	// Casers keep state, so one is built per call.
	return cases.Title(language.Und).String(name)
}

func NewUser(p NewUserParams) (*User, error) {
	email := NormalizeEmail(p.Email)
	if !ValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	role := p.Role
	if !role.IsValid() {
		role = authorization.RoleUser
	}
	provider := p.Provider
	if provider == "" {
		provider = ProviderEmail
	}

	now := time.Now().UTC()
	return &User{
		firstName:    normalizeName(p.FirstName),
		lastName:     normalizeName(p.LastName),
		email:        email,
		passwordHash: p.PasswordHash,
		role:         role,
		profilePic:   p.ProfilePic,
		provider:     provider,
		isVerified:   p.Verified,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructParams mirrors every persisted column of a user.
type ReconstructParams struct {
	ID                uint
	FirstName         string
	LastName          string
	FullName          string
	Email             string
	PasswordHash      string
	Role              string
	ProfilePic        string
	Provider          string
	IsVerified        bool
	IsSubscribed      bool
	PlanExpiration    *time.Time
	PasswordChangedAt *time.Time
	IsResetPassword   bool
	CanResetPassword  bool
	ResetOTP          string
	ResetOTPExpiresAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func Reconstruct(p ReconstructParams) *User {
	return &User{
		id:                p.ID,
		firstName:         p.FirstName,
		lastName:          p.LastName,
		fullName:          p.FullName,
		email:             p.Email,
		passwordHash:      p.PasswordHash,
		role:              authorization.ParseUserRole(p.Role),
		profilePic:        p.ProfilePic,
		provider:          AuthProvider(p.Provider),
		isVerified:        p.IsVerified,
		isSubscribed:      p.IsSubscribed,
		planExpiration:    p.PlanExpiration,
		passwordChangedAt: p.PasswordChangedAt,
		isResetPassword:   p.IsResetPassword,
		canResetPassword:  p.CanResetPassword,
		resetOTP:          p.ResetOTP,
		resetOTPExpiresAt: p.ResetOTPExpiresAt,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}
}

func (u *User) ID() uint { return u.id }
func (u *User) SetID(id uint) { u.id = id }
func (u *User) FirstName() string { return u.firstName }
func (u *User) LastName() string { return u.lastName }
func (u *User) Email() string { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) ProfilePic() string { return u.profilePic }
func (u *User) Provider() AuthProvider { return u.provider }
func (u *User) IsVerified() bool { return u.isVerified }
func (u *User) IsSubscribed() bool { return u.isSubscribed }
func (u *User) PlanExpiration() *time.Time { return u.planExpiration }
func (u *User) PasswordChangedAt() *time.Time { return u.passwordChangedAt }
func (u *User) IsResetPassword() bool { return u.isResetPassword }
func (u *User) CanResetPassword() bool { return u.canResetPassword }
func (u *User) ResetOTP() string { return u.resetOTP }
func (u *User) ResetOTPExpiresAt() *time.Time { return u.resetOTPExpiresAt }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// FullName returns the explicit full name, falling back to first and last name.
func (u *User) FullName() string {
	if u.fullName != "" {
		return u.fullName
	}
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

// RawFullName is the stored full name without fallback.
func (u *User) RawFullName() string {
	return u.fullName
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
}

func (u *User) MarkVerified() error {
	if u.isVerified {
		return ErrAlreadyVerified
	}
	u.isVerified = true
	u.touch()
	return nil
}

// SetPassword stores a new hash and stamps passwordChangedAt.
func (u *User) SetPassword(hash string, now time.Time) {
	u.passwordHash = hash
	changed := now.UTC()
	u.passwordChangedAt = &changed
	u.touch()
}

// PasswordChangedAfter reports whether the password changed after a token
// issued at iat. Comparison is done in whole seconds, as JWT iat is.
func (u *User) PasswordChangedAfter(iat time.Time) bool {
	if u.passwordChangedAt == nil {
		return false
	}
	return u.passwordChangedAt.Unix() > iat.Unix()
}

// RequestPasswordReset stores a reset OTP. Only verified users may reset.
func (u *User) RequestPasswordReset(otp string, expiresAt time.Time) error {
	if !u.isVerified {
		return ErrNotVerified
	}
	exp := expiresAt.UTC()
	u.isResetPassword = true
	u.canResetPassword = false
	u.resetOTP = otp
	u.resetOTPExpiresAt = &exp
	u.touch()
	return nil
}

// VerifyResetOTP checks the reset OTP and, on success, unlocks password reset.
func (u *User) VerifyResetOTP(otp string, now time.Time) error {
	if !u.isResetPassword || u.resetOTP == "" {
		return ErrResetNotRequested
	}
	if u.resetOTP != otp {
		return ErrInvalidOTP
	}
	if u.resetOTPExpiresAt == nil || now.After(*u.resetOTPExpiresAt) {
		return ErrOTPExpired
	}
	u.canResetPassword = true
	u.resetOTP = ""
	u.resetOTPExpiresAt = nil
	u.touch()
	return nil
}

// AllowPasswordReset is used when the reset link from email was opened.
func (u *User) AllowPasswordReset() {
	u.isResetPassword = false
	u.canResetPassword = true
	u.touch()
}

// ResetPassword sets a new password after the reset was unlocked.
func (u *User) ResetPassword(hash string, now time.Time) error {
	if !u.canResetPassword {
		return ErrResetNotAllowed
	}
	u.SetPassword(hash, now)
	u.isResetPassword = false
	u.canResetPassword = false
	return nil
}

// MarkSubscribed records paid access. A nil expiry means lifetime access.
func (u *User) MarkSubscribed(expiry *time.Time) {
	u.isSubscribed = true
	if expiry != nil {
		e := expiry.UTC()
		u.planExpiration = &e
	} else {
		u.planExpiration = nil
	}
	u.touch()
}

// UpdateNames changes first and last name; nil keeps the current value.
func (u *User) UpdateNames(firstName, lastName *string) {
	if firstName != nil {
		u.firstName = normalizeName(*firstName)
	}
	if lastName != nil {
		u.lastName = normalizeName(*lastName)
	}
	u.touch()
}

func (u *User) SetFullName(fullName string) {
	u.fullName = normalizeName(fullName)
	u.touch()
}

// SetProfilePic replaces the picture; an empty url keeps the current one.
func (u *User) SetProfilePic(url string) {
	if url == "" {
		return
	}
	u.profilePic = url
	u.touch()
}
