package models

import (
	"time"

	"marketplace/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID                uint   `gorm:"primarykey"`
	FirstName         string `gorm:"size:100"`
	LastName          string `gorm:"size:100"`
	FullName          string `gorm:"size:200"`
	Email             string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash      string `gorm:"not null;size:255"`
	Role              string `gorm:"not null;size:20;default:USER;index"`
	ProfilePic        string `gorm:"size:500"`
	Provider          string `gorm:"not null;size:20;default:email"`
	IsVerified        bool   `gorm:"not null;default:false"`
	IsSubscribed      bool   `gorm:"not null;default:false"`
	PlanExpiration    *time.Time
	PasswordChangedAt *time.Time
	IsResetPassword   bool    `gorm:"not null;default:false"`
	CanResetPassword  bool    `gorm:"not null;default:false"`
	ResetOTP          *string `gorm:"size:10"`
	ResetOTPExpiresAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// OTPModel stores registration codes. Several rows may exist per email; the newest unverified one wins.
type OTPModel struct {
	ID         uint      `gorm:"primarykey"`
	Email      string    `gorm:"not null;size:255;index:idx_otps_email_verified"`
	Code       string    `gorm:"not null;size:10"`
	ExpiresAt  time.Time `gorm:"not null"`
	IsVerified bool      `gorm:"not null;default:false;index:idx_otps_email_verified"`
	CreatedAt  time.Time
}

func (OTPModel) TableName() string {
	return constants.TableOTPs
}
