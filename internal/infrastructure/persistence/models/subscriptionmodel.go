package models

import (
	"time"

	"marketplace/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for subscriptions.
// A user owns at most one row.
type SubscriptionModel struct {
	ID              uint      `gorm:"primarykey"`
	UserID          uint      `gorm:"not null;uniqueIndex"`
	PlanID          uint      `gorm:"not null;index"`
	StartDate       time.Time `gorm:"not null"`
	EndDate         *time.Time
	Amount          float64 `gorm:"not null"`
	StripePaymentID string  `gorm:"size:100;index"`
	PaymentStatus   string  `gorm:"not null;size:20;default:PENDING;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
