package models

import (
	"time"

	"gorm.io/datatypes"

	"marketplace/internal/shared/constants"
)

// PlanModel is a purchasable plan mirrored by a billing product and price.
type PlanModel struct {
	ID            uint    `gorm:"primarykey"`
	PlanName      string  `gorm:"not null;size:100"`
	Description   string  `gorm:"type:text"`
	Amount        float64 `gorm:"not null"`
	Currency      string  `gorm:"not null;size:3;default:usd"`
	Interval      string  `gorm:"column:billing_interval;size:20"`
	IntervalCount int     `gorm:"not null;default:1"`
	TrialDays     int     `gorm:"not null;default:0"`
	ProductID     string  `gorm:"size:100;index"`
	PriceID       string  `gorm:"size:100"`
	Active        bool    `gorm:"not null;default:true"`
	Features      datatypes.JSON
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
