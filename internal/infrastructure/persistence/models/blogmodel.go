package models

import (
	"time"

	"marketplace/internal/shared/constants"
)

// BlogModel represents the database persistence model for blogs
type BlogModel struct {
	ID              uint   `gorm:"primarykey"`
	Title           string `gorm:"not null;size:255"`
	Description     string `gorm:"type:text;not null"`
	DescriptionHTML string `gorm:"column:description_html;type:text"`
	Image           string `gorm:"size:500"`
	Category        string `gorm:"size:100;index"`
	Views           int64  `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (BlogModel) TableName() string {
	return constants.TableBlogs
}
