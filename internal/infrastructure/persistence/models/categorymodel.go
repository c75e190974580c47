package models

import (
	"time"

	"marketplace/internal/shared/constants"
)

// CategoryModel represents the database persistence model for categories.
// (name, type) is unique.
type CategoryModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:100;uniqueIndex:uk_categories_name_type"`
	Description string `gorm:"type:text"`
	Type        string `gorm:"not null;size:20;uniqueIndex:uk_categories_name_type;index"`
	Comment     string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string {
	return constants.TableCategories
}
