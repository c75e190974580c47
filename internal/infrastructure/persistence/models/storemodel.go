package models

import (
	"time"

	"gorm.io/datatypes"

	"marketplace/internal/shared/constants"
)

// StoreModel represents the database persistence model for stores
type StoreModel struct {
	ID           uint   `gorm:"primarykey"`
	UserID       uint   `gorm:"not null;uniqueIndex"`
	Name         string `gorm:"not null;size:200"`
	Location     string `gorm:"size:255"`
	Tags         datatypes.JSON
	Description  string `gorm:"type:text"`
	Logo         string `gorm:"size:500"`
	Banner       string `gorm:"size:500"`
	Phone        string `gorm:"size:20"`
	Email        string `gorm:"size:255"`
	FacebookURL  string `gorm:"size:500"`
	InstagramURL string `gorm:"size:500"`
	YoutubeURL   string `gorm:"size:500"`
	ShopStatus   string `gorm:"not null;size:20;default:PENDING;index"`
	Status       string `gorm:"not null;size:20;default:OFFLINE;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (StoreModel) TableName() string {
	return constants.TableStores
}

// StoreCategoryModel links a store to one of its categories.
type StoreCategoryModel struct {
	StoreID    uint `gorm:"primaryKey"`
	CategoryID uint `gorm:"primaryKey;index"`
	CreatedAt  time.Time
}

func (StoreCategoryModel) TableName() string {
	return constants.TableStoreCategories
}
