package models

import (
	"time"

	"marketplace/internal/shared/constants"
)

// CatalogItem holds the columns shared by products, services and consultations.
// Only their category references are read by the API today.
type CatalogItem struct {
	ID          uint    `gorm:"primarykey"`
	StoreID     uint    `gorm:"not null;index"`
	CategoryID  uint    `gorm:"not null;index"`
	Name        string  `gorm:"not null;size:200"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProductModel struct {
	CatalogItem
}

func (ProductModel) TableName() string {
	return constants.TableProducts
}

type ServiceModel struct {
	CatalogItem
}

func (ServiceModel) TableName() string {
	return constants.TableServices
}

type ConsultationModel struct {
	CatalogItem
}

func (ConsultationModel) TableName() string {
	return constants.TableConsultations
}
