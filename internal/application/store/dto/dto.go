package dto

import (
	"time"

	"marketplace/internal/domain/store"
	"marketplace/internal/shared/mapper"
)

type CategoryRefDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type StoreDTO struct {
	ID           uint              `json:"id"`
	UserID       uint              `json:"userId"`
	Name         string            `json:"name"`
	Location     string            `json:"location"`
	Tags         []string          `json:"tags"`
	Description  string            `json:"description"`
	Logo         string            `json:"logo"`
	Banner       string            `json:"banner"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email"`
	FacebookURL  string            `json:"facebookUrl"`
	InstagramURL string            `json:"instagramUrl"`
	YoutubeURL   string            `json:"youtubeUrl"`
	ShopStatus   string            `json:"shopStatus"`
	Status       string            `json:"status"`
	Categories   []*CategoryRefDTO `json:"categories"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

func ToStoreDTO(s *store.Store) *StoreDTO {
	if s == nil {
		return nil
	}
	p := s.Profile()
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return &StoreDTO{
		ID:           s.ID(),
		UserID:       s.UserID(),
		Name:         s.Name(),
		Location:     p.Location,
		Tags:         tags,
		Description:  p.Description,
		Logo:         p.Logo,
		Banner:       p.Banner,
		Phone:        p.Phone,
		Email:        p.Email,
		FacebookURL:  p.FacebookURL,
		InstagramURL: p.InstagramURL,
		YoutubeURL:   p.YoutubeURL,
		ShopStatus:   string(s.ShopStatus()),
		Status:       string(s.Status()),
		Categories: mapper.MapSlice(s.Categories(), func(c store.CategoryRef) *CategoryRefDTO {
			return &CategoryRefDTO{ID: c.ID, Name: c.Name, Type: c.Type}
		}),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

func ToStoreDTOs(stores []*store.Store) []*StoreDTO {
	return mapper.MapSlice(stores, ToStoreDTO)
}
