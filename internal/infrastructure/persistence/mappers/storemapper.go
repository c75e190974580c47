package mappers

import (
	"marketplace/internal/domain/store"
	"marketplace/internal/infrastructure/persistence/models"
)

// StoreToEntity rebuilds a store with the categories loaded alongside it.
func StoreToEntity(model *models.StoreModel, categories []store.CategoryRef) (*store.Store, error) {
	if model == nil {
		return nil, nil
	}

	tags, err := decodeStrings(model.Tags)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []store.CategoryRef{}
	}

	return store.Reconstruct(
		model.ID,
		model.UserID,
		model.Name,
		store.Profile{
			Location:     model.Location,
			Tags:         tags,
			Description:  model.Description,
			Logo:         model.Logo,
			Banner:       model.Banner,
			Phone:        model.Phone,
			Email:        model.Email,
			FacebookURL:  model.FacebookURL,
			InstagramURL: model.InstagramURL,
			YoutubeURL:   model.YoutubeURL,
		},
		store.ShopStatus(model.ShopStatus),
		store.Status(model.Status),
		categories,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func StoreToModel(entity *store.Store) (*models.StoreModel, error) {
	p := entity.Profile()
	tags, err := encodeStrings(p.Tags)
	if err != nil {
		return nil, err
	}

	return &models.StoreModel{
		ID:           entity.ID(),
		UserID:       entity.UserID(),
		Name:         entity.Name(),
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
		ShopStatus:   string(entity.ShopStatus()),
		Status:       string(entity.Status()),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}
