package mappers

import (
	"marketplace/internal/domain/subscription"
	"marketplace/internal/infrastructure/persistence/models"
	"marketplace/internal/shared/mapper"
)

// PlanMapper handles the conversion between plans and their persistence models
type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*subscription.Plan, error)
	ToModel(entity *subscription.Plan) (*models.PlanModel, error)
	ToEntities(models []*models.PlanModel) ([]*subscription.Plan, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToEntity(model *models.PlanModel) (*subscription.Plan, error) {
	if model == nil {
		return nil, nil
	}

	features, err := decodeStrings(model.Features)
	if err != nil {
		return nil, err
	}

	return subscription.ReconstructPlan(
		model.ID,
		model.PlanName,
		model.Description,
		model.Amount,
		model.Currency,
		subscription.Interval(model.Interval),
		model.IntervalCount,
		model.TrialDays,
		model.ProductID,
		model.PriceID,
		model.Active,
		features,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *PlanMapperImpl) ToModel(entity *subscription.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	features, err := encodeStrings(entity.Features())
	if err != nil {
		return nil, err
	}

	return &models.PlanModel{
		ID:            entity.ID(),
		PlanName:      entity.PlanName(),
		Description:   entity.Description(),
		Amount:        entity.Amount(),
		Currency:      entity.Currency(),
		Interval:      string(entity.Interval()),
		IntervalCount: entity.IntervalCount(),
		TrialDays:     entity.TrialDays(),
		ProductID:     entity.ProductID(),
		PriceID:       entity.PriceID(),
		Active:        entity.Active(),
		Features:      features,
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *PlanMapperImpl) ToEntities(planModels []*models.PlanModel) ([]*subscription.Plan, error) {
	return mapper.TryMapSlice(planModels, m.ToEntity)
}
