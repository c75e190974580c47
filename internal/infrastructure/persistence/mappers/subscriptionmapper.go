package mappers

import (
	"marketplace/internal/domain/subscription"
	"marketplace/internal/infrastructure/persistence/models"
)

func SubscriptionToEntity(model *models.SubscriptionModel) *subscription.Subscription {
	if model == nil {
		return nil
	}
	return subscription.ReconstructSubscription(
		model.ID,
		model.UserID,
		model.PlanID,
		model.StartDate,
		model.EndDate,
		model.Amount,
		model.StripePaymentID,
		subscription.PaymentStatus(model.PaymentStatus),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func SubscriptionToModel(entity *subscription.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
		ID:              entity.ID(),
		UserID:          entity.UserID(),
		PlanID:          entity.PlanID(),
		StartDate:       entity.StartDate(),
		EndDate:         entity.EndDate(),
		Amount:          entity.Amount(),
		StripePaymentID: entity.StripePaymentID(),
		PaymentStatus:   string(entity.PaymentStatus()),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}
