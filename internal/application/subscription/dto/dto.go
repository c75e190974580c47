package dto

import (
	"time"

	"marketplace/internal/domain/subscription"
	"marketplace/internal/shared/mapper"
)

type PlanDTO struct {
	ID            uint      `json:"id"`
	PlanName      string    `json:"planName"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Interval      string    `json:"interval"`
	IntervalCount int       `json:"intervalCount"`
	FreeTrialDays int       `json:"freeTrialDays"`
	ProductID     string    `json:"productId"`
	PriceID       string    `json:"priceId"`
	Active        bool      `json:"active"`
	PlanType      string    `json:"planType"`
	Features      []string  `json:"features"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type SubscriptionDTO struct {
	ID              uint       `json:"id"`
	UserID          uint       `json:"userId"`
	PlanID          uint       `json:"planId"`
	Plan            *PlanDTO   `json:"plan,omitempty"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	Amount          float64    `json:"amount"`
	StripePaymentID string     `json:"stripePaymentId"`
	PaymentStatus   string     `json:"paymentStatus"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// CheckoutDTO is returned when a checkout attempt is started.
type CheckoutDTO struct {
	Subscription *SubscriptionDTO `json:"subscription"`
	ClientSecret string           `json:"clientSecret"`
	PlanType     string           `json:"planType"`
}

func ToPlanDTO(p *subscription.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	features := p.Features()
	if features == nil {
		features = []string{}
	}
	return &PlanDTO{
		ID:            p.ID(),
		PlanName:      p.PlanName(),
		Description:   p.Description(),
		Amount:        p.Amount(),
		Currency:      p.Currency(),
		Interval:      string(p.Interval()),
		IntervalCount: p.IntervalCount(),
		FreeTrialDays: p.TrialDays(),
		ProductID:     p.ProductID(),
		PriceID:       p.PriceID(),
		Active:        p.Active(),
		PlanType:      string(p.Type()),
		Features:      features,
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func ToPlanDTOs(plans []*subscription.Plan) []*PlanDTO {
	return mapper.MapSlice(plans, ToPlanDTO)
}

// ToSubscriptionDTO maps a subscription; plan may be nil.
func ToSubscriptionDTO(s *subscription.Subscription, plan *subscription.Plan) *SubscriptionDTO {
	if s == nil {
		return nil
	}
	return &SubscriptionDTO{
		ID:              s.ID(),
		UserID:          s.UserID(),
		PlanID:          s.PlanID(),
		Plan:            ToPlanDTO(plan),
		StartDate:       s.StartDate(),
		EndDate:         s.EndDate(),
		Amount:          s.Amount(),
		StripePaymentID: s.StripePaymentID(),
		PaymentStatus:   string(s.PaymentStatus()),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

func ToSubscriptionDTOs(subs []*subscription.Subscription) []*SubscriptionDTO {
	return mapper.MapSlice(subs, func(s *subscription.Subscription) *SubscriptionDTO {
		return ToSubscriptionDTO(s, nil)
	})
}
