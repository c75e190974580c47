package subscription

import (
	"errors"
	"fmt"
)

var (
	ErrPlanNotFound            = errors.New("plan not found")
	ErrPlanNameRequired        = errors.New("plan name is required")
	ErrInvalidAmount           = errors.New("plan amount must not be negative")
	ErrInvalidInterval         = errors.New("invalid plan interval")
	ErrInvalidIntervalCount    = errors.New("interval count must be at least 1")
	ErrInvalidTrialDays        = errors.New("free trial days must not be negative")
	ErrSubscriptionNotFound    = errors.New("subscription not found")
	ErrInvalidStatusTransition = errors.New("invalid payment status transition")
	ErrInvalidPaymentStatus    = errors.New("invalid payment status")
)

func ErrInvalidTransition(from, to PaymentStatus) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}
