package subscription

import (
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusPending || s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// Subscription is a user's checkout attempt or paid access to a plan.
// A user owns at most one subscription row.
type Subscription struct {
	id              uint
	userID          uint
	planID          uint
	startDate       time.Time
	endDate         *time.Time
	amount          float64
	stripePaymentID string
	paymentStatus   PaymentStatus
	createdAt       time.Time
	updatedAt       time.Time
}

// NewPendingSubscription starts a checkout attempt. endDate is nil for lifetime plans.
func NewPendingSubscription(userID, planID uint, amount float64, startDate time.Time, endDate *time.Time, paymentID string) *Subscription {
	now := time.Now().UTC()
	return &Subscription{
		userID:          userID,
		planID:          planID,
		startDate:       startDate,
		endDate:         endDate,
		amount:          amount,
		stripePaymentID: paymentID,
		paymentStatus:   PaymentStatusPending,
		createdAt:       now,
		updatedAt:       now,
	}
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(id, userID, planID uint, startDate time.Time, endDate *time.Time,
	amount float64, stripePaymentID string, status PaymentStatus, createdAt, updatedAt time.Time) *Subscription {
	return &Subscription{
		id:              id,
		userID:          userID,
		planID:          planID,
		startDate:       startDate,
		endDate:         endDate,
		amount:          amount,
		stripePaymentID: stripePaymentID,
		paymentStatus:   status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (s *Subscription) ID() uint {
	return s.id
}

func (s *Subscription) SetID(id uint) {
	s.id = id
}

func (s *Subscription) UserID() uint {
	return s.userID
}

func (s *Subscription) PlanID() uint {
	return s.planID
}

func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

func (s *Subscription) EndDate() *time.Time {
	return s.endDate
}

func (s *Subscription) Amount() float64 {
	return s.amount
}

func (s *Subscription) StripePaymentID() string {
	return s.stripePaymentID
}

func (s *Subscription) PaymentStatus() PaymentStatus {
	return s.paymentStatus
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Subscription) IsPending() bool {
	return s.paymentStatus == PaymentStatusPending
}

// RestartPending points an existing PENDING row at a new checkout attempt.
// For recurring plans a previously computed end date is kept.
func (s *Subscription) RestartPending(planID uint, amount float64, startDate time.Time, endDate *time.Time, lifetime bool, paymentID string) {
	s.planID = planID
	s.amount = amount
	s.startDate = startDate
	s.stripePaymentID = paymentID
	s.paymentStatus = PaymentStatusPending
	switch {
	case lifetime:
		s.endDate = nil
	case s.endDate == nil:
		s.endDate = endDate
	}
	s.updatedAt = time.Now().UTC()
}

func (s *Subscription) IsCompleted() bool {
	return s.paymentStatus == PaymentStatusCompleted
}

// Replace discards a FAILED row and starts a fresh PENDING attempt in its place.
// A COMPLETED row is a paid record and is never rewritten.
func (s *Subscription) Replace(planID uint, amount float64, startDate time.Time, endDate *time.Time, paymentID string) error {
	if s.paymentStatus != PaymentStatusFailed {
		return ErrInvalidTransition(s.paymentStatus, PaymentStatusPending)
	}
	s.planID = planID
	s.amount = amount
	s.startDate = startDate
	s.endDate = endDate
	s.stripePaymentID = paymentID
	s.paymentStatus = PaymentStatusPending
	s.updatedAt = time.Now().UTC()
	return nil
}

// Complete moves a PENDING subscription to COMPLETED. It returns false without
// error when the subscription is already COMPLETED so redelivered events are no-ops.
func (s *Subscription) Complete(paymentID string) (bool, error) {
	switch s.paymentStatus {
	case PaymentStatusCompleted:
		return false, nil
	case PaymentStatusPending:
	default:
		return false, ErrInvalidTransition(s.paymentStatus, PaymentStatusCompleted)
	}
	if paymentID != "" {
		s.stripePaymentID = paymentID
	}
	s.paymentStatus = PaymentStatusCompleted
	s.updatedAt = time.Now().UTC()
	return true, nil
}

// Fail moves a PENDING subscription to FAILED. Already FAILED is a no-op.
func (s *Subscription) Fail() (bool, error) {
	switch s.paymentStatus {
	case PaymentStatusFailed:
		return false, nil
	case PaymentStatusPending:
	default:
		return false, ErrInvalidTransition(s.paymentStatus, PaymentStatusFailed)
	}
	s.paymentStatus = PaymentStatusFailed
	s.updatedAt = time.Now().UTC()
	return true, nil
}

// SubscriptionUpdate holds admin edits; nil fields are left untouched.
type SubscriptionUpdate struct {
	StartDate     *time.Time
	EndDate       *time.Time
	ClearEndDate  bool
	Amount        *float64
	PaymentStatus *PaymentStatus
}

// ApplyAdminUpdate edits dates and amount and performs a status transition when requested.
func (s *Subscription) ApplyAdminUpdate(u SubscriptionUpdate) error {
	if u.PaymentStatus != nil && *u.PaymentStatus != s.paymentStatus {
		var err error
		switch *u.PaymentStatus {
		case PaymentStatusCompleted:
			_, err = s.Complete("")
		case PaymentStatusFailed:
			_, err = s.Fail()
		case PaymentStatusPending:
			err = ErrInvalidTransition(s.paymentStatus, PaymentStatusPending)
		default:
			err = ErrInvalidPaymentStatus
		}
		if err != nil {
			return err
		}
	}
	if u.StartDate != nil {
		s.startDate = u.StartDate.UTC()
	}
	if u.ClearEndDate {
		s.endDate = nil
	} else if u.EndDate != nil {
		end := u.EndDate.UTC()
		s.endDate = &end
	}
	if u.Amount != nil {
		s.amount = *u.Amount
	}
	s.updatedAt = time.Now().UTC()
	return nil
}
