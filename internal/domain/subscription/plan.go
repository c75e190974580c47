package subscription

import (
	"math"
	"strings"
	"time"
)

type Interval string

const (
	IntervalNone     Interval = ""
	IntervalMonth    Interval = "month"
	IntervalYear     Interval = "year"
	IntervalLifetime Interval = "lifetime"
)

func (i Interval) IsValid() bool {
	switch i {
	case IntervalNone, IntervalMonth, IntervalYear, IntervalLifetime:
		return true
	}
	return false
}

// PlanType is sent to the payment processor as metadata and returned to clients.
type PlanType string

const (
	PlanTypeRecurring PlanType = "subscription"
	PlanTypeLifetime  PlanType = "lifetime"
)

// IsLifetime reports whether a plan with this name and interval is a one-time
// purchase. A plan without an interval is billed once, so it counts too.
// The name check is case-insensitive.
func IsLifetime(planName string, interval Interval) bool {
	if interval == IntervalLifetime || interval == IntervalNone {
		return true
	}
	return strings.Contains(strings.ToLower(planName), "lifetime")
}

// Plan is a billing plan mirrored by a product and a price at the payment processor.
type Plan struct {
	id            uint
	planName      string
	description   string
	amount        float64
	currency      string
	interval      Interval
	intervalCount int
	trialDays     int
	productID     string
	priceID       string
	active        bool
	features      []string
	createdAt     time.Time
	updatedAt     time.Time
}

// PlanParams carries the fields required to create a plan.
type PlanParams struct {
	PlanName      string
	Description   string
	Amount        float64
	Currency      string
	Interval      Interval
	IntervalCount int
	TrialDays     int
	Features      []string
}

func NewPlan(p PlanParams) (*Plan, error) {
	name := strings.TrimSpace(p.PlanName)
	if name == "" {
		return nil, ErrPlanNameRequired
	}
	if p.Amount < 0 || math.IsNaN(p.Amount) {
		return nil, ErrInvalidAmount
	}
	if !p.Interval.IsValid() {
		return nil, ErrInvalidInterval
	}
	count := p.IntervalCount
	if count == 0 {
		count = 1
	}
	if count < 1 {
		return nil, ErrInvalidIntervalCount
	}
	if p.TrialDays < 0 {
		return nil, ErrInvalidTrialDays
	}

	now := time.Now().UTC()
	return &Plan{
		planName:      name,
		description:   p.Description,
		amount:        p.Amount,
		currency:      strings.ToLower(p.Currency),
		interval:      p.Interval,
		intervalCount: count,
		trialDays:     p.TrialDays,
		active:        true,
		features:      p.Features,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(id uint, planName, description string, amount float64, currency string,
	interval Interval, intervalCount, trialDays int, productID, priceID string, active bool,
	features []string, createdAt, updatedAt time.Time) *Plan {
	return &Plan{
		id:            id,
		planName:      planName,
		description:   description,
		amount:        amount,
		currency:      currency,
		interval:      interval,
		intervalCount: intervalCount,
		trialDays:     trialDays,
		productID:     productID,
		priceID:       priceID,
		active:        active,
		features:      features,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (p *Plan) ID() uint {
	return p.id
}

func (p *Plan) SetID(id uint) {
	p.id = id
}

func (p *Plan) PlanName() string {
	return p.planName
}

func (p *Plan) Description() string {
	return p.description
}

func (p *Plan) Amount() float64 {
	return p.amount
}

func (p *Plan) Currency() string {
	return p.currency
}

func (p *Plan) SetCurrency(currency string) {
	p.currency = strings.ToLower(currency)
}

func (p *Plan) Interval() Interval {
	return p.interval
}

func (p *Plan) IntervalCount() int {
	return p.intervalCount
}

func (p *Plan) TrialDays() int {
	return p.trialDays
}

func (p *Plan) ProductID() string {
	return p.productID
}

func (p *Plan) PriceID() string {
	return p.priceID
}

func (p *Plan) Active() bool {
	return p.active
}

func (p *Plan) Features() []string {
	return p.features
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Plan) IsLifetime() bool {
	return IsLifetime(p.planName, p.interval)
}

func (p *Plan) Type() PlanType {
	if p.IsLifetime() {
		return PlanTypeLifetime
	}
	return PlanTypeRecurring
}

// UnitAmount is the plan amount in minor currency units.
func (p *Plan) UnitAmount() int64 {
	return UnitAmount(p.amount)
}

func (p *Plan) PriceTerms() PriceTerms {
	return PriceTerms{
		Amount:        p.amount,
		Currency:      p.currency,
		Interval:      p.interval,
		IntervalCount: p.intervalCount,
	}
}

// AttachBilling records the processor product and price backing this plan.
func (p *Plan) AttachBilling(productID, priceID string) {
	p.productID = productID
	p.priceID = priceID
	p.updatedAt = time.Now().UTC()
}

func (p *Plan) SetProductID(productID string) {
	p.productID = productID
	p.updatedAt = time.Now().UTC()
}

func (p *Plan) SetPriceID(priceID string) {
	p.priceID = priceID
	p.updatedAt = time.Now().UTC()
}

// UnitAmount converts a major-unit amount to minor units (cents).
func UnitAmount(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// PriceTerms are the plan fields that determine the processor price object.
type PriceTerms struct {
	Amount        float64
	Currency      string
	Interval      Interval
	IntervalCount int
}

// Differs reports whether a new price is needed to move from t to next.
// IntervalCount is ignored for lifetime plans.
func (t PriceTerms) Differs(next PriceTerms, lifetime bool) bool {
	if UnitAmount(t.Amount) != UnitAmount(next.Amount) {
		return true
	}
	if !strings.EqualFold(t.Currency, next.Currency) {
		return true
	}
	if t.Interval != next.Interval {
		return true
	}
	return !lifetime && t.IntervalCount != next.IntervalCount
}

// PlanUpdate lists optional changes; nil fields are left untouched.
type PlanUpdate struct {
	PlanName      *string
	Description   *string
	Amount        *float64
	Currency      *string
	Interval      *Interval
	IntervalCount *int
	TrialDays     *int
	Active        *bool
	Features      []string
}

// Validate checks a PlanUpdate before any external call is made.
func (u PlanUpdate) Validate() error {
	if u.PlanName != nil && strings.TrimSpace(*u.PlanName) == "" {
		return ErrPlanNameRequired
	}
	if u.Amount != nil && (*u.Amount < 0 || math.IsNaN(*u.Amount)) {
		return ErrInvalidAmount
	}
	if u.Interval != nil && !u.Interval.IsValid() {
		return ErrInvalidInterval
	}
	if u.IntervalCount != nil && *u.IntervalCount < 1 {
		return ErrInvalidIntervalCount
	}
	if u.TrialDays != nil && *u.TrialDays < 0 {
		return ErrInvalidTrialDays
	}
	return nil
}

// TouchesProduct reports whether the processor product must be updated.
func (u PlanUpdate) TouchesProduct() bool {
	return u.PlanName != nil || u.Description != nil || u.Active != nil
}

// Merged returns the name and price terms that result from applying u, without mutating p.
func (p *Plan) Merged(u PlanUpdate) (string, PriceTerms) {
	name := p.planName
	if u.PlanName != nil {
		name = strings.TrimSpace(*u.PlanName)
	}
	terms := p.PriceTerms()
	if u.Amount != nil {
		terms.Amount = *u.Amount
	}
	if u.Currency != nil {
		terms.Currency = strings.ToLower(*u.Currency)
	}
	if u.Interval != nil {
		terms.Interval = *u.Interval
	}
	if u.IntervalCount != nil {
		terms.IntervalCount = *u.IntervalCount
	}
	return name, terms
}

// IsLifetimeAfter reports lifetime-ness of the merged plan.
func (p *Plan) IsLifetimeAfter(u PlanUpdate) bool {
	name, terms := p.Merged(u)
	return IsLifetime(name, terms.Interval)
}

// Apply copies the set fields of u onto the plan.
func (p *Plan) Apply(u PlanUpdate) {
	name, terms := p.Merged(u)
	p.planName = name
	p.amount = terms.Amount
	p.currency = terms.Currency
	p.interval = terms.Interval
	p.intervalCount = terms.IntervalCount
	if u.Description != nil {
		p.description = *u.Description
	}
	if u.TrialDays != nil {
		p.trialDays = *u.TrialDays
	}
	if u.Active != nil {
		p.active = *u.Active
	}
	if u.Features != nil {
		p.features = u.Features
	}
	p.updatedAt = time.Now().UTC()
}
