package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func newMonthlyPlan(t *testing.T) *Plan {
	t.Helper()
	plan, err := NewPlan(PlanParams{
		PlanName:      "Pro Monthly",
		Amount:        9.99,
		Currency:      "USD",
		Interval:      IntervalMonth,
		IntervalCount: 1,
	})
	require.NoError(t, err)
	return plan
}

// =====================================================================
// Lifetime detection
// =====================================================================

func TestIsLifetime(t *testing.T) {
	tests := []struct {
		name     string
		planName string
		interval Interval
		want     bool
	}{
		{name: "monthly", planName: "Pro Monthly", interval: IntervalMonth, want: false},
		{name: "name marker", planName: "Pro LIFETIME deal", interval: IntervalMonth, want: true},
		{name: "interval marker", planName: "Forever", interval: IntervalLifetime, want: true},
		{name: "mixed case name", planName: "LifeTime", interval: IntervalNone, want: true},
		{name: "yearly", planName: "Annual", interval: IntervalYear, want: false},
		{name: "no interval", planName: "Basic", interval: IntervalNone, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLifetime(tt.planName, tt.interval))
		})
	}
}

func TestPlan_Type(t *testing.T) {
	plan := newMonthlyPlan(t)
	assert.Equal(t, PlanTypeRecurring, plan.Type())

	lifetime, err := NewPlan(PlanParams{PlanName: "Lifetime Access", Amount: 99, Interval: IntervalLifetime})
	require.NoError(t, err)
	assert.Equal(t, PlanTypeLifetime, lifetime.Type())
}

func TestPlan_NoIntervalIsLifetimeEverywhere(t *testing.T) {
	plan, err := NewPlan(PlanParams{PlanName: "Basic", Amount: 5})
	require.NoError(t, err)

	assert.True(t, plan.IsLifetime())
	assert.Equal(t, PlanTypeLifetime, plan.Type())
	assert.Nil(t, EndDateFor(plan, time.Now().UTC()))
	assert.True(t, plan.IsLifetimeAfter(PlanUpdate{Amount: ptr(6.0)}))
}

// =====================================================================
// NewPlan
// =====================================================================

func TestNewPlan_Defaults(t *testing.T) {
	plan := newMonthlyPlan(t)

	assert.Equal(t, "Pro Monthly", plan.PlanName())
	assert.Equal(t, "usd", plan.Currency())
	assert.Equal(t, 1, plan.IntervalCount())
	assert.True(t, plan.Active())
	assert.Equal(t, int64(999), plan.UnitAmount())
}

func TestNewPlan_Validation(t *testing.T) {
	tests := []struct {
		name    string
		params  PlanParams
		wantErr error
	}{
		{name: "empty name", params: PlanParams{PlanName: "  ", Amount: 1}, wantErr: ErrPlanNameRequired},
		{name: "negative amount", params: PlanParams{PlanName: "x", Amount: -1}, wantErr: ErrInvalidAmount},
		{name: "bad interval", params: PlanParams{PlanName: "x", Interval: "week"}, wantErr: ErrInvalidInterval},
		{name: "bad interval count", params: PlanParams{PlanName: "x", IntervalCount: -2}, wantErr: ErrInvalidIntervalCount},
		{name: "negative trial", params: PlanParams{PlanName: "x", TrialDays: -1}, wantErr: ErrInvalidTrialDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlan(tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUnitAmount_Rounds(t *testing.T) {
	assert.Equal(t, int64(1499), UnitAmount(14.99))
	assert.Equal(t, int64(0), UnitAmount(0))
	assert.Equal(t, int64(250), UnitAmount(2.5))
}

// =====================================================================
// Price diffing
// =====================================================================

func TestPriceTerms_Differs(t *testing.T) {
	base := PriceTerms{Amount: 9.99, Currency: "usd", Interval: IntervalMonth, IntervalCount: 1}

	tests := []struct {
		name     string
		next     PriceTerms
		lifetime bool
		want     bool
	}{
		{name: "identical", next: base, want: false},
		{name: "amount", next: PriceTerms{Amount: 14.99, Currency: "usd", Interval: IntervalMonth, IntervalCount: 1}, want: true},
		{name: "currency case only", next: PriceTerms{Amount: 9.99, Currency: "USD", Interval: IntervalMonth, IntervalCount: 1}, want: false},
		{name: "currency", next: PriceTerms{Amount: 9.99, Currency: "eur", Interval: IntervalMonth, IntervalCount: 1}, want: true},
		{name: "interval", next: PriceTerms{Amount: 9.99, Currency: "usd", Interval: IntervalYear, IntervalCount: 1}, want: true},
		{name: "interval count recurring", next: PriceTerms{Amount: 9.99, Currency: "usd", Interval: IntervalMonth, IntervalCount: 3}, want: true},
		{name: "interval count lifetime ignored", next: PriceTerms{Amount: 9.99, Currency: "usd", Interval: IntervalMonth, IntervalCount: 3}, lifetime: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Differs(tt.next, tt.lifetime))
		})
	}
}

func TestPlan_MergedAndApply(t *testing.T) {
	plan := newMonthlyPlan(t)
	update := PlanUpdate{Amount: ptr(14.99), Description: ptr("better")}

	name, terms := plan.Merged(update)
	assert.Equal(t, "Pro Monthly", name)
	assert.Equal(t, 14.99, terms.Amount)
	assert.Equal(t, 9.99, plan.Amount(), "Merged must not mutate")

	plan.Apply(update)
	assert.Equal(t, 14.99, plan.Amount())
	assert.Equal(t, "better", plan.Description())
	assert.Equal(t, IntervalMonth, plan.Interval())
}

func TestPlan_IsLifetimeAfter(t *testing.T) {
	plan := newMonthlyPlan(t)

	assert.False(t, plan.IsLifetimeAfter(PlanUpdate{Amount: ptr(1.0)}))
	assert.True(t, plan.IsLifetimeAfter(PlanUpdate{PlanName: ptr("Lifetime Pro")}))
	assert.True(t, plan.IsLifetimeAfter(PlanUpdate{Interval: ptr(IntervalLifetime)}))
	assert.True(t, plan.IsLifetimeAfter(PlanUpdate{Interval: ptr(IntervalNone)}))
}

func TestPlanUpdate_TouchesProduct(t *testing.T) {
	assert.False(t, PlanUpdate{Amount: ptr(1.0)}.TouchesProduct())
	assert.True(t, PlanUpdate{Description: ptr("x")}.TouchesProduct())
	assert.True(t, PlanUpdate{Active: ptr(false)}.TouchesProduct())
}

// =====================================================================
// End date computation
// =====================================================================

func TestEndDateFor(t *testing.T) {
	start := time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)

	monthly := newMonthlyPlan(t)
	end := EndDateFor(monthly, start)
	require.NotNil(t, end)
	assert.Equal(t, time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC), *end)

	yearly, err := NewPlan(PlanParams{PlanName: "Annual", Amount: 90, Interval: IntervalYear, IntervalCount: 2})
	require.NoError(t, err)
	end = EndDateFor(yearly, start)
	require.NotNil(t, end)
	assert.Equal(t, time.Date(2026, time.January, 31, 12, 0, 0, 0, time.UTC), *end)

	lifetime, err := NewPlan(PlanParams{PlanName: "Lifetime", Amount: 300, Interval: IntervalMonth})
	require.NoError(t, err)
	assert.Nil(t, EndDateFor(lifetime, start))
}
