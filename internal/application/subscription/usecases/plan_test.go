package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/application/subscription/dto"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type planFixture struct {
	repo    *fakePlanRepo
	gateway *fakeGateway
	create  *CreatePlanUseCase
	update  *UpdatePlanUseCase
	delete  *DeletePlanUseCase
}

func newPlanFixture() *planFixture {
	repo := newFakePlanRepo()
	gateway := newFakeGateway()
	log := logger.NewNop()
	return &planFixture{
		repo:    repo,
		gateway: gateway,
		create:  NewCreatePlanUseCase(repo, gateway, passthroughTx{}, "usd", log),
		update:  NewUpdatePlanUseCase(repo, gateway, passthroughTx{}, log),
		delete:  NewDeletePlanUseCase(repo, gateway, passthroughTx{}, log),
	}
}

func (f *planFixture) createMonthly(t *testing.T) *dto.PlanDTO {
	t.Helper()
	plan, err := f.create.Execute(context.Background(), CreatePlanCommand{
		PlanName:      "Pro Monthly",
		Amount:        9.99,
		Interval:      "month",
		IntervalCount: 1,
	})
	require.NoError(t, err)
	return plan
}

func TestCreatePlan_Recurring(t *testing.T) {
	f := newPlanFixture()
	plan := f.createMonthly(t)

	assert.NotEmpty(t, plan.ProductID)
	assert.NotEmpty(t, plan.PriceID)
	assert.Equal(t, "month", plan.Interval)
	assert.Equal(t, "usd", plan.Currency)
	assert.Equal(t, "subscription", plan.PlanType)

	price := f.gateway.prices[plan.PriceID]
	require.NotNil(t, price)
	assert.True(t, price.req.Recurring)
	assert.Equal(t, "month", price.req.Interval)
	assert.Equal(t, 1, price.req.IntervalCount)
	assert.Equal(t, int64(999), price.req.UnitAmount)
	assert.Equal(t, plan.ProductID, price.req.ProductID)
}

func TestCreatePlan_LifetimeHasNoRecurringBlock(t *testing.T) {
	tests := []struct {
		name     string
		planName string
		interval string
	}{
		{name: "name marker", planName: "Pro LifeTime", interval: "month"},
		{name: "interval marker", planName: "Forever", interval: "lifetime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPlanFixture()
			plan, err := f.create.Execute(context.Background(), CreatePlanCommand{
				PlanName: tt.planName,
				Amount:   199,
				Interval: tt.interval,
			})
			require.NoError(t, err)

			assert.Equal(t, "lifetime", plan.PlanType)
			assert.Equal(t, tt.interval, plan.Interval)
			price := f.gateway.prices[plan.PriceID]
			require.NotNil(t, price)
			assert.False(t, price.req.Recurring)
			assert.Empty(t, price.req.Interval)
		})
	}
}

func TestCreatePlan_ValidationFailsBeforeGateway(t *testing.T) {
	f := newPlanFixture()
	_, err := f.create.Execute(context.Background(), CreatePlanCommand{PlanName: " ", Amount: 1})

	assert.True(t, appErrors.IsValidationError(err))
	assert.Empty(t, f.gateway.products)
}

func TestCreatePlan_DatabaseFailureDeactivatesBillingObjects(t *testing.T) {
	f := newPlanFixture()
	f.repo.createErr = errDBDown

	_, err := f.create.Execute(context.Background(), CreatePlanCommand{
		PlanName: "Pro Monthly",
		Amount:   9.99,
		Interval: "month",
	})
	require.ErrorIs(t, err, errDBDown)

	require.Len(t, f.gateway.createdPrices, 1)
	assert.False(t, f.gateway.prices[f.gateway.createdPrices[0]].active)
	for id, active := range f.gateway.products {
		assert.False(t, active, "product %s should be deactivated", id)
	}
}

func TestUpdatePlan_DescriptionOnlyKeepsPrice(t *testing.T) {
	f := newPlanFixture()
	created := f.createMonthly(t)

	updated, err := f.update.Execute(context.Background(), UpdatePlanCommand{
		PlanID:      created.ID,
		Description: ptr("now with more features"),
	})
	require.NoError(t, err)

	assert.Equal(t, created.PriceID, updated.PriceID)
	assert.Equal(t, "now with more features", updated.Description)
	assert.Len(t, f.gateway.createdPrices, 1)
	assert.Equal(t, 1, f.gateway.productUpdates)
}

func TestUpdatePlan_AmountChangeRotatesPrice(t *testing.T) {
	f := newPlanFixture()
	created := f.createMonthly(t)

	updated, err := f.update.Execute(context.Background(), UpdatePlanCommand{
		PlanID: created.ID,
		Amount: ptr(14.99),
	})
	require.NoError(t, err)

	assert.NotEqual(t, created.PriceID, updated.PriceID)
	assert.False(t, f.gateway.prices[created.PriceID].active, "old price deactivated")

	newPrice := f.gateway.prices[updated.PriceID]
	require.NotNil(t, newPrice)
	assert.True(t, newPrice.active)
	assert.Equal(t, int64(1499), newPrice.req.UnitAmount)
	assert.True(t, newPrice.req.Recurring)

	stored, _ := f.repo.GetByID(context.Background(), created.ID)
	assert.Equal(t, updated.PriceID, stored.PriceID())
	assert.Equal(t, 0, f.gateway.productUpdates)
}

func TestUpdatePlan_IntervalCountIgnoredForLifetime(t *testing.T) {
	f := newPlanFixture()
	created, err := f.create.Execute(context.Background(), CreatePlanCommand{
		PlanName: "Lifetime Access",
		Amount:   99,
		Interval: "lifetime",
	})
	require.NoError(t, err)

	updated, err := f.update.Execute(context.Background(), UpdatePlanCommand{
		PlanID:        created.ID,
		IntervalCount: ptr(6),
	})
	require.NoError(t, err)
	assert.Equal(t, created.PriceID, updated.PriceID)
}

func TestUpdatePlan_MissingOldPriceIsTolerated(t *testing.T) {
	f := newPlanFixture()
	created := f.createMonthly(t)
	delete(f.gateway.prices, created.PriceID)

	updated, err := f.update.Execute(context.Background(), UpdatePlanCommand{
		PlanID: created.ID,
		Amount: ptr(19.99),
	})
	require.NoError(t, err)
	assert.NotEqual(t, created.PriceID, updated.PriceID)
}

func TestUpdatePlan_RecreatesMissingProduct(t *testing.T) {
	f := newPlanFixture()
	created := f.createMonthly(t)
	delete(f.gateway.products, created.ProductID)

	updated, err := f.update.Execute(context.Background(), UpdatePlanCommand{
		PlanID:   created.ID,
		PlanName: ptr("Pro Monthly v2"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, created.ProductID, updated.ProductID)
	assert.Equal(t, updated.ProductID, f.repo.productID[created.ID], "new product id saved immediately")
	assert.Equal(t, "Pro Monthly v2", updated.PlanName)
}

func TestUpdatePlan_DatabaseFailureRollsBackPrice(t *testing.T) {
	f := newPlanFixture()
	created := f.createMonthly(t)
	f.repo.updateErr = errDBDown

	_, err := f.update.Execute(context.Background(), UpdatePlanCommand{
		PlanID: created.ID,
		Amount: ptr(14.99),
	})
	require.ErrorIs(t, err, errDBDown)

	require.Len(t, f.gateway.createdPrices, 2)
	newPriceID := f.gateway.createdPrices[1]
	assert.False(t, f.gateway.prices[newPriceID].active, "new price deactivated")
	assert.True(t, f.gateway.prices[created.PriceID].active, "old price reactivated")
}

func TestUpdatePlan_NotFound(t *testing.T) {
	f := newPlanFixture()
	_, err := f.update.Execute(context.Background(), UpdatePlanCommand{PlanID: 42, Amount: ptr(1.0)})
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestUpdatePlan_InvalidUpdate(t *testing.T) {
	f := newPlanFixture()
	created := f.createMonthly(t)

	_, err := f.update.Execute(context.Background(), UpdatePlanCommand{PlanID: created.ID, Amount: ptr(-5.0)})
	assert.True(t, appErrors.IsValidationError(err))
}

func TestDeletePlan(t *testing.T) {
	f := newPlanFixture()
	created := f.createMonthly(t)

	require.NoError(t, f.delete.Execute(context.Background(), created.ID))

	assert.False(t, f.gateway.prices[created.PriceID].active)
	assert.False(t, f.gateway.products[created.ProductID])
	assert.Equal(t, []uint{created.ID}, f.repo.deleted)

	err := f.delete.Execute(context.Background(), created.ID)
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestGetAndListPlans(t *testing.T) {
	f := newPlanFixture()
	created := f.createMonthly(t)
	log := logger.NewNop()

	got, err := NewGetPlanUseCase(f.repo, log).Execute(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.PriceID, got.PriceID)

	_, err = NewGetPlanUseCase(f.repo, log).Execute(context.Background(), 999)
	assert.True(t, appErrors.IsNotFoundError(err))

	list, err := NewListPlansUseCase(f.repo, log).Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
