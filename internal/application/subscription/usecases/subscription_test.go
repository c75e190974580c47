package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/domain/subscription"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type subscriptionFixture struct {
	plans    *fakePlanRepo
	subs     *fakeSubscriptionRepo
	users    *fakeUserRepo
	gateway  *fakeGateway
	create   *CreateSubscriptionUseCase
	complete *CompleteSubscriptionUseCase
	fail     *FailSubscriptionUseCase
}

func newSubscriptionFixture(t *testing.T) *subscriptionFixture {
	t.Helper()
	f := &subscriptionFixture{
		plans:   newFakePlanRepo(),
		subs:    newFakeSubscriptionRepo(),
		users:   newFakeUserRepo(t, 7),
		gateway: newFakeGateway(),
	}
	log := logger.NewNop()
	f.create = NewCreateSubscriptionUseCase(f.subs, f.plans, f.users, f.gateway, passthroughTx{}, log)
	f.complete = NewCompleteSubscriptionUseCase(f.subs, f.users, passthroughTx{}, log)
	f.fail = NewFailSubscriptionUseCase(f.subs, passthroughTx{}, log)
	return f
}

func (f *subscriptionFixture) addPlan(t *testing.T, params subscription.PlanParams) *subscription.Plan {
	t.Helper()
	plan, err := subscription.NewPlan(params)
	require.NoError(t, err)
	require.NoError(t, f.plans.Create(context.Background(), plan))
	return plan
}

func (f *subscriptionFixture) startAt(ts time.Time) {
	f.create.now = func() time.Time { return ts }
}

func TestCreateSubscription_MonthlyClampsToMonthEnd(t *testing.T) {
	f := newSubscriptionFixture(t)
	plan := f.addPlan(t, subscription.PlanParams{PlanName: "Pro Monthly", Amount: 9.99, Currency: "usd", Interval: subscription.IntervalMonth, IntervalCount: 1})
	f.startAt(time.Date(2024, time.January, 31, 10, 0, 0, 0, time.UTC))

	checkout, err := f.create.Execute(context.Background(), CreateSubscriptionCommand{UserID: 7, PlanID: plan.ID()})
	require.NoError(t, err)

	require.NotNil(t, checkout.Subscription.EndDate)
	assert.Equal(t, time.Date(2024, time.February, 29, 10, 0, 0, 0, time.UTC), *checkout.Subscription.EndDate)
	assert.Equal(t, "PENDING", checkout.Subscription.PaymentStatus)
	assert.Equal(t, "subscription", checkout.PlanType)
	assert.NotEmpty(t, checkout.ClientSecret)

	require.Len(t, f.gateway.intents, 1)
	intent := f.gateway.intents[0]
	assert.Equal(t, int64(999), intent.Amount)
	assert.Equal(t, "7", intent.Metadata[MetadataUserID])
	assert.Equal(t, "1", intent.Metadata[MetadataPlanID])
	assert.Equal(t, "subscription", intent.Metadata[MetadataPlanType])
}

func TestCreateSubscription_LifetimeHasNoEndDate(t *testing.T) {
	f := newSubscriptionFixture(t)
	plan := f.addPlan(t, subscription.PlanParams{PlanName: "Lifetime Deal", Amount: 299, Currency: "usd", Interval: subscription.IntervalMonth})

	checkout, err := f.create.Execute(context.Background(), CreateSubscriptionCommand{UserID: 7, PlanID: plan.ID()})
	require.NoError(t, err)

	assert.Nil(t, checkout.Subscription.EndDate)
	assert.Equal(t, "lifetime", checkout.PlanType)
	assert.Equal(t, "lifetime", f.gateway.intents[0].Metadata[MetadataPlanType])
	assert.Equal(t, int64(29900), f.gateway.intents[0].Amount)
}

func TestCreateSubscription_NoIntervalPlanIsLifetime(t *testing.T) {
	f := newSubscriptionFixture(t)
	plan := f.addPlan(t, subscription.PlanParams{PlanName: "Basic", Amount: 5, Currency: "usd"})

	checkout, err := f.create.Execute(context.Background(), CreateSubscriptionCommand{UserID: 7, PlanID: plan.ID()})
	require.NoError(t, err)

	assert.Nil(t, checkout.Subscription.EndDate)
	assert.Equal(t, "lifetime", checkout.PlanType)
	assert.Equal(t, "lifetime", f.gateway.intents[0].Metadata[MetadataPlanType])
}

func TestCreateSubscription_MissingUserOrPlan(t *testing.T) {
	f := newSubscriptionFixture(t)
	plan := f.addPlan(t, subscription.PlanParams{PlanName: "Pro", Amount: 1, Interval: subscription.IntervalMonth})

	_, err := f.create.Execute(context.Background(), CreateSubscriptionCommand{UserID: 99, PlanID: plan.ID()})
	assert.True(t, appErrors.IsNotFoundError(err))

	_, err = f.create.Execute(context.Background(), CreateSubscriptionCommand{UserID: 7, PlanID: 99})
	assert.True(t, appErrors.IsNotFoundError(err))
	assert.Empty(t, f.gateway.intents)
}

func TestCreateSubscription_PendingRowRestartedInPlace(t *testing.T) {
	f := newSubscriptionFixture(t)
	monthly := f.addPlan(t, subscription.PlanParams{PlanName: "Pro Monthly", Amount: 9.99, Interval: subscription.IntervalMonth, IntervalCount: 1})
	yearly := f.addPlan(t, subscription.PlanParams{PlanName: "Pro Yearly", Amount: 99, Interval: subscription.IntervalYear, IntervalCount: 1})

	f.startAt(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	first, err := f.create.Execute(context.Background(), CreateSubscriptionCommand{UserID: 7, PlanID: monthly.ID()})
	require.NoError(t, err)

	f.startAt(time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC))
	second, err := f.create.Execute(context.Background(), CreateSubscriptionCommand{UserID: 7, PlanID: yearly.ID()})
	require.NoError(t, err)

	assert.Equal(t, first.Subscription.ID, second.Subscription.ID)
	assert.Equal(t, yearly.ID(), second.Subscription.PlanID)
	assert.Equal(t, *first.Subscription.EndDate, *second.Subscription.EndDate, "previous end date kept")
	assert.NotEqual(t, first.Subscription.StripePaymentID, second.Subscription.StripePaymentID)
	assert.Len(t, f.subs.subs, 1)
}

func TestCreateSubscription_SettledRowReplaced(t *testing.T) {
	f := newSubscriptionFixture(t)
	plan := f.addPlan(t, subscription.PlanParams{PlanName: "Pro Monthly", Amount: 9.99, Interval: subscription.IntervalMonth, IntervalCount: 1})

	first, err := f.create.Execute(context.Background(), CreateSubscriptionCommand{UserID: 7, PlanID: plan.ID()})
	require.NoError(t, err)
	_, err = f.fail.Execute(context.Background(), FailSubscriptionCommand{UserID: 7, PlanID: plan.ID()})
	require.NoError(t, err)

	second, err := f.create.Execute(context.Background(), CreateSubscriptionCommand{UserID: 7, PlanID: plan.ID()})
	require.NoError(t, err)

	assert.Equal(t, first.Subscription.ID, second.Subscription.ID)
	assert.Equal(t, "PENDING", second.Subscription.PaymentStatus)
	assert.Len(t, f.subs.subs, 1)
}

func TestCreateSubscription_CompletedRowIsConflict(t *testing.T) {
	f := newSubscriptionFixture(t)
	plan := f.addPlan(t, subscription.PlanParams{PlanName: "Pro Monthly", Amount: 9.99, Interval: subscription.IntervalMonth, IntervalCount: 1})

	first, err := f.create.Execute(context.Background(), CreateSubscriptionCommand{UserID: 7, PlanID: plan.ID()})
	require.NoError(t, err)
	_, err = f.complete.Execute(context.Background(), CompleteSubscriptionCommand{
		UserID:                 7,
		PlanID:                 plan.ID(),
		PaymentID:              first.Subscription.StripePaymentID,
		ExpiryFromSubscription: true,
	})
	require.NoError(t, err)

	_, err = f.create.Execute(context.Background(), CreateSubscriptionCommand{UserID: 7, PlanID: plan.ID()})
	assert.True(t, appErrors.IsConflictError(err))
	assert.Len(t, f.gateway.intents, 1, "no payment intent for a rejected checkout")

	_, err = f.fail.Execute(context.Background(), FailSubscriptionCommand{UserID: 7, PlanID: plan.ID()})
	require.NoError(t, err)

	stored, err := f.subs.GetByUserID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, subscription.PaymentStatusCompleted, stored.PaymentStatus())
	assert.Equal(t, first.Subscription.StripePaymentID, stored.StripePaymentID())
}

func TestCompleteSubscription_LifetimeIsIdempotent(t *testing.T) {
	f := newSubscriptionFixture(t)
	plan := f.addPlan(t, subscription.PlanParams{PlanName: "Lifetime", Amount: 299, Interval: subscription.IntervalLifetime})
	_, err := f.create.Execute(context.Background(), CreateSubscriptionCommand{UserID: 7, PlanID: plan.ID()})
	require.NoError(t, err)

	cmd := CompleteSubscriptionCommand{UserID: 7, PlanID: plan.ID(), PaymentID: "pi_paid"}
	res, err := f.complete.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Completed)

	u := f.users.users[7]
	assert.True(t, u.IsSubscribed())
	assert.Nil(t, u.PlanExpiration())
	updates := f.users.updates

	res, err = f.complete.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Completed)
	assert.Equal(t, updates, f.users.updates, "user untouched on redelivery")
	assert.Len(t, f.subs.subs, 1)

	sub, _ := f.subs.GetByUserID(context.Background(), 7)
	assert.Equal(t, subscription.PaymentStatusCompleted, sub.PaymentStatus())
	assert.Equal(t, "pi_paid", sub.StripePaymentID())
}

func TestCompleteSubscription_ExpiryFromSubscription(t *testing.T) {
	f := newSubscriptionFixture(t)
	plan := f.addPlan(t, subscription.PlanParams{PlanName: "Pro Monthly", Amount: 9.99, Interval: subscription.IntervalMonth, IntervalCount: 1})
	f.startAt(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))
	_, err := f.create.Execute(context.Background(), CreateSubscriptionCommand{UserID: 7, PlanID: plan.ID()})
	require.NoError(t, err)

	_, err = f.complete.Execute(context.Background(), CompleteSubscriptionCommand{
		UserID:                 7,
		PlanID:                 plan.ID(),
		ExpiryFromSubscription: true,
	})
	require.NoError(t, err)

	u := f.users.users[7]
	require.NotNil(t, u.PlanExpiration())
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), *u.PlanExpiration())
}

func TestCompleteSubscription_NothingPending(t *testing.T) {
	f := newSubscriptionFixture(t)

	res, err := f.complete.Execute(context.Background(), CompleteSubscriptionCommand{UserID: 7, PlanID: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Completed)
	assert.False(t, f.users.users[7].IsSubscribed())
}

func TestFailSubscription_MatchesPaymentID(t *testing.T) {
	f := newSubscriptionFixture(t)
	plan := f.addPlan(t, subscription.PlanParams{PlanName: "Pro", Amount: 5, Interval: subscription.IntervalMonth})
	checkout, err := f.create.Execute(context.Background(), CreateSubscriptionCommand{UserID: 7, PlanID: plan.ID()})
	require.NoError(t, err)

	n, err := f.fail.Execute(context.Background(), FailSubscriptionCommand{UserID: 7, PlanID: plan.ID(), PaymentID: "pi_other"})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = f.fail.Execute(context.Background(), FailSubscriptionCommand{UserID: 7, PlanID: plan.ID(), PaymentID: checkout.Subscription.StripePaymentID})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	sub, _ := f.subs.GetByUserID(context.Background(), 7)
	assert.Equal(t, subscription.PaymentStatusFailed, sub.PaymentStatus())
}

func TestUpdateSubscription(t *testing.T) {
	f := newSubscriptionFixture(t)
	plan := f.addPlan(t, subscription.PlanParams{PlanName: "Pro", Amount: 5, Interval: subscription.IntervalMonth})
	checkout, err := f.create.Execute(context.Background(), CreateSubscriptionCommand{UserID: 7, PlanID: plan.ID()})
	require.NoError(t, err)
	uc := NewUpdateSubscriptionUseCase(f.subs, logger.NewNop())

	updated, err := uc.Execute(context.Background(), UpdateSubscriptionCommand{
		SubscriptionID: checkout.Subscription.ID,
		PaymentStatus:  ptr("completed"),
		Amount:         ptr(4.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", updated.PaymentStatus)
	assert.Equal(t, 4.5, updated.Amount)

	_, err = uc.Execute(context.Background(), UpdateSubscriptionCommand{
		SubscriptionID: checkout.Subscription.ID,
		PaymentStatus:  ptr("PENDING"),
	})
	assert.True(t, appErrors.IsConflictError(err))

	_, err = uc.Execute(context.Background(), UpdateSubscriptionCommand{SubscriptionID: 404})
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestSubscriptionReads(t *testing.T) {
	f := newSubscriptionFixture(t)
	plan := f.addPlan(t, subscription.PlanParams{PlanName: "Pro", Amount: 5, Interval: subscription.IntervalMonth})
	checkout, err := f.create.Execute(context.Background(), CreateSubscriptionCommand{UserID: 7, PlanID: plan.ID()})
	require.NoError(t, err)
	log := logger.NewNop()

	mine, err := NewGetMySubscriptionUseCase(f.subs, f.plans, f.users, log).Execute(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, mine.Plan)
	assert.Equal(t, "Pro", mine.Plan.PlanName)

	_, err = NewGetMySubscriptionUseCase(f.subs, f.plans, f.users, log).Execute(context.Background(), 8)
	assert.True(t, appErrors.IsNotFoundError(err))

	single, err := NewGetSubscriptionUseCase(f.subs, f.plans, log).Execute(context.Background(), checkout.Subscription.ID)
	require.NoError(t, err)
	assert.Equal(t, checkout.Subscription.ID, single.ID)

	list, err := NewListSubscriptionsUseCase(f.subs, log).Execute(context.Background(), ListSubscriptionsQuery{PaymentStatus: "pending"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)

	_, err = NewListSubscriptionsUseCase(f.subs, log).Execute(context.Background(), ListSubscriptionsQuery{PaymentStatus: "refunded"})
	assert.True(t, appErrors.IsValidationError(err))

	del := NewDeleteSubscriptionUseCase(f.subs, log)
	require.NoError(t, del.Execute(context.Background(), checkout.Subscription.ID))
	assert.True(t, appErrors.IsNotFoundError(del.Execute(context.Background(), checkout.Subscription.ID)))
}
