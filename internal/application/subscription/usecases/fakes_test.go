package usecases

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"marketplace/internal/application/payment/paymentgateway"
	"marketplace/internal/domain/subscription"
	"marketplace/internal/domain/user"
	"marketplace/internal/shared/authorization"
)

var errDBDown = errors.New("database unavailable")

func ptr[T any](v T) *T {
	return &v
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ---- plans ----

type fakePlanRepo struct {
	plans     map[uint]*subscription.Plan
	nextID    uint
	createErr error
	updateErr error
	deleted   []uint
	productID map[uint]string
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[uint]*subscription.Plan{}, productID: map[uint]string{}}
}

func (r *fakePlanRepo) Create(_ context.Context, plan *subscription.Plan) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	plan.SetID(r.nextID)
	r.plans[plan.ID()] = plan
	return nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id uint) (*subscription.Plan, error) {
	return r.plans[id], nil
}

func (r *fakePlanRepo) List(_ context.Context) ([]*subscription.Plan, error) {
	out := make([]*subscription.Plan, 0, len(r.plans))
	for _, p := range r.plans {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePlanRepo) Update(_ context.Context, plan *subscription.Plan) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.plans[plan.ID()] = plan
	return nil
}

func (r *fakePlanRepo) UpdateProductID(_ context.Context, id uint, productID string) error {
	r.productID[id] = productID
	return nil
}

func (r *fakePlanRepo) Delete(_ context.Context, id uint) error {
	delete(r.plans, id)
	r.deleted = append(r.deleted, id)
	return nil
}

// ---- subscriptions ----

type fakeSubscriptionRepo struct {
	subs   map[uint]*subscription.Subscription
	nextID uint
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: map[uint]*subscription.Subscription{}}
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, s *subscription.Subscription) error {
	for _, existing := range r.subs {
		if existing.UserID() == s.UserID() {
			return errors.New("UNIQUE constraint failed: subscriptions.user_id")
		}
	}
	r.nextID++
	s.SetID(r.nextID)
	r.subs[s.ID()] = s
	return nil
}

func (r *fakeSubscriptionRepo) GetByID(_ context.Context, id uint) (*subscription.Subscription, error) {
	return r.subs[id], nil
}

func (r *fakeSubscriptionRepo) GetByUserID(_ context.Context, userID uint) (*subscription.Subscription, error) {
	for _, s := range r.subs {
		if s.UserID() == userID {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSubscriptionRepo) FindPending(_ context.Context, userID, planID uint) ([]*subscription.Subscription, error) {
	var out []*subscription.Subscription
	for _, s := range r.subs {
		if s.UserID() == userID && s.PlanID() == planID && s.IsPending() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) Update(_ context.Context, s *subscription.Subscription) error {
	r.subs[s.ID()] = s
	return nil
}

func (r *fakeSubscriptionRepo) Delete(_ context.Context, id uint) error {
	delete(r.subs, id)
	return nil
}

func (r *fakeSubscriptionRepo) List(_ context.Context, filter subscription.SubscriptionFilter) ([]*subscription.Subscription, int64, error) {
	var out []*subscription.Subscription
	for _, s := range r.subs {
		if filter.PaymentStatus != nil && s.PaymentStatus() != *filter.PaymentStatus {
			continue
		}
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

// ---- users ----

type fakeUserRepo struct {
	users   map[uint]*user.User
	updates int
}

func newFakeUserRepo(t *testing.T, ids ...uint) *fakeUserRepo {
	t.Helper()
	r := &fakeUserRepo{users: map[uint]*user.User{}}
	for _, id := range ids {
		u, err := user.NewUser(user.NewUserParams{
			Email:    fmt.Sprintf("user%d@example.com", id),
			Role:     authorization.RoleUser,
			Verified: true,
		})
		require.NoError(t, err)
		u.SetID(id)
		r.users[id] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*user.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	r.updates++
	r.users[u.ID()] = u
	return nil
}

// ---- payment gateway ----

type priceState struct {
	req    paymentgateway.PriceRequest
	active bool
}

type fakeGateway struct {
	products       map[string]bool
	prices         map[string]*priceState
	createdPrices  []string
	intents        []paymentgateway.PaymentIntentRequest
	productUpdates int
	seq            int
	createPriceErr error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{products: map[string]bool{}, prices: map[string]*priceState{}}
}

func (g *fakeGateway) next(prefix string) string {
	g.seq++
	return fmt.Sprintf("%s_%d", prefix, g.seq)
}

func (g *fakeGateway) CreateProduct(_ context.Context, req paymentgateway.ProductRequest) (string, error) {
	id := g.next("prod")
	g.products[id] = req.Active
	return id, nil
}

func (g *fakeGateway) ProductExists(_ context.Context, productID string) (bool, error) {
	_, ok := g.products[productID]
	return ok, nil
}

func (g *fakeGateway) UpdateProduct(_ context.Context, productID string, req paymentgateway.ProductRequest) error {
	if _, ok := g.products[productID]; !ok {
		return paymentgateway.ErrNotFound
	}
	g.products[productID] = req.Active
	g.productUpdates++
	return nil
}

func (g *fakeGateway) DeactivateProduct(_ context.Context, productID string) error {
	if _, ok := g.products[productID]; !ok {
		return paymentgateway.ErrNotFound
	}
	g.products[productID] = false
	return nil
}

func (g *fakeGateway) CreatePrice(_ context.Context, req paymentgateway.PriceRequest) (string, error) {
	if g.createPriceErr != nil {
		return "", g.createPriceErr
	}
	id := g.next("price")
	g.prices[id] = &priceState{req: req, active: true}
	g.createdPrices = append(g.createdPrices, id)
	return id, nil
}

func (g *fakeGateway) SetPriceActive(_ context.Context, priceID string, active bool) error {
	p, ok := g.prices[priceID]
	if !ok {
		return paymentgateway.ErrNotFound
	}
	p.active = active
	return nil
}

func (g *fakeGateway) CreatePaymentIntent(_ context.Context, req paymentgateway.PaymentIntentRequest) (*paymentgateway.PaymentIntent, error) {
	g.intents = append(g.intents, req)
	id := g.next("pi")
	return &paymentgateway.PaymentIntent{ID: id, ClientSecret: id + "_secret"}, nil
}

func (g *fakeGateway) ParseWebhook(_ []byte, _ string) (*paymentgateway.WebhookEvent, error) {
	return nil, errors.New("not used")
}
