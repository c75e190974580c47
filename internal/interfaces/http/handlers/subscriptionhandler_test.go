package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paymentUsecases "marketplace/internal/application/payment/usecases"
	subdto "marketplace/internal/application/subscription/dto"
	subUsecases "marketplace/internal/application/subscription/usecases"
	"marketplace/internal/interfaces/http/handlers/testutil"
	"marketplace/internal/shared/authorization"
	"marketplace/internal/shared/constants"
	"marketplace/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateSubscriptionUC struct {
	got    subUsecases.CreateSubscriptionCommand
	result *subdto.CheckoutDTO
	err    error
}

func (m *mockCreateSubscriptionUC) Execute(_ context.Context, cmd subUsecases.CreateSubscriptionCommand) (*subdto.CheckoutDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetMySubscriptionUC struct {
	gotUserID uint
	result    *subdto.SubscriptionDTO
	err       error
}

func (m *mockGetMySubscriptionUC) Execute(_ context.Context, userID uint) (*subdto.SubscriptionDTO, error) {
	m.gotUserID = userID
	return m.result, m.err
}

type mockListSubscriptionsUC struct {
	got    subUsecases.ListSubscriptionsQuery
	result *subUsecases.ListSubscriptionsResult
	err    error
}

func (m *mockListSubscriptionsUC) Execute(_ context.Context, q subUsecases.ListSubscriptionsQuery) (*subUsecases.ListSubscriptionsResult, error) {
	m.got = q
	return m.result, m.err
}

type mockGetSubscriptionUC struct {
	result *subdto.SubscriptionDTO
	err    error
}

func (m *mockGetSubscriptionUC) Execute(_ context.Context, _ uint) (*subdto.SubscriptionDTO, error) {
	return m.result, m.err
}

type mockUpdateSubscriptionUC struct {
	got    subUsecases.UpdateSubscriptionCommand
	result *subdto.SubscriptionDTO
	err    error
}

func (m *mockUpdateSubscriptionUC) Execute(_ context.Context, cmd subUsecases.UpdateSubscriptionCommand) (*subdto.SubscriptionDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockDeleteSubscriptionUC struct {
	gotID uint
	err   error
}

func (m *mockDeleteSubscriptionUC) Execute(_ context.Context, id uint) error {
	m.gotID = id
	return m.err
}

type mockHandleWebhookUC struct {
	got    paymentUsecases.HandleWebhookCommand
	result *paymentUsecases.HandleWebhookResult
	err    error
}

func (m *mockHandleWebhookUC) Execute(_ context.Context, cmd paymentUsecases.HandleWebhookCommand) (*paymentUsecases.HandleWebhookResult, error) {
	m.got = cmd
	return m.result, m.err
}

type subscriptionMocks struct {
	create  *mockCreateSubscriptionUC
	getMine *mockGetMySubscriptionUC
	list    *mockListSubscriptionsUC
	get     *mockGetSubscriptionUC
	update  *mockUpdateSubscriptionUC
	delete  *mockDeleteSubscriptionUC
	webhook *mockHandleWebhookUC
}

func newTestSubscriptionHandler() (*SubscriptionHandler, *subscriptionMocks) {
	m := &subscriptionMocks{
		create:  &mockCreateSubscriptionUC{},
		getMine: &mockGetMySubscriptionUC{},
		list:    &mockListSubscriptionsUC{},
		get:     &mockGetSubscriptionUC{},
		update:  &mockUpdateSubscriptionUC{},
		delete:  &mockDeleteSubscriptionUC{},
		webhook: &mockHandleWebhookUC{},
	}
	h := NewSubscriptionHandler(m.create, m.getMine, m.list, m.get, m.update, m.delete, m.webhook, testutil.NewMockLogger())
	return h, m
}

func createTestSubscriptionDTO() *subdto.SubscriptionDTO {
	return &subdto.SubscriptionDTO{
		ID:            5,
		UserID:        7,
		PlanID:        3,
		Amount:        9.99,
		PaymentStatus: "COMPLETED",
	}
}

// =====================================================================
// TestSubscriptionHandler_CreateSubscription
// =====================================================================

func TestSubscriptionHandler_CreateSubscription_Success(t *testing.T) {
	h, m := newTestSubscriptionHandler()
	m.create.result = &subdto.CheckoutDTO{
		Subscription: &subdto.SubscriptionDTO{ID: 5, UserID: 7, PlanID: 3, PaymentStatus: "PENDING"},
		ClientSecret: "pi_1_secret",
		PlanType:     "subscription",
	}

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions/create-subscription", CreateSubscriptionRequest{PlanID: 3})
	testutil.SetAuthContext(c, 7, authorization.RoleUser)
	h.CreateSubscription(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), m.create.got.UserID)
	assert.Equal(t, uint(3), m.create.got.PlanID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var checkout subdto.CheckoutDTO
	require.NoError(t, json.Unmarshal(resp.Data, &checkout))
	assert.Equal(t, "pi_1_secret", checkout.ClientSecret)
}

func TestSubscriptionHandler_CreateSubscription_Errors(t *testing.T) {
	tests := []struct {
		name       string
		auth       bool
		body       interface{}
		ucErr      error
		wantStatus int
	}{
		{name: "unauthenticated", auth: false, body: CreateSubscriptionRequest{PlanID: 3}, wantStatus: http.StatusUnauthorized},
		{name: "missing plan", auth: true, body: map[string]interface{}{}, wantStatus: http.StatusBadRequest},
		{name: "plan not found", auth: true, body: CreateSubscriptionRequest{PlanID: 9}, ucErr: errors.NewNotFoundError("Plan not found"), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestSubscriptionHandler()
			m.create.err = tt.ucErr

			c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions/create-subscription", tt.body)
			if tt.auth {
				testutil.SetAuthContext(c, 7, authorization.RoleUser)
			}
			h.CreateSubscription(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

// =====================================================================
// TestSubscriptionHandler_GetMySubscription
// =====================================================================

func TestSubscriptionHandler_GetMySubscription(t *testing.T) {
	h, m := newTestSubscriptionHandler()
	m.getMine.result = createTestSubscriptionDTO()

	c, w := testutil.NewTestContext(http.MethodGet, "/subscriptions/my-subscription", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleUser)
	h.GetMySubscription(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), m.getMine.gotUserID)
}

func TestSubscriptionHandler_GetMySubscription_NotFound(t *testing.T) {
	h, m := newTestSubscriptionHandler()
	m.getMine.err = errors.NewNotFoundError("Subscription not found")

	c, w := testutil.NewTestContext(http.MethodGet, "/subscriptions/my-subscription", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleUser)
	h.GetMySubscription(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestSubscriptionHandler_ListSubscriptions
// =====================================================================

func TestSubscriptionHandler_ListSubscriptions(t *testing.T) {
	h, m := newTestSubscriptionHandler()
	m.list.result = &subUsecases.ListSubscriptionsResult{
		Subscriptions: []*subdto.SubscriptionDTO{createTestSubscriptionDTO()},
		Total:         1,
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/subscriptions", nil)
	testutil.SetQueryParams(c, map[string]string{
		"page":          "2",
		"limit":         "5",
		"paymentStatus": "COMPLETED",
		"planId":        "3",
		"sortBy":        "amount",
	})
	h.ListSubscriptions(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, m.list.got.Page)
	assert.Equal(t, 5, m.list.got.PageSize)
	assert.Equal(t, "COMPLETED", m.list.got.PaymentStatus)
	assert.Equal(t, "amount", m.list.got.SortBy)
	require.NotNil(t, m.list.got.PlanID)
	assert.Equal(t, uint(3), *m.list.got.PlanID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.Total)
}

func TestSubscriptionHandler_ListSubscriptions_InvalidPlanFilter(t *testing.T) {
	h, _ := newTestSubscriptionHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/subscriptions", nil)
	testutil.SetQueryParams(c, map[string]string{"planId": "abc"})
	h.ListSubscriptions(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestSubscriptionHandler_Get / Update / Delete
// =====================================================================

func TestSubscriptionHandler_GetSubscription(t *testing.T) {
	tests := []struct {
		name       string
		param      string
		uc         *mockGetSubscriptionUC
		wantStatus int
	}{
		{name: "success", param: "5", uc: &mockGetSubscriptionUC{result: createTestSubscriptionDTO()}, wantStatus: http.StatusOK},
		{name: "invalid id", param: "x", uc: &mockGetSubscriptionUC{}, wantStatus: http.StatusBadRequest},
		{name: "not found", param: "6", uc: &mockGetSubscriptionUC{err: errors.NewNotFoundError("Subscription not found")}, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestSubscriptionHandler()
			*m.get = *tt.uc

			c, w := testutil.NewTestContext(http.MethodGet, "/subscriptions/"+tt.param, nil)
			testutil.SetURLParam(c, "subscriptionId", tt.param)
			h.GetSubscription(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestSubscriptionHandler_UpdateSubscription(t *testing.T) {
	h, m := newTestSubscriptionHandler()
	m.update.result = createTestSubscriptionDTO()

	body := map[string]interface{}{
		"amount":        12.5,
		"paymentStatus": "COMPLETED",
		"clearEndDate":  true,
	}
	c, w := testutil.NewTestContext(http.MethodPut, "/subscriptions/5", body)
	testutil.SetURLParam(c, "subscriptionId", "5")
	h.UpdateSubscription(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), m.update.got.SubscriptionID)
	require.NotNil(t, m.update.got.Amount)
	assert.InDelta(t, 12.5, *m.update.got.Amount, 0.0001)
	require.NotNil(t, m.update.got.PaymentStatus)
	assert.Equal(t, "COMPLETED", *m.update.got.PaymentStatus)
	assert.True(t, m.update.got.ClearEndDate)
	assert.Nil(t, m.update.got.StartDate)
}

func TestSubscriptionHandler_UpdateSubscription_InvalidStatus(t *testing.T) {
	h, m := newTestSubscriptionHandler()

	c, w := testutil.NewTestContext(http.MethodPut, "/subscriptions/5", map[string]interface{}{"paymentStatus": "REFUNDED"})
	testutil.SetURLParam(c, "subscriptionId", "5")
	h.UpdateSubscription(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, m.update.got.SubscriptionID)
}

func TestSubscriptionHandler_DeleteSubscription(t *testing.T) {
	h, m := newTestSubscriptionHandler()

	c, w := testutil.NewTestContext(http.MethodDelete, "/subscriptions/5", nil)
	testutil.SetURLParam(c, "subscriptionId", "5")
	h.DeleteSubscription(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), m.delete.gotID)
}

// =====================================================================
// TestSubscriptionHandler_StripeWebhook
// =====================================================================

func newWebhookContext(payload []byte, signature string) (*SubscriptionHandler, *subscriptionMocks, *httptest.ResponseRecorder, func()) {
	h, m := newTestSubscriptionHandler()
	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions/stripe/webhook", nil)
	c.Request = httptest.NewRequest(http.MethodPost, "/subscriptions/stripe/webhook", bytes.NewReader(payload))
	c.Request.Header.Set(constants.HeaderStripeSignature, signature)
	return h, m, w, func() { h.StripeWebhook(c) }
}

func TestSubscriptionHandler_StripeWebhook_PassesRawBody(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
	_, m, w, run := newWebhookContext(payload, "t=1,v1=abc")
	m.webhook.result = &paymentUsecases.HandleWebhookResult{Received: true, Event: "payment_intent.succeeded"}

	run()

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, payload, m.webhook.got.Payload)
	assert.Equal(t, "t=1,v1=abc", m.webhook.got.Signature)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["received"])
}

func TestSubscriptionHandler_StripeWebhook_InvalidSignature(t *testing.T) {
	_, m, w, run := newWebhookContext([]byte(`{}`), "forged")
	m.webhook.err = errors.NewBadRequestError("Webhook signature verification failed")

	run()

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscriptionHandler_StripeWebhook_ProcessingFailureStillAcknowledged(t *testing.T) {
	_, m, w, run := newWebhookContext([]byte(`{}`), "t=1,v1=abc")
	m.webhook.err = errors.NewInternalError("Webhook handling failed")

	run()

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["received"])
}
