package payment

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"

	"marketplace/internal/application/payment/paymentgateway"
	"marketplace/internal/shared/logger"
)

const testWebhookSecret = "whsec_test"

func newTestGateway(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	backends := &stripe.Backends{API: backend, Connect: backend, Uploads: backend}
	return NewStripeGatewayWithBackends("sk_test_123", testWebhookSecret, backends, logger.NewNop())
}

func signed(t *testing.T, payload string) (string, []byte) {
	t.Helper()
	sp := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: []byte(payload),
		Secret:  testWebhookSecret,
	})
	return sp.Header, sp.Payload
}

func TestStripeGateway_ParseWebhook_PaymentIntent(t *testing.T) {
	g := NewStripeGateway("sk_test_123", testWebhookSecret, logger.NewNop())
	header, body := signed(t, `{
		"id": "evt_1",
		"object": "event",
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_1", "object": "payment_intent",
			"metadata": {"userId": "7", "planId": "3", "planType": "subscription"}}}
	}`)

	event, err := g.ParseWebhook(body, header)
	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, paymentgateway.EventPaymentIntentSucceeded, event.Type)
	assert.Equal(t, "pi_1", event.PaymentID)
	assert.Equal(t, "7", event.Metadata["userId"])
	assert.Equal(t, "subscription", event.Metadata["planType"])
}

func TestStripeGateway_ParseWebhook_CheckoutSession(t *testing.T) {
	g := NewStripeGateway("sk_test_123", testWebhookSecret, logger.NewNop())
	header, body := signed(t, `{
		"id": "evt_2",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_1", "object": "checkout.session",
			"payment_intent": "pi_9",
			"metadata": {"userId": "7", "planId": "3", "planType": "lifetime"}}}
	}`)

	event, err := g.ParseWebhook(body, header)
	require.NoError(t, err)
	assert.Equal(t, "pi_9", event.PaymentID)
	assert.Equal(t, "lifetime", event.Metadata["planType"])
}

func TestStripeGateway_ParseWebhook_BadSignature(t *testing.T) {
	g := NewStripeGateway("sk_test_123", testWebhookSecret, logger.NewNop())
	_, err := g.ParseWebhook([]byte(`{"id":"evt_3","object":"event","type":"x"}`), "t=1,v1=deadbeef")
	assert.Error(t, err)
}

func TestStripeGateway_CreatePrice(t *testing.T) {
	var form map[string]string
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"price_1","object":"price"}`)
	})

	id, err := g.CreatePrice(context.Background(), paymentgateway.PriceRequest{
		ProductID:     "prod_1",
		UnitAmount:    999,
		Currency:      "usd",
		Recurring:     true,
		Interval:      "month",
		IntervalCount: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "price_1", id)
	assert.Equal(t, "999", form["unit_amount"])
	assert.Equal(t, "month", form["recurring[interval]"])

	_, err = g.CreatePrice(context.Background(), paymentgateway.PriceRequest{
		ProductID:  "prod_1",
		UnitAmount: 4900,
		Currency:   "usd",
	})
	require.NoError(t, err)
	_, hasRecurring := form["recurring[interval]"]
	assert.False(t, hasRecurring, "one-time prices carry no recurring block")
}

func TestStripeGateway_MissingResources(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such object"}}`)
	})

	exists, err := g.ProductExists(context.Background(), "prod_gone")
	require.NoError(t, err)
	assert.False(t, exists)

	err = g.SetPriceActive(context.Background(), "price_gone", false)
	assert.ErrorIs(t, err, paymentgateway.ErrNotFound)
}
