package paymentgateway

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a product or price no longer exists at the processor.
var ErrNotFound = errors.New("payment resource not found")

// PaymentGateway is the billing processor that mirrors plans as products and
// prices and collects payments through payment intents.
type PaymentGateway interface {
	CreateProduct(ctx context.Context, req ProductRequest) (string, error)
	// ProductExists reports false when the product was removed at the processor.
	ProductExists(ctx context.Context, productID string) (bool, error)
	UpdateProduct(ctx context.Context, productID string, req ProductRequest) error
	DeactivateProduct(ctx context.Context, productID string) error

	CreatePrice(ctx context.Context, req PriceRequest) (string, error)
	// SetPriceActive returns ErrNotFound when the price does not exist.
	SetPriceActive(ctx context.Context, priceID string, active bool) error

	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error)

	// ParseWebhook verifies the signature header and decodes the event.
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

type ProductRequest struct {
	Name        string
	Description string
	Active      bool
}

// PriceRequest describes an immutable processor price. Recurring is false
// for one-time (lifetime) prices, in which case Interval is ignored.
type PriceRequest struct {
	ProductID     string
	UnitAmount    int64 // Amount in smallest currency unit (e.g., cents: 999 = 9.99 USD)
	Currency      string
	Recurring     bool
	Interval      string
	IntervalCount int
}

type PaymentIntentRequest struct {
	Amount   int64 // Amount in smallest currency unit
	Currency string
	Metadata map[string]string
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
}

const (
	EventPaymentIntentSucceeded   = "payment_intent.succeeded"
	EventPaymentIntentFailed      = "payment_intent.payment_failed"
	EventCheckoutSessionCompleted = "checkout.session.completed"
)

// WebhookEvent is the processor-neutral view of a verified webhook event.
// PaymentID is the payment intent id, or the checkout session id when the
// session carries no payment intent.
type WebhookEvent struct {
	ID        string
	Type      string
	PaymentID string
	Metadata  map[string]string
}
