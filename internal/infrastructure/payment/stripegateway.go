package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"

	"marketplace/internal/application/payment/paymentgateway"
	"marketplace/internal/shared/logger"
)

// StripeGateway implements paymentgateway.PaymentGateway on the Stripe API.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	logger        logger.Interface
}

func NewStripeGateway(secretKey, webhookSecret string, logger logger.Interface) *StripeGateway {
	return NewStripeGatewayWithBackends(secretKey, webhookSecret, nil, logger)
}

// NewStripeGatewayWithBackends lets callers point the client at another API host.
func NewStripeGatewayWithBackends(secretKey, webhookSecret string, backends *stripe.Backends, logger logger.Interface) *StripeGateway {
	return &StripeGateway{
		api:           client.New(secretKey, backends),
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

func isResourceMissing(err error) bool {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return false
	}
	return stripeErr.Code == stripe.ErrorCodeResourceMissing || stripeErr.HTTPStatusCode == 404
}

func (g *StripeGateway) CreateProduct(ctx context.Context, req paymentgateway.ProductRequest) (string, error) {
	params := &stripe.ProductParams{
		Name:   stripe.String(req.Name),
		Active: stripe.Bool(req.Active),
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	params.Context = ctx

	product, err := g.api.Products.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe product: %w", err)
	}
	g.logger.Infow("stripe product created", "product_id", product.ID)
	return product.ID, nil
}

func (g *StripeGateway) ProductExists(ctx context.Context, productID string) (bool, error) {
	if productID == "" {
		return false, nil
	}
	params := &stripe.ProductParams{}
	params.Context = ctx

	if _, err := g.api.Products.Get(productID, params); err != nil {
		if isResourceMissing(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to retrieve stripe product: %w", err)
	}
	return true, nil
}

func (g *StripeGateway) UpdateProduct(ctx context.Context, productID string, req paymentgateway.ProductRequest) error {
	params := &stripe.ProductParams{
		Name:        stripe.String(req.Name),
		Description: stripe.String(req.Description),
		Active:      stripe.Bool(req.Active),
	}
	params.Context = ctx

	if _, err := g.api.Products.Update(productID, params); err != nil {
		if isResourceMissing(err) {
			return paymentgateway.ErrNotFound
		}
		return fmt.Errorf("failed to update stripe product: %w", err)
	}
	return nil
}

func (g *StripeGateway) DeactivateProduct(ctx context.Context, productID string) error {
	params := &stripe.ProductParams{Active: stripe.Bool(false)}
	params.Context = ctx

	if _, err := g.api.Products.Update(productID, params); err != nil {
		if isResourceMissing(err) {
			return paymentgateway.ErrNotFound
		}
		return fmt.Errorf("failed to deactivate stripe product: %w", err)
	}
	return nil
}

func (g *StripeGateway) CreatePrice(ctx context.Context, req paymentgateway.PriceRequest) (string, error) {
	params := &stripe.PriceParams{
		Product:    stripe.String(req.ProductID),
		UnitAmount: stripe.Int64(req.UnitAmount),
		Currency:   stripe.String(req.Currency),
	}
	if req.Recurring {
		count := req.IntervalCount
		if count < 1 {
			count = 1
		}
		params.Recurring = &stripe.PriceRecurringParams{
			Interval:      stripe.String(req.Interval),
			IntervalCount: stripe.Int64(int64(count)),
		}
	}
	params.Context = ctx

	price, err := g.api.Prices.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe price: %w", err)
	}
	g.logger.Infow("stripe price created",
		"price_id", price.ID,
		"product_id", req.ProductID,
		"recurring", req.Recurring,
	)
	return price.ID, nil
}

func (g *StripeGateway) SetPriceActive(ctx context.Context, priceID string, active bool) error {
	params := &stripe.PriceParams{Active: stripe.Bool(active)}
	params.Context = ctx

	if _, err := g.api.Prices.Update(priceID, params); err != nil {
		if isResourceMissing(err) {
			return paymentgateway.ErrNotFound
		}
		return fmt.Errorf("failed to update stripe price: %w", err)
	}
	return nil
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req paymentgateway.PaymentIntentRequest) (*paymentgateway.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe payment intent: %w", err)
	}
	return &paymentgateway.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*paymentgateway.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid stripe webhook signature: %w", err)
	}

	out := &paymentgateway.WebhookEvent{
		ID:       event.ID,
		Type:     string(event.Type),
		Metadata: map[string]string{},
	}
	if event.Data == nil {
		return out, nil
	}

	switch out.Type {
	case paymentgateway.EventPaymentIntentSucceeded, paymentgateway.EventPaymentIntentFailed:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payment intent: %w", err)
		}
		out.PaymentID = intent.ID
		maps.Copy(out.Metadata, intent.Metadata)

	case paymentgateway.EventCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("failed to unmarshal checkout session: %w", err)
		}
		out.PaymentID = session.ID
		if session.PaymentIntent != nil && session.PaymentIntent.ID != "" {
			out.PaymentID = session.PaymentIntent.ID
		}
		maps.Copy(out.Metadata, session.Metadata)
	}

	return out, nil
}
