package usecases

import (
	"context"
	"fmt"
	"strconv"

	"marketplace/internal/application/payment/paymentgateway"
	subscriptionUsecases "marketplace/internal/application/subscription/usecases"
	"marketplace/internal/domain/subscription"
	appErrors "marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

const webhookProvider = "stripe"

type HandleWebhookCommand struct {
	Payload   []byte
	Signature string
}

type HandleWebhookResult struct {
	Received bool   `json:"received"`
	Event    string `json:"event,omitempty"`
	Skipped  bool   `json:"skipped,omitempty"`
}

type HandleWebhookUseCase struct {
	parser    WebhookParser
	dedup     EventDeduplicator
	completer SubscriptionCompleter
	failer    SubscriptionFailer
	logger    logger.Interface
}

// NewHandleWebhookUseCase builds the handler; dedup may be nil.
func NewHandleWebhookUseCase(
	parser WebhookParser,
	dedup EventDeduplicator,
	completer SubscriptionCompleter,
	failer SubscriptionFailer,
	logger logger.Interface,
) *HandleWebhookUseCase {
	return &HandleWebhookUseCase{
		parser:    parser,
		dedup:     dedup,
		completer: completer,
		failer:    failer,
		logger:    logger,
	}
}

func (uc *HandleWebhookUseCase) Execute(ctx context.Context, cmd HandleWebhookCommand) (*HandleWebhookResult, error) {
	event, err := uc.parser.ParseWebhook(cmd.Payload, cmd.Signature)
	if err != nil {
		uc.logger.Warnw("webhook signature verification failed", "error", err)
		return nil, appErrors.NewBadRequestError("invalid webhook signature")
	}

	if uc.dedup != nil && event.ID != "" {
		acquired, err := uc.dedup.TryAcquire(ctx, webhookProvider, event.ID)
		if err != nil {
			uc.logger.Warnw("webhook dedup unavailable", "error", err, "event_id", event.ID)
		} else if !acquired {
			uc.logger.Infow("duplicate webhook event skipped", "event_id", event.ID, "type", event.Type)
			return &HandleWebhookResult{Received: true, Event: event.Type, Skipped: true}, nil
		}
	}

	if err := uc.dispatch(ctx, event); err != nil {
		uc.logger.Errorw("failed to handle webhook event", "error", err, "event_id", event.ID, "type", event.Type)
		if uc.dedup != nil && event.ID != "" {
			if releaseErr := uc.dedup.Release(ctx, webhookProvider, event.ID); releaseErr != nil {
				uc.logger.Warnw("failed to release webhook event", "error", releaseErr, "event_id", event.ID)
			}
		}
		return nil, appErrors.NewInternalError("Webhook handling failed")
	}

	return &HandleWebhookResult{Received: true, Event: event.Type}, nil
}

func (uc *HandleWebhookUseCase) dispatch(ctx context.Context, event *paymentgateway.WebhookEvent) error {
	switch event.Type {
	case paymentgateway.EventPaymentIntentSucceeded:
		userID, planID, err := parseOwner(event.Metadata)
		if err != nil {
			return err
		}
		_, err = uc.completer.Execute(ctx, subscriptionUsecases.CompleteSubscriptionCommand{
			UserID:                 userID,
			PlanID:                 planID,
			PaymentID:              event.PaymentID,
			ExpiryFromSubscription: event.Metadata[subscriptionUsecases.MetadataPlanType] != string(subscription.PlanTypeLifetime),
		})
		return err

	case paymentgateway.EventPaymentIntentFailed:
		userID, planID, err := parseOwner(event.Metadata)
		if err != nil {
			return err
		}
		_, err = uc.failer.Execute(ctx, subscriptionUsecases.FailSubscriptionCommand{
			UserID:    userID,
			PlanID:    planID,
			PaymentID: event.PaymentID,
		})
		return err

	case paymentgateway.EventCheckoutSessionCompleted:
		if event.Metadata[subscriptionUsecases.MetadataPlanType] != string(subscription.PlanTypeLifetime) {
			uc.logger.Debugw("checkout session without lifetime plan ignored", "event_id", event.ID)
			return nil
		}
		userID, planID, err := parseOwner(event.Metadata)
		if err != nil {
			return err
		}
		_, err = uc.completer.Execute(ctx, subscriptionUsecases.CompleteSubscriptionCommand{
			UserID:    userID,
			PlanID:    planID,
			PaymentID: event.PaymentID,
			Expiry:    nil,
		})
		return err

	default:
		uc.logger.Infow("unhandled webhook event type", "type", event.Type, "event_id", event.ID)
		return nil
	}
}

func parseOwner(metadata map[string]string) (uint, uint, error) {
	userID, err := strconv.ParseUint(metadata[subscriptionUsecases.MetadataUserID], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid userId metadata: %w", err)
	}
	planID, err := strconv.ParseUint(metadata[subscriptionUsecases.MetadataPlanID], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid planId metadata: %w", err)
	}
	return uint(userID), uint(planID), nil
}
