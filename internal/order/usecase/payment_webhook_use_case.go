package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"posterworks/internal/domain"
	"posterworks/internal/dto"
	apperrors "posterworks/internal/errors"
	"posterworks/internal/payment"
)

type PaidMarker interface {
	Insert(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, orderID string) (*domain.Order, error)
	MarkPaid(ctx context.Context, orderID string, amountPaid int64, paymentIntentID string) error
}

type TaskPublisher interface {
	Publish(data []byte) (string, error)
}

type EventDeduper interface {
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
}

type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type PaymentWebhookUseCase struct {
	orderRepo     PaidMarker
	queue         TaskPublisher
	deduper       EventDeduper
	emailClient   EmailSender
	webhookSecret string
	notifyAddress string
	logger        *zap.Logger
}

func NewPaymentWebhookUseCase(
	orderRepo PaidMarker,
	queue TaskPublisher,
	deduper EventDeduper,
	emailClient EmailSender,
	webhookSecret string,
	notifyAddress string,
	logger *zap.Logger,
) *PaymentWebhookUseCase {
	return &PaymentWebhookUseCase{
		orderRepo:     orderRepo,
		queue:         queue,
		deduper:       deduper,
		emailClient:   emailClient,
		webhookSecret: webhookSecret,
		notifyAddress: notifyAddress,
		logger:        logger,
	}
}

// HandleEvent verifies and applies one signed provider notification. A
// verification failure always rejects the delivery; there is no unverified
// fallback. Non-payment events and replays are acknowledged without side
// effects so the provider does not retry them.
func (uc *PaymentWebhookUseCase) HandleEvent(ctx context.Context, payload []byte, signatureHeader string) error {
	if err := payment.VerifySignature(payload, signatureHeader, uc.webhookSecret, payment.DefaultTolerance, time.Now()); err != nil {
		uc.logger.Warn("webhook signature verification failed", zap.Error(err))
		return err
	}

	event, err := payment.ParseEvent(payload)
	if err != nil {
		return apperrors.NewValidationError("malformed event payload", apperrors.ValidationDetail{
			Field:   "body",
			Message: "event payload must be valid JSON",
		})
	}

	if !event.IsPaymentSuccess() {
		uc.logger.Debug("ignoring event type", zap.String("type", event.Type))
		return nil
	}

	orderID := event.OrderID()
	if orderID == "" {
		return apperrors.NewValidationError("missing order reference", apperrors.ValidationDetail{
			Field:   "metadata.order_id",
			Message: "event metadata must carry the order id",
		})
	}

	logger := uc.logger.With(zap.String("orderId", orderID), zap.String("eventId", event.ID))

	if err := uc.markOrderPaid(ctx, event, orderID, logger); err != nil {
		return err
	}

	// The event is marked processed only after the order write committed. A
	// transient write failure above leaves the event unmarked, so the
	// provider's redelivery retries it instead of being skipped as a replay.
	fresh, err := uc.deduper.MarkProcessed(ctx, event.ID)
	if err != nil {
		// Dedup is an optimization; the status guard on MarkPaid still holds.
		logger.Warn("event dedup unavailable", zap.Error(err))
		fresh = true
	}
	if !fresh {
		logger.Info("event already processed, skipping")
		return nil
	}

	task, _ := json.Marshal(dto.FulfillmentTask{OrderID: orderID})
	if taskID, err := uc.queue.Publish(task); err != nil {
		// The broker was unreachable; the order stays PAID and the sweep of
		// paid-but-unsubmitted orders is an operational runbook item.
		logger.Error("enqueueing fulfillment task failed", zap.Error(err))
	} else {
		logger.Info("fulfillment task enqueued", zap.String("taskId", taskID))
	}

	if uc.notifyAddress != "" {
		subject := fmt.Sprintf("Order %s paid", orderID)
		body := fmt.Sprintf("Order %s completed payment for %d cents.", orderID, event.PaidAmount())
		if err := uc.emailClient.Send(ctx, uc.notifyAddress, subject, body); err != nil {
			logger.Warn("internal notification email failed", zap.Error(err))
		}
	}

	return nil
}

func (uc *PaymentWebhookUseCase) markOrderPaid(ctx context.Context, event *payment.Event, orderID string, logger *zap.Logger) error {
	_, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); !ok {
			return err
		}
		// Webhook delivery can outrun the checkout record write. Synthesize a
		// minimal paid record so the payment is never lost.
		now := time.Now().UTC()
		synthesized := &domain.Order{
			OrderID:         orderID,
			Email:           event.Data.Object.CustomerEmail,
			AmountPaid:      event.PaidAmount(),
			TotalAmount:     event.PaidAmount(),
			Status:          domain.OrderStatusPaid,
			PaymentIntentID: event.Data.Object.ID,
			CreatedAt:       now,
			UpdatedAt:       now,
			ExpiresAt:       now,
		}
		if err := uc.orderRepo.Insert(ctx, synthesized); err != nil {
			return fmt.Errorf("synthesizing order record: %w", err)
		}
		logger.Warn("order record missing, synthesized from event")
		return nil
	}

	if err := uc.orderRepo.MarkPaid(ctx, orderID, event.PaidAmount(), event.Data.Object.ID); err != nil {
		if _, ok := apperrors.IsConflictError(err); ok {
			// Already past PENDING; a replay or a race with another delivery.
			logger.Info("order not pending, leaving status untouched")
			return nil
		}
		return err
	}

	logger.Info("order marked paid", zap.Int64("amountPaid", event.PaidAmount()))
	return nil
}
