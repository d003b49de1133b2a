package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"posterworks/internal/domain"
	"posterworks/internal/dto"
	apperrors "posterworks/internal/errors"
)

type ShippingStatusRepository interface {
	FindByID(ctx context.Context, orderID string) (*domain.Order, error)
	UpdateShippingStatus(ctx context.Context, orderID, shippingStatus string) error
}

type ShippingWebhookUseCase struct {
	orderRepo   ShippingStatusRepository
	emailClient EmailSender
	logger      *zap.Logger
}

func NewShippingWebhookUseCase(
	orderRepo ShippingStatusRepository,
	emailClient EmailSender,
	logger *zap.Logger,
) *ShippingWebhookUseCase {
	return &ShippingWebhookUseCase{
		orderRepo:   orderRepo,
		emailClient: emailClient,
		logger:      logger,
	}
}

// HandleCallback applies a partner shipping-status update. The status string
// is the partner's vocabulary and is stored verbatim. The customer email is
// best effort: a missing address or a send failure is logged, never an error.
func (uc *ShippingWebhookUseCase) HandleCallback(ctx context.Context, callback dto.ShippingCallback) error {
	if callback.Reference == "" {
		return apperrors.NewValidationError("missing order reference", apperrors.ValidationDetail{
			Field:   "reference",
			Message: "reference is required",
		})
	}

	logger := uc.logger.With(
		zap.String("orderId", callback.Reference),
		zap.String("shippingStatus", callback.Status),
	)

	if err := uc.orderRepo.UpdateShippingStatus(ctx, callback.Reference, callback.Status); err != nil {
		return err
	}
	logger.Info("shipping status updated")

	order, err := uc.orderRepo.FindByID(ctx, callback.Reference)
	if err != nil {
		logger.Warn("loading order for customer email failed", zap.Error(err))
		return nil
	}

	if order.Email == "" {
		logger.Warn("no customer email on order, skipping notification")
		return nil
	}

	subject := "Your order shipping update"
	body := fmt.Sprintf("Your order %s status has been updated to: %s.", callback.Reference, callback.Status)
	if err := uc.emailClient.Send(ctx, order.Email, subject, body); err != nil {
		logger.Warn("customer status email failed", zap.Error(err))
	}

	return nil
}
