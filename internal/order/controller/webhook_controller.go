package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"posterworks/internal/dto"
	apperrors "posterworks/internal/errors"
)

// SignatureHeader is the payment provider's webhook signature header.
const SignatureHeader = "Webhook-Signature"

type PaymentWebhookUseCase interface {
	HandleEvent(ctx context.Context, payload []byte, signatureHeader string) error
}

type ShippingWebhookUseCase interface {
	HandleCallback(ctx context.Context, callback dto.ShippingCallback) error
}

type WebhookController struct {
	paymentUseCase  PaymentWebhookUseCase
	shippingUseCase ShippingWebhookUseCase
	logger          *zap.Logger
}

func NewWebhookController(
	paymentUseCase PaymentWebhookUseCase,
	shippingUseCase ShippingWebhookUseCase,
	logger *zap.Logger,
) *WebhookController {
	return &WebhookController{
		paymentUseCase:  paymentUseCase,
		shippingUseCase: shippingUseCase,
		logger:          logger,
	}
}

// HandlePaymentWebhook needs the raw body for signature verification, so the
// payload is read before any decoding.
func (c *WebhookController) HandlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("reading webhook body failed", zap.Error(err))
		writeError(w, logger, apperrors.NewValidationError("unreadable body"))
		return
	}

	if err := c.paymentUseCase.HandleEvent(r.Context(), payload, r.Header.Get(SignatureHeader)); err != nil {
		writeError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, map[string]string{"message": "webhook received"})
}

func (c *WebhookController) HandleShippingWebhook(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var callback dto.ShippingCallback
	if err := json.NewDecoder(r.Body).Decode(&callback); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		writeError(w, logger, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}))
		return
	}

	if err := c.shippingUseCase.HandleCallback(r.Context(), callback); err != nil {
		writeError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, map[string]string{"message": "shipping webhook processed"})
}
