package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"posterworks/internal/dto"
	apperrors "posterworks/internal/errors"
)

type StatusUseCase interface {
	GetOrder(ctx context.Context, orderID string) (*dto.OrderStatusResponse, error)
	GetPaymentStatus(ctx context.Context, orderID, clientID string) (*dto.PaymentStatusResponse, error)
}

type StatusController struct {
	useCase StatusUseCase
	logger  *zap.Logger
}

func NewStatusController(useCase StatusUseCase, logger *zap.Logger) *StatusController {
	return &StatusController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *StatusController) HandleOrderStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		writeError(w, logger, apperrors.NewValidationError("orderID is required", apperrors.ValidationDetail{
			Field:   "orderID",
			Message: "orderID path parameter is required",
		}))
		return
	}

	resp, err := c.useCase.GetOrder(r.Context(), orderID)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, resp)
}

func (c *StatusController) HandlePaymentStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID := r.URL.Query().Get("orderId")
	clientID := r.URL.Query().Get("clientId")

	resp, err := c.useCase.GetPaymentStatus(r.Context(), orderID, clientID)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, resp)
}
