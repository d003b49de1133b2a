package usecase

import (
	"context"

	"go.uber.org/zap"

	"posterworks/internal/domain"
	"posterworks/internal/dto"
	apperrors "posterworks/internal/errors"
)

type StatusOrderRepository interface {
	FindByID(ctx context.Context, orderID string) (*domain.Order, error)
	FindLatestByClientID(ctx context.Context, clientID string, statuses []domain.OrderStatus) (*domain.Order, error)
}

type StatusUseCase struct {
	orderRepo StatusOrderRepository
	logger    *zap.Logger
}

func NewStatusUseCase(orderRepo StatusOrderRepository, logger *zap.Logger) *StatusUseCase {
	return &StatusUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// GetOrder returns the filtered projection for one order. Read-only.
func (uc *StatusUseCase) GetOrder(ctx context.Context, orderID string) (*dto.OrderStatusResponse, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return projectOrder(order), nil
}

// paymentConfirmed are the statuses the polling frontend treats as "paid".
var paymentConfirmed = []domain.OrderStatus{
	domain.OrderStatusPaid,
	domain.OrderStatusProcessing,
}

// GetPaymentStatus answers the frontend's payment poll. With an order id the
// answer is exact; with only a client id the most recently updated confirmed
// order wins. No confirmed order is a success=false body, not an error.
func (uc *StatusUseCase) GetPaymentStatus(ctx context.Context, orderID, clientID string) (*dto.PaymentStatusResponse, error) {
	if orderID != "" {
		order, err := uc.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return nil, err
		}

		for _, status := range paymentConfirmed {
			if order.Status == status {
				return &dto.PaymentStatusResponse{
					Success: true,
					Status:  string(order.Status),
					OrderID: order.OrderID,
					Message: "Payment confirmed",
				}, nil
			}
		}
		return &dto.PaymentStatusResponse{
			Success: false,
			Status:  string(order.Status),
			OrderID: order.OrderID,
			Message: "Payment not yet confirmed",
		}, nil
	}

	if clientID == "" {
		return nil, apperrors.NewValidationError("clientId or orderId is required", apperrors.ValidationDetail{
			Field:   "clientId",
			Message: "clientId is required when orderId is absent",
		})
	}

	order, err := uc.orderRepo.FindLatestByClientID(ctx, clientID, paymentConfirmed)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return &dto.PaymentStatusResponse{
				Success: false,
				Message: "No payment confirmation found",
			}, nil
		}
		return nil, err
	}

	return &dto.PaymentStatusResponse{
		Success: true,
		Status:  string(order.Status),
		OrderID: order.OrderID,
		Message: "Payment confirmed",
	}, nil
}

func projectOrder(order *domain.Order) *dto.OrderStatusResponse {
	return &dto.OrderStatusResponse{
		OrderID:        order.OrderID,
		Status:         string(order.Status),
		ShippingStatus: order.ShippingStatus,
		TotalAmount:    order.TotalAmount,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
}
