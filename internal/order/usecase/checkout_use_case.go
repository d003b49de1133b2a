package usecase

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"posterworks/internal/domain"
	"posterworks/internal/dto"
	apperrors "posterworks/internal/errors"
	"posterworks/internal/payment"
)

type OrderWriter interface {
	Insert(ctx context.Context, order *domain.Order) error
}

type OrderItemWriter interface {
	InsertAll(ctx context.Context, orderID string, items []domain.OrderItem) error
}

type PaymentIntentCreator interface {
	CreateIntent(ctx context.Context, req payment.CreateIntentRequest) (*payment.Intent, error)
}

type CheckoutUseCase struct {
	orderRepo     OrderWriter
	orderItemRepo OrderItemWriter
	paymentClient PaymentIntentCreator
	currency      string
	expiry        time.Duration
	logger        *zap.Logger
}

func NewCheckoutUseCase(
	orderRepo OrderWriter,
	orderItemRepo OrderItemWriter,
	paymentClient PaymentIntentCreator,
	currency string,
	expiry time.Duration,
	logger *zap.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		paymentClient: paymentClient,
		currency:      currency,
		expiry:        expiry,
		logger:        logger,
	}
}

// Checkout validates the cart, persists a PENDING order and requests a
// payment secret. The job id is the payment idempotency key: a retried
// checkout request with the same job id never charges twice.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.NewValidationError("items must not be empty", apperrors.ValidationDetail{
			Field:   "items",
			Message: "at least one item is required",
		})
	}
	if req.CustomerEmail == "" {
		return nil, apperrors.NewValidationError("customerEmail is required", apperrors.ValidationDetail{
			Field:   "customerEmail",
			Message: "customerEmail is required",
		})
	}

	items := make([]domain.OrderItem, len(req.Items))
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, apperrors.NewValidationError("invalid item quantity", apperrors.ValidationDetail{
				Field:   "items",
				Message: "quantity must be positive",
			})
		}
		if item.Price < 0 {
			return nil, apperrors.NewValidationError("invalid item price", apperrors.ValidationDetail{
				Field:   "items",
				Message: "price must be non-negative",
			})
		}
		items[i] = domain.OrderItem{
			Name:       item.Name,
			UnitAmount: toCents(item.Price),
			Quantity:   item.Quantity,
		}
	}

	total := domain.TotalFor(items, domain.SurchargeFor(req.ShippingMethod))

	orderID := uuid.New().String()
	jobID := uuid.New().String()
	clientID := req.ClientID
	if clientID == "" {
		clientID = uuid.New().String()
	}

	now := time.Now().UTC()
	order := &domain.Order{
		OrderID:  orderID,
		ClientID: clientID,
		JobID:    jobID,
		Email:    req.CustomerEmail,
		Address: domain.Address{
			Name:       req.Address.Name,
			Line1:      req.Address.Line1,
			Line2:      req.Address.Line2,
			City:       req.Address.City,
			State:      req.Address.State,
			PostalCode: req.Address.PostalCode,
			Country:    req.Address.Country,
		},
		ShippingMethod: req.ShippingMethod,
		TotalAmount:    total,
		Status:         domain.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
		ExpiresAt:      now.Add(uc.expiry),
	}

	// A failed record write is logged but does not abort checkout; the
	// payment secret is still returned so the customer can pay. The webhook
	// path synthesizes the record if it is missing.
	persisted := true
	if err := uc.orderRepo.Insert(ctx, order); err != nil {
		persisted = false
		uc.logger.Error("persisting order failed, continuing with payment",
			zap.String("orderId", orderID), zap.Error(err))
	} else if err := uc.orderItemRepo.InsertAll(ctx, orderID, items); err != nil {
		uc.logger.Error("persisting order items failed, continuing with payment",
			zap.String("orderId", orderID), zap.Error(err))
	}

	intent, err := uc.paymentClient.CreateIntent(ctx, payment.CreateIntentRequest{
		AmountCents:    total,
		Currency:       uc.currency,
		CustomerEmail:  req.CustomerEmail,
		OrderID:        orderID,
		IdempotencyKey: jobID,
	})
	if err != nil {
		uc.logger.Error("creating payment intent failed",
			zap.String("orderId", orderID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("checkout created",
		zap.String("orderId", orderID),
		zap.String("jobId", jobID),
		zap.Int64("totalAmount", total),
		zap.Bool("persisted", persisted),
	)

	return &dto.CheckoutResponse{
		ClientSecret: intent.ClientSecret,
		OrderID:      orderID,
		JobID:        jobID,
		ClientID:     clientID,
		TotalAmount:  total,
	}, nil
}

// toCents converts a major-unit price to integer cents, rounding to absorb
// binary float noise (24.99 -> 2499, never 2498).
func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
