package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"posterworks/internal/domain"
	apperrors "posterworks/internal/errors"
	"posterworks/internal/fulfillment"
)

type FulfillmentOrderRepository interface {
	FindByID(ctx context.Context, orderID string) (*domain.Order, error)
	SetFulfillmentOrder(ctx context.Context, orderID, fulfillmentOrderID string) error
	SetFulfillmentError(ctx context.Context, orderID, message string) error
}

type OrderItemReader interface {
	FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderItem, error)
}

type SKUResolver interface {
	FindByNames(ctx context.Context, names []string) (map[string]domain.ProductSKU, error)
}

type PartnerClient interface {
	CreateOrder(ctx context.Context, req fulfillment.OrderRequest) (*fulfillment.OrderResponse, error)
}

type FulfillmentUseCase struct {
	orderRepo        FulfillmentOrderRepository
	orderItemRepo    OrderItemReader
	skuRepo          SKUResolver
	partner          PartnerClient
	defaultSKU       string
	defaultSize      string
	allowPlaceholder bool
	logger           *zap.Logger
}

func NewFulfillmentUseCase(
	orderRepo FulfillmentOrderRepository,
	orderItemRepo OrderItemReader,
	skuRepo SKUResolver,
	partner PartnerClient,
	defaultSKU string,
	defaultSize string,
	allowPlaceholder bool,
	logger *zap.Logger,
) *FulfillmentUseCase {
	return &FulfillmentUseCase{
		orderRepo:        orderRepo,
		orderItemRepo:    orderItemRepo,
		skuRepo:          skuRepo,
		partner:          partner,
		defaultSKU:       defaultSKU,
		defaultSize:      defaultSize,
		allowPlaceholder: allowPlaceholder,
		logger:           logger,
	}
}

// Submit builds and submits the partner order for orderID. The local order id
// doubles as the partner idempotency reference, so a redelivered task maps
// onto the same partner order. Every failure, panics included, lands on the
// order record as status ERROR before the error is returned.
func (uc *FulfillmentUseCase) Submit(ctx context.Context, orderID string) (err error) {
	logger := uc.logger.With(zap.String("orderId", orderID))

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fulfillment submission panicked: %v", r)
			logger.Error("panic during fulfillment submission", zap.Any("panic", r))
			uc.recordError(ctx, orderID, err.Error(), logger)
		}
	}()

	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	items, err := uc.orderItemRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		uc.recordError(ctx, orderID, err.Error(), logger)
		return err
	}

	if len(items) == 0 {
		if !uc.allowPlaceholder {
			err := apperrors.NewValidationError("order has no items", apperrors.ValidationDetail{
				Field:   "items",
				Message: "at least one item is required for fulfillment",
			})
			uc.recordError(ctx, orderID, err.Error(), logger)
			return err
		}
		// Legacy orders predate item persistence; a single default poster
		// keeps them fulfillable when explicitly enabled.
		items = []domain.OrderItem{{Name: "poster", Quantity: 1}}
		logger.Warn("no items on order, using placeholder item")
	}

	if order.Address.IsEmpty() {
		err := apperrors.NewValidationError("order has no shipping address", apperrors.ValidationDetail{
			Field:   "address",
			Message: "shipping address is required for fulfillment",
		})
		uc.recordError(ctx, orderID, err.Error(), logger)
		return err
	}

	partnerItems, err := uc.mapItems(ctx, items)
	if err != nil {
		uc.recordError(ctx, orderID, err.Error(), logger)
		return err
	}

	req := fulfillment.OrderRequest{
		Reference:      orderID,
		ShippingMethod: order.ShippingMethod,
		Recipient: fulfillment.Recipient{
			Name:  recipientName(order),
			Email: order.Email,
			Address: fulfillment.Address{
				Line1:      order.Address.Line1,
				Line2:      order.Address.Line2,
				City:       order.Address.City,
				State:      order.Address.State,
				PostalCode: order.Address.PostalCode,
				Country:    order.Address.Country,
			},
		},
		Items: partnerItems,
	}

	resp, err := uc.partner.CreateOrder(ctx, req)
	if err != nil {
		uc.recordError(ctx, orderID, err.Error(), logger)
		return err
	}

	if err := uc.orderRepo.SetFulfillmentOrder(ctx, orderID, resp.Order.ID); err != nil {
		logger.Error("recording partner order id failed", zap.Error(err))
		return err
	}

	logger.Info("partner order created",
		zap.String("partnerOrderId", resp.Order.ID),
		zap.String("outcome", resp.Outcome),
	)

	return nil
}

func (uc *FulfillmentUseCase) mapItems(ctx context.Context, items []domain.OrderItem) ([]fulfillment.Item, error) {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	mappings, err := uc.skuRepo.FindByNames(ctx, names)
	if err != nil {
		return nil, err
	}

	partnerItems := make([]fulfillment.Item, len(items))
	for i, item := range items {
		sku := uc.defaultSKU
		size := uc.defaultSize
		if mapping, ok := mappings[item.Name]; ok {
			sku = mapping.SKU
			size = mapping.Size
		}
		partnerItems[i] = fulfillment.Item{
			SKU:      sku,
			Copies:   item.Quantity,
			Options:  map[string]string{"size": size},
			Metadata: map[string]string{"name": item.Name},
		}
	}

	return partnerItems, nil
}

// recordError persists the failure on the order. This is the last durable
// signal of what happened, so a write failure here is only loggable.
func (uc *FulfillmentUseCase) recordError(ctx context.Context, orderID, message string, logger *zap.Logger) {
	if err := uc.orderRepo.SetFulfillmentError(ctx, orderID, message); err != nil {
		logger.Error("recording fulfillment error failed", zap.Error(err))
	}
}

func recipientName(order *domain.Order) string {
	if order.Address.Name != "" {
		return order.Address.Name
	}
	return order.Email
}
