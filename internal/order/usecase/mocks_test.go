package usecase

import (
	"context"
	"time"

	"posterworks/internal/domain"
	"posterworks/internal/fulfillment"
	"posterworks/internal/payment"
)

type mockOrderRepo struct {
	InsertFunc               func(ctx context.Context, order *domain.Order) error
	FindByIDFunc             func(ctx context.Context, orderID string) (*domain.Order, error)
	FindLatestByClientIDFunc func(ctx context.Context, clientID string, statuses []domain.OrderStatus) (*domain.Order, error)
	MarkPaidFunc             func(ctx context.Context, orderID string, amountPaid int64, paymentIntentID string) error
	SetFulfillmentOrderFunc  func(ctx context.Context, orderID, fulfillmentOrderID string) error
	SetFulfillmentErrorFunc  func(ctx context.Context, orderID, message string) error
	UpdateShippingStatusFunc func(ctx context.Context, orderID, shippingStatus string) error
	FindExpiredPendingFunc   func(ctx context.Context, now time.Time) ([]string, error)
	MarkExpiredFunc          func(ctx context.Context, orderID string, now time.Time) (bool, error)
}

func (m *mockOrderRepo) Insert(ctx context.Context, order *domain.Order) error {
	return m.InsertFunc(ctx, order)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, orderID)
}

func (m *mockOrderRepo) FindLatestByClientID(ctx context.Context, clientID string, statuses []domain.OrderStatus) (*domain.Order, error) {
	return m.FindLatestByClientIDFunc(ctx, clientID, statuses)
}

func (m *mockOrderRepo) MarkPaid(ctx context.Context, orderID string, amountPaid int64, paymentIntentID string) error {
	return m.MarkPaidFunc(ctx, orderID, amountPaid, paymentIntentID)
}

func (m *mockOrderRepo) SetFulfillmentOrder(ctx context.Context, orderID, fulfillmentOrderID string) error {
	return m.SetFulfillmentOrderFunc(ctx, orderID, fulfillmentOrderID)
}

func (m *mockOrderRepo) SetFulfillmentError(ctx context.Context, orderID, message string) error {
	return m.SetFulfillmentErrorFunc(ctx, orderID, message)
}

func (m *mockOrderRepo) UpdateShippingStatus(ctx context.Context, orderID, shippingStatus string) error {
	return m.UpdateShippingStatusFunc(ctx, orderID, shippingStatus)
}

func (m *mockOrderRepo) FindExpiredPending(ctx context.Context, now time.Time) ([]string, error) {
	return m.FindExpiredPendingFunc(ctx, now)
}

func (m *mockOrderRepo) MarkExpired(ctx context.Context, orderID string, now time.Time) (bool, error) {
	return m.MarkExpiredFunc(ctx, orderID, now)
}

type mockOrderItemRepo struct {
	InsertAllFunc     func(ctx context.Context, orderID string, items []domain.OrderItem) error
	FindByOrderIDFunc func(ctx context.Context, orderID string) ([]domain.OrderItem, error)
}

func (m *mockOrderItemRepo) InsertAll(ctx context.Context, orderID string, items []domain.OrderItem) error {
	return m.InsertAllFunc(ctx, orderID, items)
}

func (m *mockOrderItemRepo) FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	return m.FindByOrderIDFunc(ctx, orderID)
}

type mockPaymentClient struct {
	CreateIntentFunc func(ctx context.Context, req payment.CreateIntentRequest) (*payment.Intent, error)
}

func (m *mockPaymentClient) CreateIntent(ctx context.Context, req payment.CreateIntentRequest) (*payment.Intent, error) {
	return m.CreateIntentFunc(ctx, req)
}

type mockPartnerClient struct {
	CreateOrderFunc func(ctx context.Context, req fulfillment.OrderRequest) (*fulfillment.OrderResponse, error)
}

func (m *mockPartnerClient) CreateOrder(ctx context.Context, req fulfillment.OrderRequest) (*fulfillment.OrderResponse, error) {
	return m.CreateOrderFunc(ctx, req)
}

type mockSKURepo struct {
	FindByNamesFunc func(ctx context.Context, names []string) (map[string]domain.ProductSKU, error)
}

func (m *mockSKURepo) FindByNames(ctx context.Context, names []string) (map[string]domain.ProductSKU, error) {
	return m.FindByNamesFunc(ctx, names)
}

type mockQueue struct {
	PublishFunc func(data []byte) (string, error)
}

func (m *mockQueue) Publish(data []byte) (string, error) {
	return m.PublishFunc(data)
}

type mockDeduper struct {
	MarkProcessedFunc func(ctx context.Context, eventID string) (bool, error)
}

func (m *mockDeduper) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	return m.MarkProcessedFunc(ctx, eventID)
}

type mockEmailClient struct {
	SendFunc func(ctx context.Context, to, subject, body string) error
}

func (m *mockEmailClient) Send(ctx context.Context, to, subject, body string) error {
	return m.SendFunc(ctx, to, subject, body)
}
