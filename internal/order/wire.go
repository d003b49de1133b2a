package order

import (
	"database/sql"

	"go.uber.org/zap"

	"posterworks/internal/catalog"
	"posterworks/internal/config"
	"posterworks/internal/email"
	"posterworks/internal/fulfillment"
	"posterworks/internal/order/controller"
	"posterworks/internal/order/repository"
	"posterworks/internal/order/usecase"
	"posterworks/internal/payment"
)

// Controllers groups the HTTP-facing pieces of the order module.
type Controllers struct {
	Checkout *controller.CheckoutController
	Webhook  *controller.WebhookController
	Status   *controller.StatusController
}

// NewModule wires the API-server side of the order module. The fulfillment
// worker and sweeper wire their own use cases in their entry points.
func NewModule(
	db *sql.DB,
	queue usecase.TaskPublisher,
	deduper usecase.EventDeduper,
	cfg *config.Config,
	logger *zap.Logger,
) *Controllers {
	orderRepo := repository.NewMySQLOrderRepository(db)
	orderItemRepo := repository.NewMySQLOrderItemRepository(db)

	paymentClient := payment.NewClient(cfg.Payment.APIKey, cfg.Payment.BaseURL)
	emailClient := email.NewClient(cfg.Email.APIKey, cfg.Email.BaseURL, cfg.Email.Sender)

	checkoutUC := usecase.NewCheckoutUseCase(
		orderRepo,
		orderItemRepo,
		paymentClient,
		cfg.Payment.Currency,
		cfg.Order.CheckoutExpiry,
		logger,
	)
	paymentWebhookUC := usecase.NewPaymentWebhookUseCase(
		orderRepo,
		queue,
		deduper,
		emailClient,
		cfg.Payment.WebhookSecret,
		cfg.Email.NotifyAddress,
		logger,
	)
	shippingWebhookUC := usecase.NewShippingWebhookUseCase(orderRepo, emailClient, logger)
	statusUC := usecase.NewStatusUseCase(orderRepo, logger)

	return &Controllers{
		Checkout: controller.NewCheckoutController(checkoutUC, logger),
		Webhook:  controller.NewWebhookController(paymentWebhookUC, shippingWebhookUC, logger),
		Status:   controller.NewStatusController(statusUC, logger),
	}
}

// NewFulfillmentUseCase wires the worker-side use case against the same
// repositories the API server uses.
func NewFulfillmentUseCase(db *sql.DB, cfg *config.Config, logger *zap.Logger) *usecase.FulfillmentUseCase {
	orderRepo := repository.NewMySQLOrderRepository(db)
	orderItemRepo := repository.NewMySQLOrderItemRepository(db)
	skuRepo := catalog.NewMySQLSKURepository(db)
	partner := fulfillment.NewClient(cfg.Fulfillment.APIKey, cfg.Fulfillment.BaseURL)

	return usecase.NewFulfillmentUseCase(
		orderRepo,
		orderItemRepo,
		skuRepo,
		partner,
		cfg.Fulfillment.DefaultSKU,
		cfg.Fulfillment.DefaultSize,
		cfg.Fulfillment.AllowPlaceholder,
		logger,
	)
}

// NewCleanupUseCase wires the sweeper-side use case.
func NewCleanupUseCase(db *sql.DB, logger *zap.Logger) *usecase.CleanupUseCase {
	return usecase.NewCleanupUseCase(repository.NewMySQLOrderRepository(db), logger)
}
