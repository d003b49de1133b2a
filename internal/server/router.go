package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"posterworks/internal/order"
)

func NewRouter(ctrl *order.Controllers, allowedOrigins []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Webhook-Signature"},
		MaxAge:           86400,
		AllowCredentials: false,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/checkout", ctrl.Checkout.HandleCheckout)
		r.Post("/webhooks/payment", ctrl.Webhook.HandlePaymentWebhook)
		r.Post("/webhooks/fulfillment", ctrl.Webhook.HandleShippingWebhook)
		r.Get("/orders/{orderID}", ctrl.Status.HandleOrderStatus)
		r.Get("/payment-status", ctrl.Status.HandlePaymentStatus)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
