package dto

import "time"

// OrderStatusResponse is a filtered projection of the stored order. Internal
// correlation ids and error detail never leave the service.
type OrderStatusResponse struct {
	OrderID        string    `json:"orderId"`
	Status         string    `json:"status"`
	ShippingStatus string    `json:"shippingStatus,omitempty"`
	TotalAmount    int64     `json:"totalAmount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type PaymentStatusResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status,omitempty"`
	OrderID string `json:"orderId,omitempty"`
	Message string `json:"message"`
}
