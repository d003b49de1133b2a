package dto

// ShippingCallback is the partner's outbound webhook body. The status
// vocabulary is the partner's own and is stored verbatim.
type ShippingCallback struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// FulfillmentTask is the queue message linking a paid order to the
// fulfillment worker.
type FulfillmentTask struct {
	OrderID string `json:"orderId"`
}
