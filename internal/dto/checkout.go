package dto

type CheckoutItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CheckoutAddress struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type CheckoutRequest struct {
	Items          []CheckoutItem  `json:"items"`
	CustomerEmail  string          `json:"customerEmail"`
	ClientID       string          `json:"clientId"`
	ShippingMethod string          `json:"shippingMethod"`
	Address        CheckoutAddress `json:"address"`
}

type CheckoutResponse struct {
	ClientSecret string `json:"clientSecret"`
	OrderID      string `json:"orderId"`
	JobID        string `json:"jobId"`
	ClientID     string `json:"clientId"`
	TotalAmount  int64  `json:"totalAmount"`
}
