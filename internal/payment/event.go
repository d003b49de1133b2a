package payment

import "encoding/json"

// Event types that confirm a completed payment. Older provider API versions
// delivered checkout.session.completed; newer ones payment_intent.succeeded.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventCheckoutComplete = "checkout.session.completed"
)

type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object EventObject `json:"object"`
	} `json:"data"`
}

type EventObject struct {
	ID            string            `json:"id"`
	Amount        int64             `json:"amount"`
	AmountTotal   int64             `json:"amount_total"`
	CustomerEmail string            `json:"customer_email"`
	Metadata      map[string]string `json:"metadata"`
}

func ParseEvent(payload []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (e *Event) IsPaymentSuccess() bool {
	return e.Type == EventPaymentSucceeded || e.Type == EventCheckoutComplete
}

// PaidAmount returns whichever amount field the event variant populated.
func (e *Event) PaidAmount() int64 {
	if e.Data.Object.AmountTotal > 0 {
		return e.Data.Object.AmountTotal
	}
	return e.Data.Object.Amount
}

func (e *Event) OrderID() string {
	return e.Data.Object.Metadata["order_id"]
}
