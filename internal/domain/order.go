package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusPaid       OrderStatus = "PAID"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusError      OrderStatus = "ERROR"
	OrderStatusExpired    OrderStatus = "EXPIRED"
)

// transitions is the single source of truth for the order lifecycle.
// ERROR -> PROCESSING allows an externally triggered fulfillment retry.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusPaid, OrderStatusExpired},
	OrderStatusPaid:       {OrderStatusProcessing, OrderStatusError},
	OrderStatusError:      {OrderStatusProcessing},
	OrderStatusProcessing: {},
	OrderStatusExpired:    {},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// statusOrder keeps queries derived from the transition table deterministic.
var statusOrder = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusProcessing,
	OrderStatusError,
	OrderStatusExpired,
}

// TransitionSources lists the statuses allowed to move to next. Conditional
// repository updates use it as their status guard.
func TransitionSources(next OrderStatus) []OrderStatus {
	var sources []OrderStatus
	for _, s := range statusOrder {
		if s.CanTransitionTo(next) {
			sources = append(sources, s)
		}
	}
	return sources
}

type Address struct {
	Name       string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

func (a Address) IsEmpty() bool {
	return a.Line1 == "" && a.City == "" && a.PostalCode == ""
}

type OrderItem struct {
	ID         uint
	OrderID    string
	Name       string
	UnitAmount int64
	Quantity   int
}

type Order struct {
	OrderID            string
	ClientID           string
	JobID              string
	Email              string
	Address            Address
	ShippingMethod     string
	TotalAmount        int64
	AmountPaid         int64
	Status             OrderStatus
	ShippingStatus     string
	PaymentIntentID    string
	FulfillmentOrderID string
	ErrorMessage       string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	ExpiresAt          time.Time
}

// TotalFor computes the order total in cents. It is computed exactly once,
// at checkout; the stored total is never recomputed afterwards.
func TotalFor(items []OrderItem, surcharge int64) int64 {
	var total int64
	for _, item := range items {
		total += item.UnitAmount * int64(item.Quantity)
	}
	return total + surcharge
}
