package domain

import "testing"

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to paid", OrderStatusPending, OrderStatusPaid, true},
		{"pending to expired", OrderStatusPending, OrderStatusExpired, true},
		{"pending to processing", OrderStatusPending, OrderStatusProcessing, false},
		{"paid to processing", OrderStatusPaid, OrderStatusProcessing, true},
		{"paid to error", OrderStatusPaid, OrderStatusError, true},
		{"paid to expired", OrderStatusPaid, OrderStatusExpired, false},
		{"error to processing", OrderStatusError, OrderStatusProcessing, true},
		{"error to paid", OrderStatusError, OrderStatusPaid, false},
		{"expired to paid", OrderStatusExpired, OrderStatusPaid, false},
		{"processing to error", OrderStatusProcessing, OrderStatusError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	if !OrderStatusProcessing.IsTerminal() {
		t.Errorf("PROCESSING should be terminal")
	}
	if !OrderStatusExpired.IsTerminal() {
		t.Errorf("EXPIRED should be terminal")
	}
	if OrderStatusPending.IsTerminal() {
		t.Errorf("PENDING should not be terminal")
	}
	if OrderStatusError.IsTerminal() {
		t.Errorf("ERROR should not be terminal, retry is allowed")
	}
}

func TestTransitionSources(t *testing.T) {
	tests := []struct {
		name string
		next OrderStatus
		want []OrderStatus
	}{
		{"paid from pending only", OrderStatusPaid, []OrderStatus{OrderStatusPending}},
		{"processing from paid or error", OrderStatusProcessing, []OrderStatus{OrderStatusPaid, OrderStatusError}},
		{"error from paid only", OrderStatusError, []OrderStatus{OrderStatusPaid}},
		{"expired from pending only", OrderStatusExpired, []OrderStatus{OrderStatusPending}},
		{"nothing reaches pending", OrderStatusPending, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TransitionSources(tt.next)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestTotalFor(t *testing.T) {
	items := []OrderItem{
		{Name: "sunset poster", UnitAmount: 2500, Quantity: 2},
		{Name: "city map", UnitAmount: 1800, Quantity: 1},
	}

	if got := TotalFor(items, 0); got != 6800 {
		t.Errorf("expected 6800, got %d", got)
	}

	if got := TotalFor(items, 580); got != 7380 {
		t.Errorf("expected 7380 with surcharge, got %d", got)
	}

	if got := TotalFor(nil, 580); got != 580 {
		t.Errorf("expected 580 for empty items, got %d", got)
	}
}

func TestSurchargeFor(t *testing.T) {
	if got := SurchargeFor("STANDARD"); got != 580 {
		t.Errorf("expected 580 for STANDARD, got %d", got)
	}
	if got := SurchargeFor("EXPRESS"); got != 1250 {
		t.Errorf("expected 1250 for EXPRESS, got %d", got)
	}
	if got := SurchargeFor("PRIORITY"); got != 2495 {
		t.Errorf("expected 2495 for PRIORITY, got %d", got)
	}
	if got := SurchargeFor(""); got != 0 {
		t.Errorf("expected 0 for absent method, got %d", got)
	}
	if got := SurchargeFor("OVERNIGHT"); got != 0 {
		t.Errorf("expected 0 for unrecognized method, got %d", got)
	}
}
