package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderStatusCanAdvanceTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "pending to preparing", from: StatusPending, to: StatusPreparing, want: true},
		{name: "preparing to served", from: StatusPreparing, to: StatusServed, want: true},
		{name: "served to completed", from: StatusServed, to: StatusCompleted, want: true},
		{name: "skip a step", from: StatusPending, to: StatusServed, want: false},
		{name: "backwards", from: StatusServed, to: StatusPreparing, want: false},
		{name: "same status", from: StatusPending, to: StatusPending, want: false},
		{name: "past completed", from: StatusCompleted, to: StatusPending, want: false},
		{name: "unknown source", from: OrderStatus("lost"), to: StatusPreparing, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanAdvanceTo(tt.to); got != tt.want {
				t.Errorf("CanAdvanceTo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLineItemsTotal(t *testing.T) {
	items := []OrderLineItem{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("5.00")},
		{Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
		{Quantity: 3, UnitPrice: decimal.RequireFromString("0.10")},
	}
	if got := LineItemsTotal(items); !got.Equal(decimal.RequireFromString("15.30")) {
		t.Fatalf("LineItemsTotal() = %s, want 15.30", got)
	}
	if got := LineItemsTotal(nil); !got.IsZero() {
		t.Fatalf("LineItemsTotal(nil) = %s, want 0", got)
	}
}

func TestMenuItemDecrementStock(t *testing.T) {
	m := MenuItem{Quantity: 3}
	m.DecrementStock(2)
	if m.Quantity != 1 {
		t.Fatalf("quantity = %d, want 1", m.Quantity)
	}
	m.DecrementStock(5)
	if m.Quantity != 0 {
		t.Fatalf("quantity = %d, want 0", m.Quantity)
	}
}
