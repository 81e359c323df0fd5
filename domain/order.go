package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusServed    OrderStatus = "served"
	StatusCompleted OrderStatus = "completed"
)

var statusFlow = []OrderStatus{StatusPending, StatusPreparing, StatusServed, StatusCompleted}

func (s OrderStatus) Valid() bool {
	for _, st := range statusFlow {
		if st == s {
			return true
		}
	}
	return false
}

// Next returns the status that follows s. The second value is false for completed
// and unknown statuses.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, st := range statusFlow {
		if st == s && i+1 < len(statusFlow) {
			return statusFlow[i+1], true
		}
	}
	return "", false
}

// CanAdvanceTo reports whether moving from s to next is a single forward step.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	want, ok := s.Next()
	return ok && want == next
}

type Order struct {
	ID         int64           `db:"id" json:"id"`
	CustomerID int64           `db:"customer_id" json:"customer_id"`
	Status     OrderStatus     `db:"status" json:"status"`
	TotalPrice decimal.Decimal `db:"total_price" json:"total_price"`
	ReceiptID  *int64          `db:"receipt_id" json:"receipt_id,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`
	Items      []OrderLineItem `db:"-" json:"items"`
}

type OrderLineItem struct {
	ID           int64           `db:"id" json:"id"`
	OrderID      int64           `db:"order_id" json:"order_id"`
	MenuItemID   int64           `db:"menu_item_id" json:"menu_item_id"`
	MenuItemName string          `db:"menu_item_name" json:"menu_item"`
	Quantity     int64           `db:"quantity" json:"quantity"`
	UnitPrice    decimal.Decimal `db:"unit_price" json:"price_at_time_of_order"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

func (li OrderLineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))
}

// LineItemsTotal is the only way an order total is produced.
func LineItemsTotal(items []OrderLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.Subtotal())
	}
	return total
}
