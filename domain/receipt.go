package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Receipt struct {
	ID          int64           `db:"id" json:"id"`
	WaiterID    *int64          `db:"waiter_id" json:"waiter_id"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`
	Printed     bool            `db:"printed" json:"printed"`
	Settled     bool            `db:"settled" json:"settled"`
	PrintedAt   *time.Time      `db:"printed_at" json:"printed_at"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	OrderIDs    []int64         `db:"-" json:"orders"`
}

// ReceiptState is the part of a receipt that sales aggregation reacts to.
type ReceiptState struct {
	Printed bool
	Settled bool
}

func (r Receipt) State() ReceiptState {
	return ReceiptState{Printed: r.Printed, Settled: r.Settled}
}

// OrdersTotal sums the totals of the orders on a receipt.
func OrdersTotal(orders []Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalPrice)
	}
	return total
}
