package domain

import "github.com/shopspring/decimal"

// DateLayout is the layout of SalesReport.Date.
const DateLayout = "2006-01-02"

type SalesEvent string

const (
	EventPrinted SalesEvent = "printed"
	EventSettled SalesEvent = "settled"
)

type SalesReport struct {
	ID                   int64           `db:"id" json:"id"`
	WaiterID             int64           `db:"waiter_id" json:"waiter_id"`
	Date                 string          `db:"report_date" json:"date"`
	PrintedReceiptsCount int64           `db:"printed_receipts_count" json:"printed_receipts_count"`
	SettledReceiptsCount int64           `db:"settled_receipts_count" json:"settled_receipts_count"`
	TotalPrintedAmount   decimal.Decimal `db:"total_printed_amount" json:"total_printed_amount"`
	TotalSettledAmount   decimal.Decimal `db:"total_settled_amount" json:"total_settled_amount"`
}

// ReceiptEvents compares two receipt states and returns the sales events implied by
// the transition. A nil prev means the receipt is being created.
func ReceiptEvents(prev *ReceiptState, next ReceiptState) []SalesEvent {
	var old ReceiptState
	if prev != nil {
		old = *prev
	}
	var events []SalesEvent
	if !old.Printed && next.Printed {
		events = append(events, EventPrinted)
	}
	if !old.Settled && next.Settled {
		events = append(events, EventSettled)
	}
	return events
}

// Apply adds the effect of a single event for a receipt worth amount.
// Settling does not touch the printed tallies.
func (r *SalesReport) Apply(event SalesEvent, amount decimal.Decimal) {
	switch event {
	case EventPrinted:
		r.PrintedReceiptsCount++
		r.TotalPrintedAmount = r.TotalPrintedAmount.Add(amount)
	case EventSettled:
		r.SettledReceiptsCount++
		r.TotalSettledAmount = r.TotalSettledAmount.Add(amount)
	}
}
