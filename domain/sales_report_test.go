package domain

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestReceiptEvents(t *testing.T) {
	tests := []struct {
		name string
		prev *ReceiptState
		next ReceiptState
		want []SalesEvent
	}{
		{name: "created plain", prev: nil, next: ReceiptState{}, want: nil},
		{name: "created printed", prev: nil, next: ReceiptState{Printed: true}, want: []SalesEvent{EventPrinted}},
		{name: "created printed and settled", prev: nil, next: ReceiptState{Printed: true, Settled: true}, want: []SalesEvent{EventPrinted, EventSettled}},
		{name: "first print", prev: &ReceiptState{}, next: ReceiptState{Printed: true}, want: []SalesEvent{EventPrinted}},
		{name: "print again", prev: &ReceiptState{Printed: true}, next: ReceiptState{Printed: true}, want: nil},
		{name: "settle after print", prev: &ReceiptState{Printed: true}, next: ReceiptState{Printed: true, Settled: true}, want: []SalesEvent{EventSettled}},
		{name: "settle without print", prev: &ReceiptState{}, next: ReceiptState{Settled: true}, want: []SalesEvent{EventSettled}},
		{name: "unset is not an event", prev: &ReceiptState{Printed: true, Settled: true}, next: ReceiptState{}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReceiptEvents(tt.prev, tt.next)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReceiptEvents() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSalesReportApply(t *testing.T) {
	r := SalesReport{}
	amount := decimal.RequireFromString("25.00")

	r.Apply(EventPrinted, amount)
	r.Apply(EventSettled, amount)

	if r.PrintedReceiptsCount != 1 || r.SettledReceiptsCount != 1 {
		t.Fatalf("counts = %d/%d, want 1/1", r.PrintedReceiptsCount, r.SettledReceiptsCount)
	}
	if !r.TotalPrintedAmount.Equal(amount) {
		t.Fatalf("printed amount = %s, want 25", r.TotalPrintedAmount)
	}
	if !r.TotalSettledAmount.Equal(amount) {
		t.Fatalf("settled amount = %s, want 25", r.TotalSettledAmount)
	}
}
