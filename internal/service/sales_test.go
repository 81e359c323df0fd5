package service

import (
	"context"
	"testing"
	"time"

	"hoteldesk/m/internal/store"
)

func TestTodayReportWithoutActivity(t *testing.T) {
	f := newFixture(t)

	report, err := f.svc.TodayReport(context.Background(), f.waiter.ID)
	if err != nil {
		t.Fatalf("TodayReport: %v", err)
	}
	if report.ID != 0 || report.PrintedReceiptsCount != 0 || !report.TotalPrintedAmount.IsZero() {
		t.Fatalf("report = %+v, want zero", report)
	}
	if report.Date != "2026-10-14" || report.WaiterID != f.waiter.ID {
		t.Fatalf("report key = %d/%s", report.WaiterID, report.Date)
	}
}

func TestReportsAreKeyedByWaiterDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	burger := f.menuItem(t, "Burger", "5.00", 100)
	other := f.user(t, "other-waiter", "waiter")

	printReceipt := func(waiterID int64, qty int64) {
		t.Helper()
		if _, err := f.svc.CreateReceipt(ctx, CreateReceiptParams{WaiterID: waiterID, OrderIDs: []int64{f.order(t, burger, qty).ID}, Printed: true}); err != nil {
			t.Fatalf("CreateReceipt: %v", err)
		}
	}

	printReceipt(f.waiter.ID, 1)
	printReceipt(f.waiter.ID, 2)
	printReceipt(other.ID, 4)
	f.now = f.now.Add(24 * time.Hour)
	printReceipt(f.waiter.ID, 3)

	today, err := f.svc.TodayReport(ctx, f.waiter.ID)
	if err != nil {
		t.Fatalf("TodayReport: %v", err)
	}
	if today.Date != "2026-10-15" || today.PrintedReceiptsCount != 1 {
		t.Fatalf("today = %+v, want one receipt on 2026-10-15", today)
	}
	assertAmount(t, "today printed", today.TotalPrintedAmount, "15.00")

	reports, err := f.svc.ListReports(ctx, store.SalesFilter{WaiterID: &f.waiter.ID})
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("reports = %d, want 2", len(reports))
	}
	yesterday := reports[1]
	if yesterday.Date != "2026-10-14" || yesterday.PrintedReceiptsCount != 2 {
		t.Fatalf("yesterday = %+v", yesterday)
	}
	assertAmount(t, "yesterday printed", yesterday.TotalPrintedAmount, "15.00")

	ranged, err := f.svc.ListReports(ctx, store.SalesFilter{From: "2026-10-14", To: "2026-10-14"})
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(ranged) != 2 {
		t.Fatalf("reports on 2026-10-14 = %d, want 2", len(ranged))
	}
}

func TestWaiterDayUsesLocation(t *testing.T) {
	f := newFixture(t)
	loc := time.FixedZone("UTC+3", 3*60*60)
	f.now = time.Date(2026, 10, 14, 22, 30, 0, 0, time.UTC)
	svc := New(f.db, f.svc.log, WithClock(func() time.Time { return f.now }), WithLocation(loc))

	report, err := svc.TodayReport(context.Background(), f.waiter.ID)
	if err != nil {
		t.Fatalf("TodayReport: %v", err)
	}
	if report.Date != "2026-10-15" {
		t.Fatalf("date = %s, want 2026-10-15", report.Date)
	}
}
