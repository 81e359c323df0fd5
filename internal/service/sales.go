package service

import (
	"context"
	"fmt"
	"log/slog"

	"hoteldesk/m/domain"
	"hoteldesk/m/internal/store"
)

// applySalesEvents adds the delta of the observed transition to the waiter's report for
// today, creating the row on first use. It never recounts receipts.
func (s *Service) applySalesEvents(ctx context.Context, q store.Queryer, r domain.Receipt, events []domain.SalesEvent) error {
	if len(events) == 0 || r.WaiterID == nil {
		return nil
	}
	date := s.today()
	report, err := store.GetSalesReport(ctx, q, *r.WaiterID, date, true)
	isNew := store.IsNotFound(err)
	if err != nil && !isNew {
		return fmt.Errorf("unable to load sales report: %w", err)
	}
	if isNew {
		report = domain.SalesReport{WaiterID: *r.WaiterID, Date: date}
	}

	for _, ev := range events {
		report.Apply(ev, r.TotalAmount)
	}

	if isNew {
		err = store.InsertSalesReport(ctx, q, &report)
	} else {
		err = store.UpdateSalesReport(ctx, q, report)
	}
	if err != nil {
		return fmt.Errorf("unable to save sales report: %w", err)
	}
	s.log.Debug("sales_report_updated", "", "sales report adjusted",
		slog.Int64("waiter_id", report.WaiterID), slog.String("date", date), slog.Int("events", len(events)))
	return nil
}

// TodayReport returns the waiter's report for today. A waiter with no activity gets a
// zero report; nothing is stored for it.
func (s *Service) TodayReport(ctx context.Context, waiterID int64) (domain.SalesReport, error) {
	date := s.today()
	report, err := store.GetSalesReport(ctx, s.db, waiterID, date, false)
	if store.IsNotFound(err) {
		return domain.SalesReport{WaiterID: waiterID, Date: date}, nil
	}
	if err != nil {
		return domain.SalesReport{}, fmt.Errorf("unable to load sales report: %w", err)
	}
	return report, nil
}

func (s *Service) ListReports(ctx context.Context, f store.SalesFilter) ([]domain.SalesReport, error) {
	reports, err := store.ListSalesReports(ctx, s.db, f)
	if err != nil {
		return nil, fmt.Errorf("unable to list sales reports: %w", err)
	}
	return reports, nil
}
