package store

import (
	"context"
	"strings"

	"hoteldesk/m/domain"
)

const salesColumns = `id, waiter_id, report_date, printed_receipts_count, settled_receipts_count, total_printed_amount, total_settled_amount`

type SalesFilter struct {
	WaiterID *int64
	From     string
	To       string
}

func GetSalesReport(ctx context.Context, q Queryer, waiterID int64, date string, lock bool) (domain.SalesReport, error) {
	var r domain.SalesReport
	err := get(ctx, q, &r, `SELECT `+salesColumns+` FROM sales_reports WHERE waiter_id = ? AND report_date = ?`+forUpdate(q, lock), waiterID, date)
	return r, err
}

func InsertSalesReport(ctx context.Context, q Queryer, r *domain.SalesReport) error {
	id, err := insertID(ctx, q, `INSERT INTO sales_reports (waiter_id, report_date, printed_receipts_count, settled_receipts_count, total_printed_amount, total_settled_amount) VALUES (?, ?, ?, ?, ?, ?)`,
		r.WaiterID, r.Date, r.PrintedReceiptsCount, r.SettledReceiptsCount, r.TotalPrintedAmount, r.TotalSettledAmount)
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

func UpdateSalesReport(ctx context.Context, q Queryer, r domain.SalesReport) error {
	return execOne(ctx, q, `UPDATE sales_reports SET printed_receipts_count = ?, settled_receipts_count = ?, total_printed_amount = ?, total_settled_amount = ? WHERE id = ?`,
		r.PrintedReceiptsCount, r.SettledReceiptsCount, r.TotalPrintedAmount, r.TotalSettledAmount, r.ID)
}

func ListSalesReports(ctx context.Context, q Queryer, f SalesFilter) ([]domain.SalesReport, error) {
	var (
		clauses []string
		args    []any
	)
	if f.WaiterID != nil {
		clauses = append(clauses, "waiter_id = ?")
		args = append(args, *f.WaiterID)
	}
	if f.From != "" {
		clauses = append(clauses, "report_date >= ?")
		args = append(args, f.From)
	}
	if f.To != "" {
		clauses = append(clauses, "report_date <= ?")
		args = append(args, f.To)
	}
	query := `SELECT ` + salesColumns + ` FROM sales_reports`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY report_date DESC, waiter_id"

	reports := []domain.SalesReport{}
	err := selectAll(ctx, q, &reports, query, args...)
	return reports, err
}
