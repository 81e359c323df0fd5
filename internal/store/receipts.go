package store

import (
	"context"

	"hoteldesk/m/domain"
)

const receiptColumns = `id, waiter_id, total_amount, printed, settled, printed_at, created_at`

type ReceiptFilter struct {
	WaiterID *int64
}

func InsertReceipt(ctx context.Context, q Queryer, r *domain.Receipt) error {
	id, err := insertID(ctx, q, `INSERT INTO receipts (waiter_id, total_amount, printed, settled, printed_at, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		r.WaiterID, r.TotalAmount, r.Printed, r.Settled, r.PrintedAt, r.CreatedAt)
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

func GetReceipt(ctx context.Context, q Queryer, id int64, lock bool) (domain.Receipt, error) {
	var r domain.Receipt
	err := get(ctx, q, &r, `SELECT `+receiptColumns+` FROM receipts WHERE id = ?`+forUpdate(q, lock), id)
	return r, err
}

// UpdateReceipt writes the derived total and the lifecycle flags.
func UpdateReceipt(ctx context.Context, q Queryer, r domain.Receipt) error {
	return execOne(ctx, q, `UPDATE receipts SET total_amount = ?, printed = ?, settled = ?, printed_at = ? WHERE id = ?`,
		r.TotalAmount, r.Printed, r.Settled, r.PrintedAt, r.ID)
}

func ListReceipts(ctx context.Context, q Queryer, f ReceiptFilter) ([]domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts`
	var args []any
	if f.WaiterID != nil {
		query += " WHERE waiter_id = ?"
		args = append(args, *f.WaiterID)
	}
	query += " ORDER BY id"

	receipts := []domain.Receipt{}
	err := selectAll(ctx, q, &receipts, query, args...)
	return receipts, err
}

func ReceiptOrderIDs(ctx context.Context, q Queryer, receiptID int64) ([]int64, error) {
	ids := []int64{}
	err := selectAll(ctx, q, &ids, `SELECT id FROM orders WHERE receipt_id = ? ORDER BY id`, receiptID)
	return ids, err
}
