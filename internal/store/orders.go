package store

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"hoteldesk/m/domain"
)

const orderColumns = `id, customer_id, status, total_price, receipt_id, created_at, updated_at`

const lineItemSelect = `SELECT li.id, li.order_id, li.menu_item_id, COALESCE(m.name, '') AS menu_item_name, li.quantity, li.unit_price, li.created_at
                FROM order_line_items li
                LEFT JOIN menu_items m ON m.id = li.menu_item_id`

type OrderFilter struct {
	CustomerID     *int64
	ReceiptID      *int64
	Unconsolidated bool
}

func InsertOrder(ctx context.Context, q Queryer, o *domain.Order) error {
	id, err := insertID(ctx, q, `INSERT INTO orders (customer_id, status, total_price, receipt_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		o.CustomerID, string(o.Status), o.TotalPrice, o.ReceiptID, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}

// GetOrder loads the order row without its line items.
func GetOrder(ctx context.Context, q Queryer, id int64, lock bool) (domain.Order, error) {
	var o domain.Order
	err := get(ctx, q, &o, `SELECT `+orderColumns+` FROM orders WHERE id = ?`+forUpdate(q, lock), id)
	return o, err
}

// GetOrdersByIDs loads the listed orders ordered by id. Missing ids are simply absent.
func GetOrdersByIDs(ctx context.Context, q Queryer, ids []int64, lock bool) ([]domain.Order, error) {
	orders := []domain.Order{}
	if len(ids) == 0 {
		return orders, nil
	}
	query, args, err := sqlx.In(`SELECT `+orderColumns+` FROM orders WHERE id IN (?) ORDER BY id`+forUpdate(q, lock), ids)
	if err != nil {
		return nil, err
	}
	err = selectAll(ctx, q, &orders, query, args...)
	return orders, err
}

func ListOrders(ctx context.Context, q Queryer, f OrderFilter) ([]domain.Order, error) {
	var (
		clauses []string
		args    []any
	)
	if f.CustomerID != nil {
		clauses = append(clauses, "customer_id = ?")
		args = append(args, *f.CustomerID)
	}
	if f.ReceiptID != nil {
		clauses = append(clauses, "receipt_id = ?")
		args = append(args, *f.ReceiptID)
	}
	if f.Unconsolidated {
		clauses = append(clauses, "receipt_id IS NULL")
	}
	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id"

	orders := []domain.Order{}
	err := selectAll(ctx, q, &orders, query, args...)
	return orders, err
}

func UpdateOrderTotal(ctx context.Context, q Queryer, id int64, total decimal.Decimal, at time.Time) error {
	return execOne(ctx, q, `UPDATE orders SET total_price = ?, updated_at = ? WHERE id = ?`, total, at, id)
}

func UpdateOrderStatus(ctx context.Context, q Queryer, id int64, status domain.OrderStatus, at time.Time) error {
	return execOne(ctx, q, `UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`, string(status), at, id)
}

// SetOrdersReceipt points the listed orders at receiptID, or detaches them when it is nil.
func SetOrdersReceipt(ctx context.Context, q Queryer, ids []int64, receiptID *int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`UPDATE orders SET receipt_id = ?, updated_at = ? WHERE id IN (?)`, receiptID, at, ids)
	if err != nil {
		return err
	}
	_, err = exec(ctx, q, query, args...)
	return err
}

func InsertLineItem(ctx context.Context, q Queryer, li *domain.OrderLineItem) error {
	id, err := insertID(ctx, q, `INSERT INTO order_line_items (order_id, menu_item_id, quantity, unit_price, created_at) VALUES (?, ?, ?, ?, ?)`,
		li.OrderID, li.MenuItemID, li.Quantity, li.UnitPrice, li.CreatedAt)
	if err != nil {
		return err
	}
	li.ID = id
	return nil
}

func GetLineItem(ctx context.Context, q Queryer, id int64) (domain.OrderLineItem, error) {
	var li domain.OrderLineItem
	err := get(ctx, q, &li, lineItemSelect+` WHERE li.id = ?`, id)
	return li, err
}

func ListLineItems(ctx context.Context, q Queryer, orderID int64) ([]domain.OrderLineItem, error) {
	items := []domain.OrderLineItem{}
	err := selectAll(ctx, q, &items, lineItemSelect+` WHERE li.order_id = ? ORDER BY li.id`, orderID)
	return items, err
}

// ListLineItemsForOrders returns the line items of every listed order keyed by order id.
func ListLineItemsForOrders(ctx context.Context, q Queryer, orderIDs []int64) (map[int64][]domain.OrderLineItem, error) {
	byOrder := make(map[int64][]domain.OrderLineItem)
	if len(orderIDs) == 0 {
		return byOrder, nil
	}
	query, args, err := sqlx.In(lineItemSelect+` WHERE li.order_id IN (?) ORDER BY li.id`, orderIDs)
	if err != nil {
		return nil, err
	}
	var rows []domain.OrderLineItem
	if err := selectAll(ctx, q, &rows, query, args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		byOrder[row.OrderID] = append(byOrder[row.OrderID], row)
	}
	return byOrder, nil
}

func CountLineItems(ctx context.Context, q Queryer, orderID int64) (int64, error) {
	var n int64
	err := get(ctx, q, &n, `SELECT COUNT(*) FROM order_line_items WHERE order_id = ?`, orderID)
	return n, err
}

func DeleteLineItem(ctx context.Context, q Queryer, id int64) error {
	return execOne(ctx, q, `DELETE FROM order_line_items WHERE id = ?`, id)
}
