package store

import (
	"context"
	"strings"

	"hoteldesk/m/domain"
)

const menuColumns = `id, name, price, category, available, quantity, created_at, updated_at`

type MenuFilter struct {
	Category      string
	AvailableOnly bool
}

func InsertMenuItem(ctx context.Context, q Queryer, m *domain.MenuItem) error {
	id, err := insertID(ctx, q, `INSERT INTO menu_items (name, price, category, available, quantity, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.Name, m.Price, m.Category, m.Available, m.Quantity, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

func UpdateMenuItem(ctx context.Context, q Queryer, m domain.MenuItem) error {
	return execOne(ctx, q, `UPDATE menu_items SET name = ?, price = ?, category = ?, available = ?, quantity = ?, updated_at = ? WHERE id = ?`,
		m.Name, m.Price, m.Category, m.Available, m.Quantity, m.UpdatedAt, m.ID)
}

// GetMenuItem loads one menu item; lock takes a row lock where the driver supports it.
func GetMenuItem(ctx context.Context, q Queryer, id int64, lock bool) (domain.MenuItem, error) {
	var m domain.MenuItem
	err := get(ctx, q, &m, `SELECT `+menuColumns+` FROM menu_items WHERE id = ?`+forUpdate(q, lock), id)
	return m, err
}

func GetMenuItemByName(ctx context.Context, q Queryer, name string) (domain.MenuItem, error) {
	var m domain.MenuItem
	err := get(ctx, q, &m, `SELECT `+menuColumns+` FROM menu_items WHERE name = ?`, name)
	return m, err
}

func ListMenuItems(ctx context.Context, q Queryer, f MenuFilter) ([]domain.MenuItem, error) {
	var (
		clauses []string
		args    []any
	)
	if f.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, f.Category)
	}
	if f.AvailableOnly {
		clauses = append(clauses, "available = ?")
		args = append(args, true)
	}
	query := `SELECT ` + menuColumns + ` FROM menu_items`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY name"

	items := []domain.MenuItem{}
	err := selectAll(ctx, q, &items, query, args...)
	return items, err
}

func SetMenuItemQuantity(ctx context.Context, q Queryer, m domain.MenuItem) error {
	return execOne(ctx, q, `UPDATE menu_items SET quantity = ?, updated_at = ? WHERE id = ?`, m.Quantity, m.UpdatedAt, m.ID)
}

func MenuItemInUse(ctx context.Context, q Queryer, id int64) (bool, error) {
	var n int64
	err := get(ctx, q, &n, `SELECT COUNT(*) FROM order_line_items WHERE menu_item_id = ?`, id)
	return n > 0, err
}

func DeleteMenuItem(ctx context.Context, q Queryer, id int64) error {
	return execOne(ctx, q, `DELETE FROM menu_items WHERE id = ?`, id)
}
