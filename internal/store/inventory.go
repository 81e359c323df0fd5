package store

import (
	"context"

	"hoteldesk/m/domain"
)

const inventoryColumns = `id, item, quantity, threshold, created_at, updated_at`

func InsertInventoryItem(ctx context.Context, q Queryer, i *domain.InventoryItem) error {
	id, err := insertID(ctx, q, `INSERT INTO inventory (item, quantity, threshold, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		i.Item, i.Quantity, i.Threshold, i.CreatedAt, i.UpdatedAt)
	if err != nil {
		return err
	}
	i.ID = id
	return nil
}

func GetInventoryItem(ctx context.Context, q Queryer, id int64) (domain.InventoryItem, error) {
	var i domain.InventoryItem
	err := get(ctx, q, &i, `SELECT `+inventoryColumns+` FROM inventory WHERE id = ?`, id)
	return i, err
}

func GetInventoryItemByName(ctx context.Context, q Queryer, item string) (domain.InventoryItem, error) {
	var i domain.InventoryItem
	err := get(ctx, q, &i, `SELECT `+inventoryColumns+` FROM inventory WHERE item = ?`, item)
	return i, err
}

// ListInventory returns every record, or only those at or below threshold when lowOnly is set.
func ListInventory(ctx context.Context, q Queryer, lowOnly bool) ([]domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory`
	if lowOnly {
		query += " WHERE quantity <= threshold"
	}
	query += " ORDER BY item"

	items := []domain.InventoryItem{}
	err := selectAll(ctx, q, &items, query)
	return items, err
}

func UpdateInventoryItem(ctx context.Context, q Queryer, i domain.InventoryItem) error {
	return execOne(ctx, q, `UPDATE inventory SET quantity = ?, threshold = ?, updated_at = ? WHERE id = ?`,
		i.Quantity, i.Threshold, i.UpdatedAt, i.ID)
}

func DeleteInventoryItem(ctx context.Context, q Queryer, id int64) error {
	return execOne(ctx, q, `DELETE FROM inventory WHERE id = ?`, id)
}
