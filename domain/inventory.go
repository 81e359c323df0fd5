package domain

import "time"

// InventoryItem is a raw stock record (ingredients, supplies) tracked apart from the menu.
type InventoryItem struct {
	ID        int64     `db:"id" json:"id"`
	Item      string    `db:"item" json:"item"`
	Quantity  int64     `db:"quantity" json:"quantity"`
	Threshold int64     `db:"threshold" json:"threshold"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (i InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.Threshold
}
