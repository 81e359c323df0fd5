package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID        int64           `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Category  string          `db:"category" json:"category"`
	Available bool            `db:"available" json:"available"`
	Quantity  int64           `db:"quantity" json:"quantity"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// DecrementStock lowers the stock by n, clamping at zero.
func (m *MenuItem) DecrementStock(n int64) {
	m.Quantity -= n
	if m.Quantity < 0 {
		m.Quantity = 0
	}
}
