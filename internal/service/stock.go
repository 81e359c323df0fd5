package service

import (
	"context"
	"fmt"
	"log/slog"

	"hoteldesk/m/domain"
	"hoteldesk/m/internal/store"
)

// decrementStock runs once per newly created line item. Removing or deleting a line
// item never gives the stock back.
func (s *Service) decrementStock(ctx context.Context, q store.Queryer, menu *domain.MenuItem, qty int64) error {
	before := menu.Quantity
	menu.DecrementStock(qty)
	menu.UpdatedAt = s.timestamp()
	if err := store.SetMenuItemQuantity(ctx, q, *menu); err != nil {
		return fmt.Errorf("unable to update stock for menu item %d: %w", menu.ID, err)
	}
	if before-qty < 0 {
		s.log.Debug("stock_clamped", "", "menu item stock clamped at zero",
			slog.Int64("menu_item_id", menu.ID), slog.Int64("requested", qty), slog.Int64("available", before))
	}
	return nil
}
