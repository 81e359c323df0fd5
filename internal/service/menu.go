package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"hoteldesk/m/domain"
	"hoteldesk/m/internal/store"
)

type MenuItemInput struct {
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
	Available *bool           `json:"available"`
	Quantity  int64           `json:"quantity"`
}

func (in MenuItemInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return validationf("name is required")
	}
	if in.Price.IsNegative() {
		return validationf("price cannot be negative")
	}
	if in.Quantity < 0 {
		return validationf("quantity cannot be negative")
	}
	return nil
}

func (s *Service) CreateMenuItem(ctx context.Context, in MenuItemInput) (domain.MenuItem, error) {
	if err := in.validate(); err != nil {
		return domain.MenuItem{}, err
	}
	now := s.timestamp()
	m := domain.MenuItem{
		Name:      strings.TrimSpace(in.Name),
		Price:     in.Price,
		Category:  in.Category,
		Available: in.Available == nil || *in.Available,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := store.GetMenuItemByName(ctx, tx, m.Name); err == nil {
			return conflictf("menu item %q already exists", m.Name)
		} else if !store.IsNotFound(err) {
			return fmt.Errorf("unable to check menu item name: %w", err)
		}
		if err := store.InsertMenuItem(ctx, tx, &m); err != nil {
			return fmt.Errorf("unable to create menu item: %w", err)
		}
		return nil
	})
	return m, err
}

// UpdateMenuItem rewrites a menu item. Existing line items keep the price they were
// ordered at.
func (s *Service) UpdateMenuItem(ctx context.Context, id int64, in MenuItemInput) (domain.MenuItem, error) {
	if err := in.validate(); err != nil {
		return domain.MenuItem{}, err
	}
	var m domain.MenuItem
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		m, err = store.GetMenuItem(ctx, tx, id, true)
		if store.IsNotFound(err) {
			return notFoundf("menu item %d does not exist", id)
		}
		if err != nil {
			return fmt.Errorf("unable to load menu item: %w", err)
		}
		name := strings.TrimSpace(in.Name)
		other, err := store.GetMenuItemByName(ctx, tx, name)
		if err == nil && other.ID != id {
			return conflictf("menu item %q already exists", name)
		}
		if err != nil && !store.IsNotFound(err) {
			return fmt.Errorf("unable to check menu item name: %w", err)
		}

		m.Name = name
		m.Price = in.Price
		m.Category = in.Category
		if in.Available != nil {
			m.Available = *in.Available
		}
		m.Quantity = in.Quantity
		m.UpdatedAt = s.timestamp()
		if err := store.UpdateMenuItem(ctx, tx, m); err != nil {
			return fmt.Errorf("unable to update menu item: %w", err)
		}
		return nil
	})
	return m, err
}

func (s *Service) GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, error) {
	m, err := store.GetMenuItem(ctx, s.db, id, false)
	if store.IsNotFound(err) {
		return domain.MenuItem{}, notFoundf("menu item %d does not exist", id)
	}
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("unable to load menu item: %w", err)
	}
	return m, nil
}

func (s *Service) ListMenuItems(ctx context.Context, f store.MenuFilter) ([]domain.MenuItem, error) {
	items, err := store.ListMenuItems(ctx, s.db, f)
	if err != nil {
		return nil, fmt.Errorf("unable to list menu items: %w", err)
	}
	return items, nil
}

// DeleteMenuItem refuses to drop an item that line items still reference, since their
// orders would lose part of their history.
func (s *Service) DeleteMenuItem(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := store.GetMenuItem(ctx, tx, id, true); err != nil {
			if store.IsNotFound(err) {
				return notFoundf("menu item %d does not exist", id)
			}
			return fmt.Errorf("unable to load menu item: %w", err)
		}
		inUse, err := store.MenuItemInUse(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("unable to check menu item usage: %w", err)
		}
		if inUse {
			return conflictf("menu item %d is referenced by orders", id)
		}
		if err := store.DeleteMenuItem(ctx, tx, id); err != nil {
			return fmt.Errorf("unable to delete menu item: %w", err)
		}
		return nil
	})
}
