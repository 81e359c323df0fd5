package service

import (
	"context"
	"fmt"
	"strings"

	"hoteldesk/m/domain"
	"hoteldesk/m/internal/store"
)

type InventoryInput struct {
	Item      string `json:"item"`
	Quantity  int64  `json:"quantity"`
	Threshold int64  `json:"threshold"`
}

func (s *Service) CreateInventoryItem(ctx context.Context, in InventoryInput) (domain.InventoryItem, error) {
	item := strings.TrimSpace(in.Item)
	if item == "" {
		return domain.InventoryItem{}, validationf("item is required")
	}
	if in.Quantity < 0 || in.Threshold < 0 {
		return domain.InventoryItem{}, validationf("quantity and threshold cannot be negative")
	}
	if _, err := store.GetInventoryItemByName(ctx, s.db, item); err == nil {
		return domain.InventoryItem{}, conflictf("inventory item %q already exists", item)
	} else if !store.IsNotFound(err) {
		return domain.InventoryItem{}, fmt.Errorf("unable to check inventory item: %w", err)
	}

	now := s.timestamp()
	i := domain.InventoryItem{Item: item, Quantity: in.Quantity, Threshold: in.Threshold, CreatedAt: now, UpdatedAt: now}
	if err := store.InsertInventoryItem(ctx, s.db, &i); err != nil {
		return domain.InventoryItem{}, fmt.Errorf("unable to create inventory item: %w", err)
	}
	return i, nil
}

// UpdateInventoryItem changes quantity and threshold. The item name is fixed once created.
func (s *Service) UpdateInventoryItem(ctx context.Context, id int64, in InventoryInput) (domain.InventoryItem, error) {
	if in.Quantity < 0 || in.Threshold < 0 {
		return domain.InventoryItem{}, validationf("quantity and threshold cannot be negative")
	}
	i, err := s.GetInventoryItem(ctx, id)
	if err != nil {
		return domain.InventoryItem{}, err
	}
	i.Quantity = in.Quantity
	i.Threshold = in.Threshold
	i.UpdatedAt = s.timestamp()
	if err := store.UpdateInventoryItem(ctx, s.db, i); err != nil {
		return domain.InventoryItem{}, fmt.Errorf("unable to update inventory item: %w", err)
	}
	return i, nil
}

func (s *Service) GetInventoryItem(ctx context.Context, id int64) (domain.InventoryItem, error) {
	i, err := store.GetInventoryItem(ctx, s.db, id)
	if store.IsNotFound(err) {
		return domain.InventoryItem{}, notFoundf("inventory item %d does not exist", id)
	}
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("unable to load inventory item: %w", err)
	}
	return i, nil
}

func (s *Service) ListInventory(ctx context.Context, lowOnly bool) ([]domain.InventoryItem, error) {
	items, err := store.ListInventory(ctx, s.db, lowOnly)
	if err != nil {
		return nil, fmt.Errorf("unable to list inventory: %w", err)
	}
	return items, nil
}

func (s *Service) DeleteInventoryItem(ctx context.Context, id int64) error {
	err := store.DeleteInventoryItem(ctx, s.db, id)
	if store.IsNotFound(err) {
		return notFoundf("inventory item %d does not exist", id)
	}
	if err != nil {
		return fmt.Errorf("unable to delete inventory item: %w", err)
	}
	return nil
}
