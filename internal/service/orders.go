package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"hoteldesk/m/domain"
	"hoteldesk/m/internal/store"
)

type LineItemInput struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int64 `json:"quantity"`
}

// CreateOrder places a pending order for customerID holding the given items. A zero
// quantity means one.
func (s *Service) CreateOrder(ctx context.Context, customerID int64, items []LineItemInput) (domain.Order, error) {
	if len(items) == 0 {
		return domain.Order{}, validationf("at least one item is required")
	}

	var orderID int64
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := store.GetUser(ctx, tx, customerID); err != nil {
			if store.IsNotFound(err) {
				return validationf("customer %d does not exist", customerID)
			}
			return fmt.Errorf("unable to load customer: %w", err)
		}

		now := s.timestamp()
		order := domain.Order{
			CustomerID: customerID,
			Status:     domain.StatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := store.InsertOrder(ctx, tx, &order); err != nil {
			return fmt.Errorf("unable to create order: %w", err)
		}
		for _, item := range items {
			qty := item.Quantity
			if qty == 0 {
				qty = 1
			}
			if err := s.addLineItem(ctx, tx, &order, item.MenuItemID, qty); err != nil {
				return err
			}
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.log.Info("order_created", "", "order placed", slog.Int64("order_id", orderID), slog.Int64("customer_id", customerID))
	return s.GetOrder(ctx, orderID)
}

// AddLineItem adds a menu item to a pending order.
func (s *Service) AddLineItem(ctx context.Context, orderID, menuItemID, quantity int64) (domain.Order, error) {
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		order, err := s.lockPendingOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		return s.addLineItem(ctx, tx, &order, menuItemID, quantity)
	})
	if err != nil {
		return domain.Order{}, err
	}
	return s.GetOrder(ctx, orderID)
}

// addLineItem snapshots the menu price, stores the line item, recomputes the order
// total and then decrements stock.
func (s *Service) addLineItem(ctx context.Context, tx *sqlx.Tx, order *domain.Order, menuItemID, quantity int64) error {
	if quantity < 1 {
		return validationf("quantity must be at least 1")
	}
	menu, err := store.GetMenuItem(ctx, tx, menuItemID, true)
	if store.IsNotFound(err) {
		return validationf("menu item %d does not exist", menuItemID)
	}
	if err != nil {
		return fmt.Errorf("unable to load menu item: %w", err)
	}
	if !menu.Available {
		return validationf("menu item %q is not available", menu.Name)
	}

	li := domain.OrderLineItem{
		OrderID:    order.ID,
		MenuItemID: menu.ID,
		Quantity:   quantity,
		UnitPrice:  menu.Price,
		CreatedAt:  s.timestamp(),
	}
	if err := store.InsertLineItem(ctx, tx, &li); err != nil {
		return fmt.Errorf("unable to add line item: %w", err)
	}
	if err := s.recomputeOrderTotal(ctx, tx, order); err != nil {
		return err
	}
	return s.decrementStock(ctx, tx, &menu, quantity)
}

// RemoveLineItem removes one line item from a pending order. The last line item of an
// order cannot be removed this way.
func (s *Service) RemoveLineItem(ctx context.Context, orderID, lineItemID int64) (domain.Order, error) {
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		order, err := s.lockPendingOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		li, err := store.GetLineItem(ctx, tx, lineItemID)
		if store.IsNotFound(err) || (err == nil && li.OrderID != orderID) {
			return notFoundf("line item %d is not on order %d", lineItemID, orderID)
		}
		if err != nil {
			return fmt.Errorf("unable to load line item: %w", err)
		}
		n, err := store.CountLineItems(ctx, tx, orderID)
		if err != nil {
			return fmt.Errorf("unable to count line items: %w", err)
		}
		if n <= 1 {
			return conflictf("order %d must keep at least one item", orderID)
		}
		if err := store.DeleteLineItem(ctx, tx, lineItemID); err != nil {
			return fmt.Errorf("unable to remove line item: %w", err)
		}
		return s.recomputeOrderTotal(ctx, tx, &order)
	})
	if err != nil {
		return domain.Order{}, err
	}
	return s.GetOrder(ctx, orderID)
}

// DeleteLineItem is the unguarded administrative deletion path: it ignores order status
// and may leave an order with no items. Totals are still recomputed.
func (s *Service) DeleteLineItem(ctx context.Context, lineItemID int64) (domain.Order, error) {
	var orderID int64
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		li, err := store.GetLineItem(ctx, tx, lineItemID)
		if store.IsNotFound(err) {
			return notFoundf("line item %d does not exist", lineItemID)
		}
		if err != nil {
			return fmt.Errorf("unable to load line item: %w", err)
		}
		orderID = li.OrderID
		order, err := store.GetOrder(ctx, tx, orderID, true)
		if err != nil {
			return fmt.Errorf("unable to load order: %w", err)
		}
		if err := store.DeleteLineItem(ctx, tx, lineItemID); err != nil {
			return fmt.Errorf("unable to delete line item: %w", err)
		}
		return s.recomputeOrderTotal(ctx, tx, &order)
	})
	if err != nil {
		return domain.Order{}, err
	}
	return s.GetOrder(ctx, orderID)
}

// recomputeOrderTotal is the single code path that writes Order.total_price. When the
// order sits on a receipt the receipt total follows.
func (s *Service) recomputeOrderTotal(ctx context.Context, q store.Queryer, order *domain.Order) error {
	items, err := store.ListLineItems(ctx, q, order.ID)
	if err != nil {
		return fmt.Errorf("unable to load line items: %w", err)
	}
	order.TotalPrice = domain.LineItemsTotal(items)
	order.UpdatedAt = s.timestamp()
	order.Items = items
	if err := store.UpdateOrderTotal(ctx, q, order.ID, order.TotalPrice, order.UpdatedAt); err != nil {
		return fmt.Errorf("unable to update order total: %w", err)
	}
	if order.ReceiptID != nil {
		if _, err := s.recomputeReceiptTotal(ctx, q, *order.ReceiptID); err != nil {
			return err
		}
	}
	return nil
}

// UpdateStatus moves an order one step along pending → preparing → served → completed.
func (s *Service) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, validationf("unknown order status %q", status)
	}
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		order, err := s.lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if !order.Status.CanAdvanceTo(status) {
			return conflictf("order %d cannot move from %s to %s", orderID, order.Status, status)
		}
		if err := store.UpdateOrderStatus(ctx, tx, orderID, status, s.timestamp()); err != nil {
			return fmt.Errorf("unable to update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	s.log.Info("order_status_changed", "", "order status updated", slog.Int64("order_id", orderID), slog.String("status", string(status)))
	return s.GetOrder(ctx, orderID)
}

func (s *Service) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	order, err := store.GetOrder(ctx, s.db, orderID, false)
	if store.IsNotFound(err) {
		return domain.Order{}, notFoundf("order %d does not exist", orderID)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("unable to load order: %w", err)
	}
	order.Items, err = store.ListLineItems(ctx, s.db, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("unable to load line items: %w", err)
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, f store.OrderFilter) ([]domain.Order, error) {
	orders, err := store.ListOrders(ctx, s.db, f)
	if err != nil {
		return nil, fmt.Errorf("unable to list orders: %w", err)
	}
	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	items, err := store.ListLineItemsForOrders(ctx, s.db, ids)
	if err != nil {
		return nil, fmt.Errorf("unable to load line items: %w", err)
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = []domain.OrderLineItem{}
		}
	}
	return orders, nil
}

func (s *Service) lockOrder(ctx context.Context, tx *sqlx.Tx, orderID int64) (domain.Order, error) {
	order, err := store.GetOrder(ctx, tx, orderID, true)
	if store.IsNotFound(err) {
		return domain.Order{}, notFoundf("order %d does not exist", orderID)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("unable to load order: %w", err)
	}
	return order, nil
}

func (s *Service) lockPendingOrder(ctx context.Context, tx *sqlx.Tx, orderID int64) (domain.Order, error) {
	order, err := s.lockOrder(ctx, tx, orderID)
	if err != nil {
		return order, err
	}
	if order.Status != domain.StatusPending {
		return order, conflictf("order %d is %s; items can only change while pending", orderID, order.Status)
	}
	return order, nil
}
