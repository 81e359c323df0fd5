package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"hoteldesk/m/domain"
	"hoteldesk/m/internal/store"
)

type CreateReceiptParams struct {
	WaiterID int64
	OrderIDs []int64
	Printed  bool
	Settled  bool
}

// CreateReceipt consolidates orders that are not on any receipt yet. Receipts created
// already printed or settled count as those events for the waiter's day.
func (s *Service) CreateReceipt(ctx context.Context, p CreateReceiptParams) (domain.Receipt, error) {
	ids := uniqueIDs(p.OrderIDs)
	if len(ids) == 0 {
		return domain.Receipt{}, validationf("at least one order is required")
	}

	var receiptID int64
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		waiter, err := store.GetUser(ctx, tx, p.WaiterID)
		if store.IsNotFound(err) {
			return validationf("waiter %d does not exist", p.WaiterID)
		}
		if err != nil {
			return fmt.Errorf("unable to load waiter: %w", err)
		}
		if !domain.IsStaff(waiter.Role) {
			return validationf("user %d is not staff", p.WaiterID)
		}
		if err := s.checkConsolidatable(ctx, tx, ids); err != nil {
			return err
		}

		now := s.timestamp()
		r := domain.Receipt{
			WaiterID:  &waiter.ID,
			Printed:   p.Printed,
			Settled:   p.Settled,
			CreatedAt: now,
		}
		if r.Printed {
			r.PrintedAt = &now
		}
		if err := store.InsertReceipt(ctx, tx, &r); err != nil {
			return fmt.Errorf("unable to create receipt: %w", err)
		}
		if err := store.SetOrdersReceipt(ctx, tx, ids, &r.ID, now); err != nil {
			return fmt.Errorf("unable to attach orders: %w", err)
		}
		if r.TotalAmount, err = s.receiptTotal(ctx, tx, r.ID); err != nil {
			return err
		}
		if err := store.UpdateReceipt(ctx, tx, r); err != nil {
			return fmt.Errorf("unable to update receipt total: %w", err)
		}
		receiptID = r.ID
		return s.applySalesEvents(ctx, tx, r, domain.ReceiptEvents(nil, r.State()))
	})
	if err != nil {
		return domain.Receipt{}, err
	}

	s.log.Info("receipt_created", "", "orders consolidated", slog.Int64("receipt_id", receiptID), slog.Int("orders", len(ids)))
	return s.GetReceipt(ctx, receiptID)
}

// AttachOrders adds unconsolidated orders to an existing receipt. Membership changes do
// not produce sales events.
func (s *Service) AttachOrders(ctx context.Context, receiptID int64, orderIDs []int64) (domain.Receipt, error) {
	ids := uniqueIDs(orderIDs)
	if len(ids) == 0 {
		return domain.Receipt{}, validationf("at least one order is required")
	}
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.lockReceipt(ctx, tx, receiptID); err != nil {
			return err
		}
		if err := s.checkConsolidatable(ctx, tx, ids); err != nil {
			return err
		}
		if err := store.SetOrdersReceipt(ctx, tx, ids, &receiptID, s.timestamp()); err != nil {
			return fmt.Errorf("unable to attach orders: %w", err)
		}
		_, err := s.recomputeReceiptTotal(ctx, tx, receiptID)
		return err
	})
	if err != nil {
		return domain.Receipt{}, err
	}
	return s.GetReceipt(ctx, receiptID)
}

// DetachOrder takes an order off a receipt. A receipt keeps at least one order.
func (s *Service) DetachOrder(ctx context.Context, receiptID, orderID int64) (domain.Receipt, error) {
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.lockReceipt(ctx, tx, receiptID); err != nil {
			return err
		}
		order, err := s.lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if order.ReceiptID == nil || *order.ReceiptID != receiptID {
			return notFoundf("order %d is not on receipt %d", orderID, receiptID)
		}
		members, err := store.ReceiptOrderIDs(ctx, tx, receiptID)
		if err != nil {
			return fmt.Errorf("unable to load receipt orders: %w", err)
		}
		if len(members) <= 1 {
			return conflictf("receipt %d must keep at least one order", receiptID)
		}
		if err := store.SetOrdersReceipt(ctx, tx, []int64{orderID}, nil, s.timestamp()); err != nil {
			return fmt.Errorf("unable to detach order: %w", err)
		}
		_, err = s.recomputeReceiptTotal(ctx, tx, receiptID)
		return err
	})
	if err != nil {
		return domain.Receipt{}, err
	}
	return s.GetReceipt(ctx, receiptID)
}

// SetPrinted marks a receipt printed. Only the first call stamps printed_at and counts
// towards the waiter's sales report.
func (s *Service) SetPrinted(ctx context.Context, receiptID int64) (domain.Receipt, error) {
	return s.transition(ctx, receiptID, "receipt_printed", func(r *domain.Receipt) {
		if r.Printed {
			return
		}
		r.Printed = true
		if r.PrintedAt == nil {
			now := s.timestamp()
			r.PrintedAt = &now
		}
	})
}

// SetSettled marks a receipt settled. Only the first call counts.
func (s *Service) SetSettled(ctx context.Context, receiptID int64) (domain.Receipt, error) {
	return s.transition(ctx, receiptID, "receipt_settled", func(r *domain.Receipt) {
		r.Settled = true
	})
}

func (s *Service) transition(ctx context.Context, receiptID int64, action string, change func(*domain.Receipt)) (domain.Receipt, error) {
	var events []domain.SalesEvent
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		r, err := s.lockReceipt(ctx, tx, receiptID)
		if err != nil {
			return err
		}
		prev := r.State()
		change(&r)
		events = domain.ReceiptEvents(&prev, r.State())
		if len(events) == 0 {
			return nil
		}
		if r.TotalAmount, err = s.receiptTotal(ctx, tx, r.ID); err != nil {
			return err
		}
		if err := store.UpdateReceipt(ctx, tx, r); err != nil {
			return fmt.Errorf("unable to update receipt: %w", err)
		}
		return s.applySalesEvents(ctx, tx, r, events)
	})
	if err != nil {
		return domain.Receipt{}, err
	}
	if len(events) > 0 {
		s.log.Info(action, "", "receipt state changed", slog.Int64("receipt_id", receiptID))
	}
	return s.GetReceipt(ctx, receiptID)
}

// receiptTotal is the single code path that produces Receipt.total_amount.
func (s *Service) receiptTotal(ctx context.Context, q store.Queryer, receiptID int64) (decimal.Decimal, error) {
	orders, err := store.ListOrders(ctx, q, store.OrderFilter{ReceiptID: &receiptID})
	if err != nil {
		return decimal.Zero, fmt.Errorf("unable to load receipt orders: %w", err)
	}
	return domain.OrdersTotal(orders), nil
}

func (s *Service) recomputeReceiptTotal(ctx context.Context, q store.Queryer, receiptID int64) (domain.Receipt, error) {
	r, err := store.GetReceipt(ctx, q, receiptID, true)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("unable to load receipt %d: %w", receiptID, err)
	}
	if r.TotalAmount, err = s.receiptTotal(ctx, q, receiptID); err != nil {
		return domain.Receipt{}, err
	}
	if err := store.UpdateReceipt(ctx, q, r); err != nil {
		return domain.Receipt{}, fmt.Errorf("unable to update receipt total: %w", err)
	}
	return r, nil
}

// checkConsolidatable verifies every order exists and is not on a receipt, locking them.
func (s *Service) checkConsolidatable(ctx context.Context, tx *sqlx.Tx, ids []int64) error {
	orders, err := store.GetOrdersByIDs(ctx, tx, ids, true)
	if err != nil {
		return fmt.Errorf("unable to load orders: %w", err)
	}
	found := make(map[int64]domain.Order, len(orders))
	for _, o := range orders {
		found[o.ID] = o
	}
	for _, id := range ids {
		o, ok := found[id]
		if !ok {
			return validationf("order %d does not exist", id)
		}
		if o.ReceiptID != nil {
			return conflictf("order %d is already on receipt %d", id, *o.ReceiptID)
		}
	}
	return nil
}

func (s *Service) GetReceipt(ctx context.Context, receiptID int64) (domain.Receipt, error) {
	r, err := store.GetReceipt(ctx, s.db, receiptID, false)
	if store.IsNotFound(err) {
		return domain.Receipt{}, notFoundf("receipt %d does not exist", receiptID)
	}
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("unable to load receipt: %w", err)
	}
	if r.OrderIDs, err = store.ReceiptOrderIDs(ctx, s.db, receiptID); err != nil {
		return domain.Receipt{}, fmt.Errorf("unable to load receipt orders: %w", err)
	}
	return r, nil
}

func (s *Service) ListReceipts(ctx context.Context, f store.ReceiptFilter) ([]domain.Receipt, error) {
	receipts, err := store.ListReceipts(ctx, s.db, f)
	if err != nil {
		return nil, fmt.Errorf("unable to list receipts: %w", err)
	}
	for i := range receipts {
		if receipts[i].OrderIDs, err = store.ReceiptOrderIDs(ctx, s.db, receipts[i].ID); err != nil {
			return nil, fmt.Errorf("unable to load receipt orders: %w", err)
		}
	}
	return receipts, nil
}

func (s *Service) lockReceipt(ctx context.Context, tx *sqlx.Tx, receiptID int64) (domain.Receipt, error) {
	r, err := store.GetReceipt(ctx, tx, receiptID, true)
	if store.IsNotFound(err) {
		return domain.Receipt{}, notFoundf("receipt %d does not exist", receiptID)
	}
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("unable to load receipt: %w", err)
	}
	return r, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
