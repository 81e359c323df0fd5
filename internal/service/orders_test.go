package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"hoteldesk/m/domain"
	"hoteldesk/m/internal/store"
)

func TestOrderTotalsAndStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	burger := f.menuItem(t, "Burger", "5.00", 100)

	order := f.order(t, burger, 2)
	assertAmount(t, "total after first item", order.TotalPrice, "10.00")
	if got := f.stock(t, burger.ID); got != 98 {
		t.Fatalf("stock = %d, want 98", got)
	}

	order, err := f.svc.AddLineItem(ctx, order.ID, burger.ID, 1)
	if err != nil {
		t.Fatalf("AddLineItem: %v", err)
	}
	assertAmount(t, "total after second item", order.TotalPrice, "15.00")
	if got := f.stock(t, burger.ID); got != 97 {
		t.Fatalf("stock = %d, want 97", got)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(order.Items))
	}
	for _, li := range order.Items {
		assertAmount(t, "unit price snapshot", li.UnitPrice, "5.00")
		if li.MenuItemName != "Burger" {
			t.Errorf("menu item name = %q, want Burger", li.MenuItemName)
		}
	}
}

func TestCreateOrderDefaultsQuantity(t *testing.T) {
	f := newFixture(t)
	burger := f.menuItem(t, "Burger", "5.00", 10)
	fries := f.menuItem(t, "Fries", "2.50", 10)

	order, err := f.svc.CreateOrder(context.Background(), f.customer.ID, []LineItemInput{{MenuItemID: burger.ID}, {MenuItemID: fries.ID}})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.Status != domain.StatusPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	assertAmount(t, "total", order.TotalPrice, "7.50")
	if f.stock(t, burger.ID) != 9 || f.stock(t, fries.ID) != 9 {
		t.Errorf("stock not decremented by one each")
	}
}

func TestPriceSnapshotSurvivesMenuChange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	burger := f.menuItem(t, "Burger", "5.00", 100)
	order := f.order(t, burger, 2)

	if _, err := f.svc.UpdateMenuItem(ctx, burger.ID, MenuItemInput{Name: "Burger", Price: decimal.RequireFromString("7.00"), Category: "Food", Quantity: 98}); err != nil {
		t.Fatalf("UpdateMenuItem: %v", err)
	}
	reloaded, err := f.svc.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	assertAmount(t, "total after price change", reloaded.TotalPrice, "10.00")

	updated, err := f.svc.AddLineItem(ctx, order.ID, burger.ID, 1)
	if err != nil {
		t.Fatalf("AddLineItem: %v", err)
	}
	assertAmount(t, "total with new price", updated.TotalPrice, "17.00")
}

func TestStockNeverNegative(t *testing.T) {
	f := newFixture(t)
	soup := f.menuItem(t, "Soup", "3.00", 2)

	order := f.order(t, soup, 5)
	assertAmount(t, "total", order.TotalPrice, "15.00")
	if got := f.stock(t, soup.ID); got != 0 {
		t.Fatalf("stock = %d, want 0", got)
	}
	if _, err := f.svc.AddLineItem(context.Background(), order.ID, soup.ID, 3); err != nil {
		t.Fatalf("AddLineItem on empty stock: %v", err)
	}
	if got := f.stock(t, soup.ID); got != 0 {
		t.Fatalf("stock = %d, want 0", got)
	}
}

func TestAddLineItemErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	burger := f.menuItem(t, "Burger", "5.00", 100)
	off := false
	hidden, err := f.svc.CreateMenuItem(ctx, MenuItemInput{Name: "Secret", Price: decimal.NewFromInt(1), Available: &off})
	if err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}
	pending := f.order(t, burger, 1)
	served := f.order(t, burger, 1)
	for _, st := range []domain.OrderStatus{domain.StatusPreparing, domain.StatusServed} {
		if _, err := f.svc.UpdateStatus(ctx, served.ID, st); err != nil {
			t.Fatalf("UpdateStatus(%s): %v", st, err)
		}
	}

	tests := []struct {
		name     string
		orderID  int64
		menuID   int64
		quantity int64
		wantErr  error
	}{
		{name: "zero quantity", orderID: pending.ID, menuID: burger.ID, quantity: 0, wantErr: ErrValidation},
		{name: "negative quantity", orderID: pending.ID, menuID: burger.ID, quantity: -2, wantErr: ErrValidation},
		{name: "unknown menu item", orderID: pending.ID, menuID: 999, quantity: 1, wantErr: ErrValidation},
		{name: "unavailable menu item", orderID: pending.ID, menuID: hidden.ID, quantity: 1, wantErr: ErrValidation},
		{name: "unknown order", orderID: 999, menuID: burger.ID, quantity: 1, wantErr: ErrNotFound},
		{name: "order no longer pending", orderID: served.ID, menuID: burger.ID, quantity: 1, wantErr: ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.AddLineItem(ctx, tt.orderID, tt.menuID, tt.quantity)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddLineItem() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	reloaded, err := f.svc.GetOrder(ctx, pending.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if len(reloaded.Items) != 1 {
		t.Fatalf("failed adds left %d items, want 1", len(reloaded.Items))
	}
	assertAmount(t, "total", reloaded.TotalPrice, "5.00")
}

func TestCreateOrderRollsBackOnBadItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	burger := f.menuItem(t, "Burger", "5.00", 100)

	_, err := f.svc.CreateOrder(ctx, f.customer.ID, []LineItemInput{{MenuItemID: burger.ID, Quantity: 2}, {MenuItemID: 404, Quantity: 1}})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("CreateOrder() error = %v, want validation", err)
	}
	orders, err := f.svc.ListOrders(ctx, store.OrderFilter{})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("orders = %d, want 0", len(orders))
	}
	if got := f.stock(t, burger.ID); got != 100 {
		t.Fatalf("stock = %d, want 100", got)
	}

	if _, err := f.svc.CreateOrder(ctx, f.customer.ID, nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("CreateOrder(no items) error = %v, want validation", err)
	}
	if _, err := f.svc.CreateOrder(ctx, 999, []LineItemInput{{MenuItemID: burger.ID}}); !errors.Is(err, ErrValidation) {
		t.Fatalf("CreateOrder(unknown customer) error = %v, want validation", err)
	}
}

func TestRemoveLineItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	burger := f.menuItem(t, "Burger", "5.00", 100)
	order := f.order(t, burger, 2)

	_, err := f.svc.RemoveLineItem(ctx, order.ID, order.Items[0].ID)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("removing last item error = %v, want conflict", err)
	}

	order, err = f.svc.AddLineItem(ctx, order.ID, burger.ID, 1)
	if err != nil {
		t.Fatalf("AddLineItem: %v", err)
	}
	order, err = f.svc.RemoveLineItem(ctx, order.ID, order.Items[0].ID)
	if err != nil {
		t.Fatalf("RemoveLineItem: %v", err)
	}
	assertAmount(t, "total after removal", order.TotalPrice, "5.00")
	if len(order.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(order.Items))
	}
	// Stock is not given back.
	if got := f.stock(t, burger.ID); got != 97 {
		t.Fatalf("stock = %d, want 97", got)
	}

	other := f.order(t, burger, 1)
	if _, err := f.svc.RemoveLineItem(ctx, other.ID, order.Items[0].ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("removing foreign item error = %v, want not found", err)
	}
}

func TestDeleteLineItemCanEmptyOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	burger := f.menuItem(t, "Burger", "5.00", 100)
	order := f.order(t, burger, 2)

	order, err := f.svc.DeleteLineItem(ctx, order.Items[0].ID)
	if err != nil {
		t.Fatalf("DeleteLineItem: %v", err)
	}
	if len(order.Items) != 0 {
		t.Fatalf("items = %d, want 0", len(order.Items))
	}
	assertAmount(t, "total", order.TotalPrice, "0")

	if _, err := f.svc.DeleteLineItem(ctx, 12345); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteLineItem(missing) error = %v, want not found", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.order(t, f.menuItem(t, "Burger", "5.00", 100), 1)

	if _, err := f.svc.UpdateStatus(ctx, order.ID, domain.OrderStatus("burnt")); !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown status error = %v, want validation", err)
	}
	if _, err := f.svc.UpdateStatus(ctx, order.ID, domain.StatusServed); !errors.Is(err, ErrConflict) {
		t.Fatalf("skipping a step error = %v, want conflict", err)
	}
	for _, st := range []domain.OrderStatus{domain.StatusPreparing, domain.StatusServed, domain.StatusCompleted} {
		got, err := f.svc.UpdateStatus(ctx, order.ID, st)
		if err != nil {
			t.Fatalf("UpdateStatus(%s): %v", st, err)
		}
		if got.Status != st {
			t.Fatalf("status = %s, want %s", got.Status, st)
		}
	}
	if _, err := f.svc.UpdateStatus(ctx, order.ID, domain.StatusPending); !errors.Is(err, ErrConflict) {
		t.Fatalf("reverse transition error = %v, want conflict", err)
	}
	if _, err := f.svc.UpdateStatus(ctx, 999, domain.StatusPreparing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing order error = %v, want not found", err)
	}
}

func TestListOrdersFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	burger := f.menuItem(t, "Burger", "5.00", 100)
	a := f.order(t, burger, 1)
	b := f.order(t, burger, 2)
	if _, err := f.svc.CreateReceipt(ctx, CreateReceiptParams{WaiterID: f.waiter.ID, OrderIDs: []int64{a.ID}}); err != nil {
		t.Fatalf("CreateReceipt: %v", err)
	}

	open, err := f.svc.ListOrders(ctx, store.OrderFilter{Unconsolidated: true})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(open) != 1 || open[0].ID != b.ID {
		t.Fatalf("unconsolidated orders = %+v, want only %d", open, b.ID)
	}
	if len(open[0].Items) != 1 {
		t.Fatalf("items = %d, want 1", len(open[0].Items))
	}

	nobody := f.user(t, "nobody", domain.RoleCustomer).ID
	none, err := f.svc.ListOrders(ctx, store.OrderFilter{CustomerID: &nobody})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("orders for nobody = %d, want 0", len(none))
	}
}
