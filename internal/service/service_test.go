package service

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"hoteldesk/m/domain"
	"hoteldesk/m/internal/database"
	"hoteldesk/m/internal/logger"
	"hoteldesk/m/internal/migrations"
	"hoteldesk/m/internal/store"
)

type fixture struct {
	svc      *Service
	db       *sqlx.DB
	now      time.Time
	customer domain.User
	waiter   domain.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	f := &fixture{db: db, now: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)}
	f.svc = New(db, logger.Discard(), WithClock(func() time.Time { return f.now }))
	f.customer = f.user(t, "customer", domain.RoleCustomer)
	f.waiter = f.user(t, "waiter", domain.RoleWaiter)
	return f
}

func (f *fixture) user(t *testing.T, name, role string) domain.User {
	t.Helper()
	u := domain.User{Username: name, Email: name + "@example.com", Password: "x", Role: role, CreatedAt: f.now}
	if err := store.CreateUser(context.Background(), f.db, &u); err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return u
}

func (f *fixture) menuItem(t *testing.T, name, price string, stock int64) domain.MenuItem {
	t.Helper()
	m, err := f.svc.CreateMenuItem(context.Background(), MenuItemInput{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Category: "Food",
		Quantity: stock,
	})
	if err != nil {
		t.Fatalf("create menu item %s: %v", name, err)
	}
	return m
}

// order places an order with one line item of qty units of m.
func (f *fixture) order(t *testing.T, m domain.MenuItem, qty int64) domain.Order {
	t.Helper()
	o, err := f.svc.CreateOrder(context.Background(), f.customer.ID, []LineItemInput{{MenuItemID: m.ID, Quantity: qty}})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return o
}

func (f *fixture) stock(t *testing.T, id int64) int64 {
	t.Helper()
	m, err := f.svc.GetMenuItem(context.Background(), id)
	if err != nil {
		t.Fatalf("get menu item: %v", err)
	}
	return m.Quantity
}

func assertAmount(t *testing.T, what string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", what, got, want)
	}
}
