package migrations

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            username TEXT NOT NULL,
            email TEXT NOT NULL UNIQUE,
            password TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'customer',
            created_at DATETIME NOT NULL
        );`,
	`CREATE TABLE IF NOT EXISTS menu_items (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL UNIQUE,
            price TEXT NOT NULL,
            category TEXT NOT NULL DEFAULT '',
            available BOOLEAN NOT NULL DEFAULT 1,
            quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
            created_at DATETIME NOT NULL,
            updated_at DATETIME NOT NULL
        );`,
	`CREATE TABLE IF NOT EXISTS receipts (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            waiter_id INTEGER,
            total_amount TEXT NOT NULL DEFAULT '0',
            printed BOOLEAN NOT NULL DEFAULT 0,
            settled BOOLEAN NOT NULL DEFAULT 0,
            printed_at DATETIME,
            created_at DATETIME NOT NULL,
            FOREIGN KEY(waiter_id) REFERENCES users(id) ON DELETE SET NULL
        );`,
	`CREATE TABLE IF NOT EXISTS orders (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            customer_id INTEGER NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            total_price TEXT NOT NULL DEFAULT '0',
            receipt_id INTEGER,
            created_at DATETIME NOT NULL,
            updated_at DATETIME NOT NULL,
            FOREIGN KEY(customer_id) REFERENCES users(id) ON DELETE CASCADE,
            FOREIGN KEY(receipt_id) REFERENCES receipts(id) ON DELETE SET NULL
        );`,
	`CREATE TABLE IF NOT EXISTS order_line_items (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            order_id INTEGER NOT NULL,
            menu_item_id INTEGER NOT NULL,
            quantity INTEGER NOT NULL CHECK (quantity >= 1),
            unit_price TEXT NOT NULL,
            created_at DATETIME NOT NULL,
            FOREIGN KEY(order_id) REFERENCES orders(id) ON DELETE CASCADE,
            FOREIGN KEY(menu_item_id) REFERENCES menu_items(id)
        );`,
	`CREATE TABLE IF NOT EXISTS sales_reports (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            waiter_id INTEGER NOT NULL,
            report_date TEXT NOT NULL,
            printed_receipts_count INTEGER NOT NULL DEFAULT 0,
            settled_receipts_count INTEGER NOT NULL DEFAULT 0,
            total_printed_amount TEXT NOT NULL DEFAULT '0',
            total_settled_amount TEXT NOT NULL DEFAULT '0',
            UNIQUE(waiter_id, report_date),
            FOREIGN KEY(waiter_id) REFERENCES users(id) ON DELETE CASCADE
        );`,
	`CREATE TABLE IF NOT EXISTS inventory (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            item TEXT NOT NULL UNIQUE,
            quantity INTEGER NOT NULL CHECK (quantity >= 0),
            threshold INTEGER NOT NULL CHECK (threshold >= 0),
            created_at DATETIME NOT NULL,
            updated_at DATETIME NOT NULL
        );`,
	`CREATE INDEX IF NOT EXISTS idx_orders_receipt ON orders(receipt_id);`,
	`CREATE INDEX IF NOT EXISTS idx_line_items_order ON order_line_items(order_id);`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'customer',
			created_at TIMESTAMPTZ NOT NULL
		);`,
	`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			category TEXT NOT NULL DEFAULT '',
			available BOOLEAN NOT NULL DEFAULT TRUE,
			quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);`,
	`CREATE TABLE IF NOT EXISTS receipts (
			id SERIAL PRIMARY KEY,
			waiter_id INTEGER REFERENCES users(id) ON DELETE SET NULL,
			total_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			printed BOOLEAN NOT NULL DEFAULT FALSE,
			settled BOOLEAN NOT NULL DEFAULT FALSE,
			printed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL
		);`,
	`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			customer_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			status TEXT NOT NULL DEFAULT 'pending',
			total_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			receipt_id INTEGER REFERENCES receipts(id) ON DELETE SET NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);`,
	`CREATE TABLE IF NOT EXISTS order_line_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id INTEGER NOT NULL REFERENCES menu_items(id),
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			unit_price NUMERIC(10,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
	`CREATE TABLE IF NOT EXISTS sales_reports (
			id SERIAL PRIMARY KEY,
			waiter_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			report_date TEXT NOT NULL,
			printed_receipts_count INTEGER NOT NULL DEFAULT 0 CHECK (printed_receipts_count >= 0),
			settled_receipts_count INTEGER NOT NULL DEFAULT 0 CHECK (settled_receipts_count >= 0),
			total_printed_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			total_settled_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			UNIQUE(waiter_id, report_date)
		);`,
	`CREATE TABLE IF NOT EXISTS inventory (
			id SERIAL PRIMARY KEY,
			item TEXT NOT NULL UNIQUE,
			quantity INTEGER NOT NULL CHECK (quantity >= 0),
			threshold INTEGER NOT NULL CHECK (threshold >= 0),
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);`,
	`CREATE INDEX IF NOT EXISTS idx_orders_receipt ON orders(receipt_id);`,
	`CREATE INDEX IF NOT EXISTS idx_line_items_order ON order_line_items(order_id);`,
}

// Run creates the database schema for the restaurant backend.
func Run(db *sqlx.DB) error {
	schema := sqliteSchema
	if db.DriverName() == "pgx" {
		schema = postgresSchema
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
