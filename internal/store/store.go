// Package store holds the SQL for every table. Functions take a sqlx.ExtContext so the
// same call works on *sqlx.DB and inside a *sqlx.Tx. Queries are written with "?"
// placeholders and rebound for the active driver.
package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Queryer is satisfied by *sqlx.DB and *sqlx.Tx.
type Queryer = sqlx.ExtContext

// forUpdate returns the row-lock suffix for drivers that support it. SQLite runs on a
// single connection so its transactions are already serialised.
func forUpdate(q Queryer, lock bool) string {
	if lock && q.DriverName() == "pgx" {
		return " FOR UPDATE"
	}
	return ""
}

func get(ctx context.Context, q Queryer, dest any, query string, args ...any) error {
	return sqlx.GetContext(ctx, q, dest, q.Rebind(query), args...)
}

func selectAll(ctx context.Context, q Queryer, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, q, dest, q.Rebind(query), args...)
}

func exec(ctx context.Context, q Queryer, query string, args ...any) (sql.Result, error) {
	return q.ExecContext(ctx, q.Rebind(query), args...)
}

// execOne runs a statement that must touch exactly one row and reports sql.ErrNoRows otherwise.
func execOne(ctx context.Context, q Queryer, query string, args ...any) error {
	res, err := exec(ctx, q, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func insertID(ctx context.Context, q Queryer, query string, args ...any) (int64, error) {
	var id int64
	err := q.QueryRowxContext(ctx, q.Rebind(query+" RETURNING id"), args...).Scan(&id)
	return id, err
}

// IsNotFound reports whether err means the row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
