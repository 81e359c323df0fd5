package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// LoadMenu ingests the CSV into the menu_items table, ignoring names that already exist.
// Columns are name, price, category, available, quantity. It returns the number of rows
// inserted.
func LoadMenu(db *sqlx.DB, csvPath string) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("unable to open menu %s: %w", csvPath, err)
	}
	defer file.Close()
	return loadMenu(db, file)
}

func loadMenu(db *sqlx.DB, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	// Skip header
	if _, err := reader.Read(); err != nil {
		return 0, fmt.Errorf("unable to read menu header: %w", err)
	}

	tx, err := db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("unable to start menu transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(tx.Rebind(`INSERT INTO menu_items (name, price, category, available, quantity, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?) ON CONFLICT (name) DO NOTHING`))
	if err != nil {
		return 0, fmt.Errorf("unable to prepare menu insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rows := 0
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("unable to read menu row %d: %v", line, err)
			continue
		}
		item, ok := parseMenuRecord(record)
		if !ok {
			log.Printf("skipping malformed menu row %d", line)
			continue
		}

		res, err := stmt.Exec(item.name, item.price, item.category, item.available, item.quantity, now, now)
		if err != nil {
			log.Printf("unable to insert menu item %s: %v", item.name, err)
			continue
		}
		if n, _ := res.RowsAffected(); n > 0 {
			rows++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("unable to commit menu seed: %w", err)
	}
	log.Printf("seeded menu with %d items", rows)
	return rows, nil
}

type menuRecord struct {
	name      string
	price     decimal.Decimal
	category  string
	available bool
	quantity  int64
}

func parseMenuRecord(record []string) (menuRecord, bool) {
	if len(record) < 2 {
		return menuRecord{}, false
	}
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	m := menuRecord{name: field(0), category: field(2), available: true}
	if m.name == "" {
		return menuRecord{}, false
	}
	price, err := decimal.NewFromString(field(1))
	if err != nil || price.IsNegative() {
		return menuRecord{}, false
	}
	m.price = price
	if v := field(3); v != "" {
		if m.available, err = strconv.ParseBool(v); err != nil {
			return menuRecord{}, false
		}
	}
	if v := field(4); v != "" {
		if m.quantity, err = strconv.ParseInt(v, 10, 64); err != nil || m.quantity < 0 {
			return menuRecord{}, false
		}
	}
	return m, true
}
