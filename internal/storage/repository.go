// Package storage provides a read-only SQLite source for sale records.
// The service never inserts or updates rows; the database file is expected
// to be loaded by an external export.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"showroom/internal/core"
	"showroom/internal/records"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w: %v", records.ErrDataSource, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w: %v", records.ErrDataSource, err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ReadAll implements records.Source. Rows come back in insertion order so
// the store's table matches the export order.
func (r *SQLiteRepository) ReadAll(ctx context.Context) ([]core.SaleRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT sale_date, city, fuel_type, car_model, price, salesperson_id
		 FROM sales ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w: %v", records.ErrDataSource, err)
	}
	defer rows.Close()

	var out []core.SaleRecord
	for rows.Next() {
		var (
			saleDate, city, fuelType, carModel, salesPersonID string
			price                                             float64
		)
		if err := rows.Scan(&saleDate, &city, &fuelType, &carModel, &price, &salesPersonID); err != nil {
			return nil, fmt.Errorf("scan sale row: %w: %v", records.ErrDataSource, err)
		}

		date, err := parseDate(saleDate)
		if err != nil {
			return nil, fmt.Errorf("sales row %d: %w: %q", len(out)+1, records.ErrDateParse, saleDate)
		}
		out = append(out, core.NewSaleRecord(date, city, fuelType, carModel, salesPersonID, price))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w: %v", records.ErrDataSource, err)
	}

	slog.InfoContext(ctx, "Loaded sale records from SQLite", "rows", len(out))
	return out, nil
}

func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range records.DateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
