// Package memory provides an in-memory record source for tests and demos.
package memory

import (
	"context"
	"sync"
	"time"

	"showroom/internal/core"
)

type Store struct {
	mu    sync.Mutex
	items []core.SaleRecord
	err   error
}

func New(items []core.SaleRecord) *Store {
	return &Store{items: append([]core.SaleRecord(nil), items...)}
}

// NewSeeded returns a store preloaded with a small demo dataset.
func NewSeeded() *Store {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return New([]core.SaleRecord{
		core.NewSaleRecord(day(2023, time.January, 12), "Delhi", "Petrol", "Swift", "SP1", 520000),
		core.NewSaleRecord(day(2023, time.March, 3), "Mumbai", "Diesel", "Creta", "SP2", 740000),
		core.NewSaleRecord(day(2023, time.March, 21), "Bangalore", "Electric", "Nexon EV", "SP3", 1450000),
		core.NewSaleRecord(day(2023, time.August, 7), "Delhi", "Diesel", "Scorpio", "SP2", 1350000),
		core.NewSaleRecord(day(2024, time.February, 14), "Mumbai", "Petrol", "Baleno", "SP1", 680000),
		core.NewSaleRecord(day(2024, time.June, 30), "Delhi", "Petrol", "Swift", "SP3", 560000),
	})
}

// WithError configures the store to fail reads, for exercising load-error
// paths in tests.
func (s *Store) WithError(err error) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return s
}

// ReadAll returns a copy of the stored records in insertion order.
func (s *Store) ReadAll(_ context.Context) ([]core.SaleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]core.SaleRecord(nil), s.items...), nil
}
