// Package store owns the in-memory sale table. The table is read from a
// records.Source exactly once per process and never mutated afterwards;
// filtering produces derived views, never copies-with-mutation.
package store

import (
	"context"
	"sort"
	"sync"

	"showroom/internal/core"
	"showroom/internal/records"
)

// Store caches the full dataset behind an initialize-once barrier.
// Concurrent callers of Load block until the first load completes or
// fails; a failed load is sticky and every later call reports the same
// error.
type Store struct {
	source records.Source

	once    sync.Once
	items   []core.SaleRecord
	loaded  bool
	loadErr error
}

func New(source records.Source) *Store {
	return &Store{source: source}
}

// Load reads the dataset on first call and returns the cached table on
// every call after that.
func (s *Store) Load(ctx context.Context) ([]core.SaleRecord, error) {
	s.once.Do(func() {
		s.items, s.loadErr = s.source.ReadAll(ctx)
		s.loaded = s.loadErr == nil
	})
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.items, nil
}

// Records returns the cached table without triggering a load. It is nil
// until the first successful Load.
func (s *Store) Records() []core.SaleRecord {
	if !s.loaded {
		return nil
	}
	return s.items
}

// Loaded reports whether the first load completed successfully.
func (s *Store) Loaded() bool {
	return s.loaded
}

// DimensionValues returns the sorted distinct values of a dimension,
// used to populate the filter widgets.
func (s *Store) DimensionValues(field core.Field) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range s.items {
		v := field.Of(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
