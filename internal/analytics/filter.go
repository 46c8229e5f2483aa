// Package analytics implements the filter and aggregation core of the
// dashboard. All operations are pure functions over an immutable record
// slice owned by the store.
package analytics

import (
	"showroom/internal/core"
)

// Selection holds the multi-select filter state, one value set per
// dimension. Membership within a set is OR; the three dimensions combine
// with AND. An empty set means "nothing selected", which matches the
// multi-select widget semantics: no records pass.
type Selection struct {
	Years     map[string]struct{}
	Cities    map[string]struct{}
	FuelTypes map[string]struct{}
}

// NewSelection builds a Selection from value slices.
func NewSelection(years, cities, fuelTypes []string) Selection {
	return Selection{
		Years:     toSet(years),
		Cities:    toSet(cities),
		FuelTypes: toSet(fuelTypes),
	}
}

// IsEmpty reports whether any dimension has no values selected, in which
// case Filter is guaranteed to return nothing.
func (s Selection) IsEmpty() bool {
	return len(s.Years) == 0 || len(s.Cities) == 0 || len(s.FuelTypes) == 0
}

// Filter returns the subsequence of records whose (year, city, fuelType)
// triple lies in Years x Cities x FuelTypes. Input order is preserved and
// the input slice is never mutated.
func Filter(records []core.SaleRecord, sel Selection) []core.SaleRecord {
	if sel.IsEmpty() {
		return nil
	}
	out := make([]core.SaleRecord, 0, len(records))
	for _, r := range records {
		if _, ok := sel.Years[r.Year]; !ok {
			continue
		}
		if _, ok := sel.Cities[r.City]; !ok {
			continue
		}
		if _, ok := sel.FuelTypes[r.FuelType]; !ok {
			continue
		}
		out = append(out, r)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}
