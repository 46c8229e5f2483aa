package analytics

import (
	"reflect"
	"testing"
	"time"

	"showroom/internal/core"
)

func sampleRecords() []core.SaleRecord {
	return []core.SaleRecord{
		core.NewSaleRecord(time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC), "Delhi", "Petrol", "Swift", "SP1", 500000),
		core.NewSaleRecord(time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC), "Mumbai", "Diesel", "Creta", "SP2", 700000),
		core.NewSaleRecord(time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), "Delhi", "Petrol", "Swift", "SP1", 550000),
	}
}

func TestFilterConjunction(t *testing.T) {
	records := sampleRecords()
	sel := NewSelection(
		[]string{"2023"},
		[]string{"Delhi", "Mumbai"},
		[]string{"Petrol", "Diesel"},
	)

	got := Filter(records, sel)
	if !reflect.DeepEqual(got, records[:2]) {
		t.Fatalf("expected first two records, got %d records: %+v", len(got), got)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	records := sampleRecords()
	sel := NewSelection([]string{"2023", "2024"}, []string{"Delhi", "Mumbai"}, []string{"Petrol", "Diesel"})

	got := Filter(records, sel)
	if !reflect.DeepEqual(got, records) {
		t.Fatalf("all records should pass in input order")
	}
}

func TestFilterEmptyDimensionExcludesAll(t *testing.T) {
	records := sampleRecords()
	cases := []Selection{
		NewSelection(nil, []string{"Delhi"}, []string{"Petrol"}),
		NewSelection([]string{"2023"}, nil, []string{"Petrol"}),
		NewSelection([]string{"2023"}, []string{"Delhi"}, nil),
		NewSelection(nil, nil, nil),
	}
	for i, sel := range cases {
		if got := Filter(records, sel); len(got) != 0 {
			t.Fatalf("case %d: empty dimension must yield no records, got %d", i, len(got))
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	records := sampleRecords()
	sel := NewSelection([]string{"2023"}, []string{"Delhi"}, []string{"Petrol"})

	once := Filter(records, sel)
	twice := Filter(once, sel)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filter is not idempotent: %+v vs %+v", once, twice)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := make([]core.SaleRecord, len(records))
	copy(before, records)

	Filter(records, NewSelection([]string{"2023"}, []string{"Delhi"}, []string{"Petrol"}))
	if !reflect.DeepEqual(records, before) {
		t.Fatalf("input slice was mutated")
	}
}
