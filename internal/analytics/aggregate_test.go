package analytics

import (
	"math"
	"reflect"
	"testing"
	"time"

	"showroom/internal/core"
)

const tolerance = 1e-9

func TestCountByYear(t *testing.T) {
	got := CountByYear(sampleRecords())
	want := []core.YearCount{{Year: "2023", Count: 2}, {Year: "2024", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestCountByYearMonthCalendarOrder(t *testing.T) {
	// Dec 2023 before Feb 2023 in insertion order; output must be calendar order.
	records := []core.SaleRecord{
		core.NewSaleRecord(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), "Delhi", "Petrol", "Swift", "SP1", 1),
		core.NewSaleRecord(time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), "Delhi", "Petrol", "Swift", "SP1", 1),
		core.NewSaleRecord(time.Date(2023, 2, 9, 0, 0, 0, 0, time.UTC), "Delhi", "Petrol", "Swift", "SP1", 1),
		core.NewSaleRecord(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "Delhi", "Petrol", "Swift", "SP1", 1),
	}
	got := CountByYearMonth(records)
	want := []core.MonthCount{
		{Year: "2023", Month: 2, MonthName: "Feb", Count: 2},
		{Year: "2023", Month: 12, MonthName: "Dec", Count: 1},
		{Year: "2024", Month: 1, MonthName: "Jan", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestGroupSummaryByCity(t *testing.T) {
	got := GroupSummaryBy(sampleRecords(), core.FieldCity)
	want := []core.GroupSummary{
		{Key: "Delhi", Count: 2, Sum: 1050000, Mean: 525000},
		{Key: "Mumbai", Count: 1, Sum: 700000, Mean: 700000},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestGroupSummaryMeanInvariant(t *testing.T) {
	for _, field := range []core.Field{core.FieldCity, core.FieldCarModel, core.FieldSalesPerson} {
		for _, g := range GroupSummaryBy(sampleRecords(), field) {
			if g.Count == 0 {
				t.Fatalf("%s: group %q emitted with zero count", field, g.Key)
			}
			if math.Abs(g.Mean-g.Sum/float64(g.Count)) > tolerance {
				t.Fatalf("%s: group %q mean %v != sum/count %v", field, g.Key, g.Mean, g.Sum/float64(g.Count))
			}
		}
	}
}

func TestSortBySumDescAndTopN(t *testing.T) {
	groups := []core.GroupSummary{
		{Key: "a", Sum: 10},
		{Key: "c", Sum: 30},
		{Key: "b", Sum: 30},
		{Key: "d", Sum: 20},
	}
	SortBySumDesc(groups)
	wantOrder := []string{"b", "c", "d", "a"}
	for i, w := range wantOrder {
		if groups[i].Key != w {
			t.Fatalf("position %d: got %q, want %q", i, groups[i].Key, w)
		}
	}
	if top := TopN(groups, 2); len(top) != 2 || top[0].Key != "b" {
		t.Fatalf("TopN(2) wrong: %+v", top)
	}
	if all := TopN(groups, 0); len(all) != 4 {
		t.Fatalf("TopN(0) should keep all, got %d", len(all))
	}
}

func TestCrossTabulate(t *testing.T) {
	got := CrossTabulate(sampleRecords(), core.FieldCity, core.FieldFuelType)
	want := core.CrossTab{
		RowLabels: []string{"Delhi", "Mumbai"},
		ColLabels: []string{"Diesel", "Petrol"},
		Cells:     [][]int{{0, 2}, {1, 0}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestCrossTabTotalsMatchGroupCounts(t *testing.T) {
	records := sampleRecords()
	ct := CrossTabulate(records, core.FieldCity, core.FieldFuelType)

	sum := 0
	rowTotals := make(map[string]int)
	colTotals := make(map[string]int)
	for i, row := range ct.Cells {
		for j, n := range row {
			sum += n
			rowTotals[ct.RowLabels[i]] += n
			colTotals[ct.ColLabels[j]] += n
		}
	}
	if sum != len(records) {
		t.Fatalf("cell sum %d != record count %d", sum, len(records))
	}
	for _, g := range GroupSummaryBy(records, core.FieldCity) {
		if rowTotals[g.Key] != g.Count {
			t.Fatalf("row total for %q = %d, want %d", g.Key, rowTotals[g.Key], g.Count)
		}
	}
	for _, g := range GroupSummaryBy(records, core.FieldFuelType) {
		if colTotals[g.Key] != g.Count {
			t.Fatalf("col total for %q = %d, want %d", g.Key, colTotals[g.Key], g.Count)
		}
	}
}

func TestTotals(t *testing.T) {
	kpi := Totals(sampleRecords())
	if kpi.CarsSold != 3 {
		t.Fatalf("cars sold = %d, want 3", kpi.CarsSold)
	}
	if math.Abs(kpi.TotalRevenue-1750000) > tolerance {
		t.Fatalf("revenue = %v, want 1750000", kpi.TotalRevenue)
	}
	if math.Abs(kpi.AvgPrice-1750000.0/3) > tolerance {
		t.Fatalf("avg price = %v", kpi.AvgPrice)
	}
}

func TestEmptyInputDegenerateResults(t *testing.T) {
	var empty []core.SaleRecord

	if got := CountByYear(empty); len(got) != 0 {
		t.Fatalf("CountByYear not empty: %+v", got)
	}
	if got := CountByYearMonth(empty); len(got) != 0 {
		t.Fatalf("CountByYearMonth not empty: %+v", got)
	}
	if got := GroupSummaryBy(empty, core.FieldCity); len(got) != 0 {
		t.Fatalf("GroupSummaryBy not empty: %+v", got)
	}
	ct := CrossTabulate(empty, core.FieldCity, core.FieldFuelType)
	if len(ct.RowLabels) != 0 || len(ct.ColLabels) != 0 || len(ct.Cells) != 0 {
		t.Fatalf("CrossTabulate not empty: %+v", ct)
	}
	kpi := Totals(empty)
	if kpi.CarsSold != 0 || kpi.TotalRevenue != 0 || kpi.AvgPrice != 0 {
		t.Fatalf("Totals not zero: %+v", kpi)
	}
}

// Negative prices are intentionally not rejected; they flow into sums and
// means unchanged.
func TestNegativePriceFlowsThrough(t *testing.T) {
	records := []core.SaleRecord{
		core.NewSaleRecord(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "Delhi", "Petrol", "Swift", "SP1", -100),
		core.NewSaleRecord(time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), "Delhi", "Petrol", "Swift", "SP1", 300),
	}
	groups := GroupSummaryBy(records, core.FieldCity)
	if len(groups) != 1 || groups[0].Sum != 200 || groups[0].Mean != 100 {
		t.Fatalf("unexpected summary: %+v", groups)
	}
}
