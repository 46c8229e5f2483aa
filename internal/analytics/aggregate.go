package analytics

import (
	"sort"

	"showroom/internal/core"
)

// CountByYear counts records per distinct year, years ascending.
// Empty input yields an empty slice, never an error.
func CountByYear(records []core.SaleRecord) []core.YearCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Year]++
	}
	out := make([]core.YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, core.YearCount{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// CountByYearMonth counts records per distinct (year, month) pair. Output
// is ordered by year ascending, then calendar month order; only pairs
// present in the input appear.
func CountByYearMonth(records []core.SaleRecord) []core.MonthCount {
	type ym struct {
		year  string
		month int
	}
	counts := make(map[ym]int)
	for _, r := range records {
		counts[ym{r.Year, r.Month}]++
	}
	out := make([]core.MonthCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, core.MonthCount{
			Year:      k.year,
			Month:     k.month,
			MonthName: core.MonthNames[k.month-1],
			Count:     n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// GroupSummaryBy aggregates count, price sum and price mean per distinct
// value of the given dimension. Keys are emitted in first-seen order;
// display sorting is the caller's decision (see SortBySumDesc).
func GroupSummaryBy(records []core.SaleRecord, field core.Field) []core.GroupSummary {
	index := make(map[string]int)
	out := make([]core.GroupSummary, 0)
	for _, r := range records {
		key := field.Of(r)
		i, seen := index[key]
		if !seen {
			i = len(out)
			index[key] = i
			out = append(out, core.GroupSummary{Key: key})
		}
		out[i].Count++
		out[i].Sum += r.Price
	}
	for i := range out {
		out[i].Mean = out[i].Sum / float64(out[i].Count)
	}
	return out
}

// SortBySumDesc orders group summaries by revenue descending, in place.
// Ties break on key so output is deterministic.
func SortBySumDesc(groups []core.GroupSummary) {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Sum != groups[j].Sum {
			return groups[i].Sum > groups[j].Sum
		}
		return groups[i].Key < groups[j].Key
	})
}

// TopN truncates a summary list to its first n entries. n <= 0 keeps all.
func TopN(groups []core.GroupSummary, n int) []core.GroupSummary {
	if n > 0 && len(groups) > n {
		return groups[:n]
	}
	return groups
}

// CrossTabulate builds a dense counts matrix over every distinct value of
// rowField and colField present in the input. Labels are sorted; cells
// with no matching records are 0.
func CrossTabulate(records []core.SaleRecord, rowField, colField core.Field) core.CrossTab {
	rowIdx := make(map[string]int)
	colIdx := make(map[string]int)
	var rows, cols []string
	for _, r := range records {
		rv, cv := rowField.Of(r), colField.Of(r)
		if _, ok := rowIdx[rv]; !ok {
			rowIdx[rv] = 0
			rows = append(rows, rv)
		}
		if _, ok := colIdx[cv]; !ok {
			colIdx[cv] = 0
			cols = append(cols, cv)
		}
	}
	sort.Strings(rows)
	sort.Strings(cols)
	for i, v := range rows {
		rowIdx[v] = i
	}
	for i, v := range cols {
		colIdx[v] = i
	}

	cells := make([][]int, len(rows))
	for i := range cells {
		cells[i] = make([]int, len(cols))
	}
	for _, r := range records {
		cells[rowIdx[rowField.Of(r)]][colIdx[colField.Of(r)]]++
	}

	return core.CrossTab{RowLabels: rows, ColLabels: cols, Cells: cells}
}

// Totals computes the headline KPI card values. AvgPrice is 0 for empty
// input; the undefined mean is the caller's degenerate case to render.
func Totals(records []core.SaleRecord) core.KPI {
	kpi := core.KPI{CarsSold: len(records)}
	for _, r := range records {
		kpi.TotalRevenue += r.Price
	}
	if kpi.CarsSold > 0 {
		kpi.AvgPrice = kpi.TotalRevenue / float64(kpi.CarsSold)
	}
	return kpi
}
