// Command showroom-report prints a plain-text sales report for the
// configured data backend, optionally narrowed to a filter selection.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"showroom/internal/analytics"
	"showroom/internal/cli"
	"showroom/internal/core"
	"showroom/internal/store"
)

func main() {
	years := flag.String("years", "", "comma-separated years to include (default: all)")
	cities := flag.String("cities", "", "comma-separated cities to include (default: all)")
	fuels := flag.String("fuels", "", "comma-separated fuel types to include (default: all)")
	top := flag.Int("top", 10, "rows to show in the model and salesperson tables")
	flag.Parse()

	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()
	st, cleanup := cli.InitStore(ctx, logger, cfg)
	defer func() {
		if cleanup != nil {
			_ = cleanup()
		}
	}()

	sel := analytics.NewSelection(
		splitOrAll(*years, st, core.FieldYear),
		splitOrAll(*cities, st, core.FieldCity),
		splitOrAll(*fuels, st, core.FieldFuelType),
	)
	filtered := analytics.Filter(st.Records(), sel)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	printReport(w, filtered, *top)
	if err := w.Flush(); err != nil {
		logger.Error("Failed writing report", "error", err)
		os.Exit(1)
	}
}

// splitOrAll parses a comma-separated flag value, falling back to every
// distinct value of the dimension when the flag is unset.
func splitOrAll(raw string, st *store.Store, field core.Field) []string {
	if raw == "" {
		return st.DimensionValues(field)
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func printReport(w *tabwriter.Writer, records []core.SaleRecord, top int) {
	kpi := analytics.Totals(records)
	fmt.Fprintf(w, "Cars sold\t%d\n", kpi.CarsSold)
	fmt.Fprintf(w, "Total revenue\t%.2f\n", kpi.TotalRevenue)
	fmt.Fprintf(w, "Average price\t%.2f\n", kpi.AvgPrice)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "SALES BY YEAR")
	for _, yc := range analytics.CountByYear(records) {
		fmt.Fprintf(w, "%s\t%d\n", yc.Year, yc.Count)
	}
	fmt.Fprintln(w)

	printGroupTable(w, "SALES BY CITY", analytics.GroupSummaryBy(records, core.FieldCity), 0)
	printGroupTable(w, "TOP MODELS BY REVENUE", analytics.GroupSummaryBy(records, core.FieldCarModel), top)
	printGroupTable(w, "SALES BY FUEL TYPE", analytics.GroupSummaryBy(records, core.FieldFuelType), 0)
	printGroupTable(w, "TOP SALESPERSONS BY REVENUE", analytics.GroupSummaryBy(records, core.FieldSalesPerson), top)

	ct := analytics.CrossTabulate(records, core.FieldCity, core.FieldFuelType)
	fmt.Fprintln(w, "CITY x FUEL TYPE")
	fmt.Fprintf(w, "\t%s\n", strings.Join(ct.ColLabels, "\t"))
	for i, row := range ct.RowLabels {
		cells := make([]string, len(ct.Cells[i]))
		for j, n := range ct.Cells[i] {
			cells[j] = fmt.Sprintf("%d", n)
		}
		fmt.Fprintf(w, "%s\t%s\n", row, strings.Join(cells, "\t"))
	}
}

func printGroupTable(w *tabwriter.Writer, title string, groups []core.GroupSummary, top int) {
	analytics.SortBySumDesc(groups)
	if top > 0 {
		groups = analytics.TopN(groups, top)
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "\tCount\tRevenue\tMean")
	for _, g := range groups {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\n", g.Key, g.Count, g.Sum, g.Mean)
	}
	fmt.Fprintln(w)
}
