// Package csvfile reads sale records from a delimited text file with a
// header row. It is the default source for the dashboard.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"showroom/internal/core"
	"showroom/internal/records"
)

type Source struct {
	path string
}

func New(path string) *Source {
	return &Source{path: path}
}

// ReadAll loads every row of the file. A missing file, a missing required
// column, or a row with an unparseable date fails the whole read.
func (s *Source) ReadAll(ctx context.Context) ([]core.SaleRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %v", s.path, records.ErrDataSource, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w: %v", s.path, records.ErrDataSource, err)
	}
	cols, err := columnIndexes(header)
	if err != nil {
		return nil, err
	}

	var out []core.SaleRecord
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: %w: %v", s.path, line, records.ErrDataSource, err)
		}

		date, err := parseDate(row[cols["SaleDate"]])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w: %q", s.path, line, records.ErrDateParse, row[cols["SaleDate"]])
		}

		// Price is intentionally permissive: a malformed value becomes 0
		// and flows into sums and means unchanged.
		price, err := strconv.ParseFloat(row[cols["Price"]], 64)
		if err != nil {
			slog.WarnContext(ctx, "Non-numeric price treated as zero",
				"path", s.path, "line", line, "value", row[cols["Price"]])
			price = 0
		}

		out = append(out, core.NewSaleRecord(
			date,
			row[cols["City"]],
			row[cols["FuelType"]],
			row[cols["CarModel"]],
			row[cols["SalesPersonID"]],
			price,
		))
	}

	slog.InfoContext(ctx, "Loaded sale records from CSV", "path", s.path, "rows", len(out))
	return out, nil
}

func columnIndexes(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, required := range records.RequiredColumns {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("%w: %s", records.ErrSchema, required)
		}
	}
	return idx, nil
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
