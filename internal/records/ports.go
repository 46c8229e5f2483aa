// Package records defines the inbound data port for the dashboard and the
// load-time error taxonomy shared by all source adapters.
package records

import (
	"context"
	"errors"

	"showroom/internal/core"
)

// Source reads the full sale dataset from some backing medium. There is no
// partial-success mode: either every row parses or the read fails.
type Source interface {
	ReadAll(ctx context.Context) ([]core.SaleRecord, error)
}

// Load-time failures. All three are fatal; the store never serves a
// partially loaded table.
var (
	// ErrDataSource marks a missing or unreadable source.
	ErrDataSource = errors.New("data source unavailable")
	// ErrSchema marks a source missing a required column.
	ErrSchema = errors.New("required column missing")
	// ErrDateParse marks a row whose date field is not a valid date.
	ErrDateParse = errors.New("unparseable sale date")
)

// Required column names of the tabular contract, in canonical order.
var RequiredColumns = []string{"SaleDate", "City", "FuelType", "CarModel", "Price", "SalesPersonID"}

// DateLayouts are the accepted sale-date formats, tried in order.
var DateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", "02/01/2006"}
