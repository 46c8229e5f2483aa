// Package google reads sale records from a Google Sheets spreadsheet.
// The sheet is read-only for this service; the dashboard never writes
// records back.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"showroom/internal/core"
	"showroom/internal/records"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

// New creates a sheets-backed source for the given spreadsheet and sheet.
func New(ctx context.Context, spreadsheetID, sheetName string) (*Client, error) {
	if spreadsheetID == "" || sheetName == "" {
		return nil, errors.New("spreadsheet id and sheet name are required")
	}
	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, err
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID, sheetName: sheetName}, nil
}

// newSheetsService builds the Sheets API client from service-account
// credentials. Uses GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE,
// or GOOGLE_APPLICATION_CREDENTIALS.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return svc, nil
}

// ReadAll reads the header row plus every data row of the configured sheet.
// The sheet must carry the same required columns as the CSV contract.
func (c *Client) ReadAll(ctx context.Context) ([]core.SaleRecord, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}

	rng := fmt.Sprintf("%s!A1:Z", c.sheetName)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %v", rng, records.ErrDataSource, err)
	}
	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("%w: sheet %s is empty", records.ErrDataSource, c.sheetName)
	}

	header := toStrings(resp.Values[0])
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range records.RequiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", records.ErrSchema, required)
		}
	}

	out := make([]core.SaleRecord, 0, len(resp.Values)-1)
	for i, raw := range resp.Values[1:] {
		row := toStrings(raw)
		if allEmpty(row) {
			continue
		}
		get := func(col string) string {
			if cols[col] < len(row) {
				return row[cols[col]]
			}
			return ""
		}

		date, err := parseDate(get("SaleDate"))
		if err != nil {
			return nil, fmt.Errorf("sheet %s row %d: %w: %q", c.sheetName, i+2, records.ErrDateParse, get("SaleDate"))
		}

		price, err := strconv.ParseFloat(get("Price"), 64)
		if err != nil {
			slog.WarnContext(ctx, "Non-numeric price treated as zero",
				"sheet", c.sheetName, "row", i+2, "value", get("Price"))
			price = 0
		}

		out = append(out, core.NewSaleRecord(
			date, get("City"), get("FuelType"), get("CarModel"), get("SalesPersonID"), price,
		))
	}

	slog.InfoContext(ctx, "Loaded sale records from Google Sheets",
		"spreadsheet_id", c.spreadsheetID, "sheet", c.sheetName, "rows", len(out))
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

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

func allEmpty(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
