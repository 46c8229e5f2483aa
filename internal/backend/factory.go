// Package backend selects and constructs the record source configured for
// the process.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"showroom/internal/config"
	"showroom/internal/records"
	"showroom/internal/records/csvfile"
	"showroom/internal/records/google"
	"showroom/internal/records/memory"
	"showroom/internal/storage"
)

// Type is the kind of record source backing the dashboard.
type Type string

const (
	CSVBackend    Type = "csv"
	SQLiteBackend Type = "sqlite"
	SheetsBackend Type = "sheets"
	MemoryBackend Type = "memory"
)

func (t Type) String() string { return string(t) }

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case CSVBackend, SQLiteBackend, SheetsBackend, MemoryBackend:
		return true
	}
	return false
}

// CleanupFunc releases resources held by a source.
type CleanupFunc func() error

// Result holds the constructed source and its optional cleanup.
type Result struct {
	Source  records.Source
	Cleanup CleanupFunc
}

// Factory builds record sources from application config.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateSource constructs the source named by cfg.DataBackend.
func (f *Factory) CreateSource(ctx context.Context, cfg *config.Config) (*Result, error) {
	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch t {
	case CSVBackend:
		f.logger.Info("Initialized CSV backend", "path", cfg.CSVPath)
		return &Result{Source: csvfile.New(cfg.CSVPath)}, nil

	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Source: repo, Cleanup: repo.Close}, nil

	case SheetsBackend:
		cli, err := google.New(ctx, cfg.GoogleSpreadsheetID, cfg.GoogleSheetName)
		if err != nil {
			return nil, fmt.Errorf("initialize Google Sheets client: %w", err)
		}
		f.logger.Info("Initialized Google Sheets backend",
			"spreadsheet_id", cfg.GoogleSpreadsheetID, "sheet", cfg.GoogleSheetName)
		return &Result{Source: cli}, nil

	default: // MemoryBackend
		f.logger.Info("Initialized memory backend")
		return &Result{Source: memory.NewSeeded()}, nil
	}
}
