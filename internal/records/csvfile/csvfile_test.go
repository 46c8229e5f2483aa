package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"showroom/internal/records"
)

func TestReadAll(t *testing.T) {
	src := New(filepath.Join("testdata", "sales.csv"))
	got, err := src.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	first := got[0]
	if first.City != "Delhi" || first.Year != "2023" || first.MonthName != "Feb" || first.Price != 500000 {
		t.Fatalf("unexpected first record: %+v", first)
	}
}

func TestReadAllMissingFile(t *testing.T) {
	src := New(filepath.Join("testdata", "nope.csv"))
	_, err := src.ReadAll(context.Background())
	if !errors.Is(err, records.ErrDataSource) {
		t.Fatalf("expected ErrDataSource, got %v", err)
	}
}

func TestReadAllMissingColumn(t *testing.T) {
	path := writeTemp(t, "SaleDate,City,FuelType,CarModel,Price\n2023-01-01,Delhi,Petrol,Swift,1\n")
	_, err := New(path).ReadAll(context.Background())
	if !errors.Is(err, records.ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
}

func TestReadAllBadDate(t *testing.T) {
	path := writeTemp(t, "SaleDate,City,FuelType,CarModel,Price,SalesPersonID\nnot-a-date,Delhi,Petrol,Swift,1,SP1\n")
	_, err := New(path).ReadAll(context.Background())
	if !errors.Is(err, records.ErrDateParse) {
		t.Fatalf("expected ErrDateParse, got %v", err)
	}
}

func TestReadAllPermissivePrice(t *testing.T) {
	path := writeTemp(t, "SaleDate,City,FuelType,CarModel,Price,SalesPersonID\n2023-01-01,Delhi,Petrol,Swift,abc,SP1\n")
	got, err := New(path).ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 1 || got[0].Price != 0 {
		t.Fatalf("malformed price should load as 0: %+v", got)
	}
}

func TestReadAllAlternateDateLayouts(t *testing.T) {
	path := writeTemp(t, "SaleDate,City,FuelType,CarModel,Price,SalesPersonID\n15/03/2023,Delhi,Petrol,Swift,1,SP1\n")
	got, err := New(path).ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if got[0].Year != "2023" || got[0].Month != 3 {
		t.Fatalf("dd/mm/yyyy not parsed: %+v", got[0])
	}
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
