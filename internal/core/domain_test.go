package core

import (
	"testing"
	"time"
)

func TestNewSaleRecordDerivesDateParts(t *testing.T) {
	cases := []struct {
		date      time.Time
		year      string
		month     int
		monthName string
	}{
		{time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), "2023", 1, "Jan"},
		{time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), "2023", 12, "Dec"},
		{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "2024", 6, "Jun"},
	}
	for i, tc := range cases {
		r := NewSaleRecord(tc.date, "Delhi", "Petrol", "Swift", "SP1", 500000)
		if r.Year != tc.year || r.Month != tc.month || r.MonthName != tc.monthName {
			t.Fatalf("case %d: got (%s,%d,%s), want (%s,%d,%s)",
				i, r.Year, r.Month, r.MonthName, tc.year, tc.month, tc.monthName)
		}
	}
}

func TestMonthOrderIsCalendar(t *testing.T) {
	want := [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	if MonthNames != want {
		t.Fatalf("month table out of calendar order: %v", MonthNames)
	}
	for i, name := range MonthNames {
		if MonthIndex[name] != i+1 {
			t.Fatalf("MonthIndex[%s] = %d, want %d", name, MonthIndex[name], i+1)
		}
	}
}

func TestFieldSelector(t *testing.T) {
	r := NewSaleRecord(time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC),
		"Mumbai", "Diesel", "Creta", "SP7", 700000)

	cases := []struct {
		field Field
		want  string
	}{
		{FieldCity, "Mumbai"},
		{FieldFuelType, "Diesel"},
		{FieldCarModel, "Creta"},
		{FieldSalesPerson, "SP7"},
		{FieldYear, "2023"},
	}
	for _, tc := range cases {
		if got := tc.field.Of(r); got != tc.want {
			t.Fatalf("%s.Of() = %q, want %q", tc.field, got, tc.want)
		}
	}
}

func TestParseField(t *testing.T) {
	for _, s := range []string{"city", "fuelType", "carModel", "salesPersonId", "year"} {
		f, err := ParseField(s)
		if err != nil {
			t.Fatalf("ParseField(%q): %v", s, err)
		}
		if f.String() != s {
			t.Fatalf("round trip mismatch: %q -> %q", s, f.String())
		}
	}
	if _, err := ParseField("price"); err == nil {
		t.Fatalf("expected error for non-categorical field")
	}
}
