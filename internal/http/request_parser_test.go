package http

import (
	"net/http/httptest"
	"testing"
)

func TestParseSelectionRepeatedParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/dashboard?year=2023&year=2024&city=Delhi&fuel=Petrol&fuel=Diesel", nil)
	sel := parseSelection(r)

	if len(sel.Years) != 2 || len(sel.Cities) != 1 || len(sel.FuelTypes) != 2 {
		t.Fatalf("unexpected selection sizes: %+v", sel)
	}
	if _, ok := sel.Years["2024"]; !ok {
		t.Fatalf("year 2024 missing")
	}
}

func TestParseSelectionCommaSeparated(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/dashboard?year=2023,2024&city=Delhi,%20Mumbai&fuel=Petrol", nil)
	sel := parseSelection(r)

	if len(sel.Years) != 2 {
		t.Fatalf("comma-separated years not split: %+v", sel.Years)
	}
	if _, ok := sel.Cities["Mumbai"]; !ok {
		t.Fatalf("whitespace around comma values should be trimmed: %+v", sel.Cities)
	}
}

func TestParseSelectionAbsentParamIsEmpty(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/dashboard?year=2023&city=Delhi", nil)
	sel := parseSelection(r)

	if len(sel.FuelTypes) != 0 {
		t.Fatalf("absent fuel param should mean empty set")
	}
	if !sel.IsEmpty() {
		t.Fatalf("selection with an empty dimension should report empty")
	}
}

func TestSelectionKeyCanonical(t *testing.T) {
	a := parseSelection(httptest.NewRequest("GET", "/?year=2024&year=2023&city=Delhi&fuel=Petrol", nil))
	b := parseSelection(httptest.NewRequest("GET", "/?year=2023&year=2024&fuel=Petrol&city=Delhi", nil))
	if selectionKey(a) != selectionKey(b) {
		t.Fatalf("parameter order must not change the key: %q vs %q", selectionKey(a), selectionKey(b))
	}

	c := parseSelection(httptest.NewRequest("GET", "/?year=2023&city=Delhi&fuel=Diesel", nil))
	if selectionKey(a) == selectionKey(c) {
		t.Fatalf("different selections must not collide")
	}
}
