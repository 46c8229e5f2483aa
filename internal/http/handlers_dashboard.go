package http

import (
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"showroom/internal/analytics"
	"showroom/internal/core"
)

// Meta lists the selectable values per filter dimension.
type Meta struct {
	Years     []string `json:"years"`
	Cities    []string `json:"cities"`
	FuelTypes []string `json:"fuelTypes"`
}

// topGroupLimit caps the model and salesperson leaderboards.
const topGroupLimit = 10

// Snapshot is the full dashboard payload for one filter selection.
type Snapshot struct {
	KPI          core.KPI            `json:"kpi"`
	YearlyTrend  []core.YearCount    `json:"yearlyTrend"`
	MonthlyTrend []core.MonthCount   `json:"monthlyTrend"`
	MonthOrder   []string            `json:"monthOrder"`
	Cities       []core.GroupSummary `json:"cities"`
	Models       []core.GroupSummary `json:"models"`
	Salespersons []core.GroupSummary `json:"salespersons"`
	FuelTypes    []core.GroupSummary `json:"fuelTypes"`
	CityFuel     core.CrossTab       `json:"cityFuel"`
}

func (s *Server) handleMeta(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !s.store.Loaded() {
		writeError(w, r, http.StatusServiceUnavailable, "dataset not loaded")
		return
	}

	writeJSON(w, r, http.StatusOK, Meta{
		Years:     s.store.DimensionValues(core.FieldYear),
		Cities:    s.store.DimensionValues(core.FieldCity),
		FuelTypes: s.store.DimensionValues(core.FieldFuelType),
	})
}

// handleDashboard recomputes the whole dashboard for the requested filter
// selection. The dataset is small enough that a full pass per interaction
// is fine; an LRU keyed by the canonical selection absorbs repeats.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !s.store.Loaded() {
		writeError(w, r, http.StatusServiceUnavailable, "dataset not loaded")
		return
	}

	sel := parseSelection(r)
	key := selectionKey(sel)
	if cached, ok := s.snapshots.Get(key); ok {
		slog.DebugContext(r.Context(), "Dashboard snapshot served from cache", "key", key)
		writeJSON(w, r, http.StatusOK, cached.(*Snapshot))
		return
	}

	snap := computeSnapshot(s.store.Records(), sel)
	s.snapshots.Set(key, snap)
	writeJSON(w, r, http.StatusOK, snap)
}

// computeSnapshot runs every aggregation family over the filtered subset.
// The groups are independent pure functions over an immutable slice, so
// they run concurrently.
func computeSnapshot(records []core.SaleRecord, sel analytics.Selection) *Snapshot {
	filtered := analytics.Filter(records, sel)

	snap := &Snapshot{MonthOrder: core.MonthNames[:]}

	var g errgroup.Group
	g.Go(func() error {
		snap.KPI = analytics.Totals(filtered)
		return nil
	})
	g.Go(func() error {
		snap.YearlyTrend = analytics.CountByYear(filtered)
		return nil
	})
	g.Go(func() error {
		snap.MonthlyTrend = analytics.CountByYearMonth(filtered)
		return nil
	})
	g.Go(func() error {
		cities := analytics.GroupSummaryBy(filtered, core.FieldCity)
		analytics.SortBySumDesc(cities)
		snap.Cities = cities
		return nil
	})
	g.Go(func() error {
		models := analytics.GroupSummaryBy(filtered, core.FieldCarModel)
		analytics.SortBySumDesc(models)
		snap.Models = analytics.TopN(models, topGroupLimit)
		return nil
	})
	g.Go(func() error {
		persons := analytics.GroupSummaryBy(filtered, core.FieldSalesPerson)
		analytics.SortBySumDesc(persons)
		snap.Salespersons = analytics.TopN(persons, topGroupLimit)
		return nil
	})
	g.Go(func() error {
		snap.FuelTypes = analytics.GroupSummaryBy(filtered, core.FieldFuelType)
		return nil
	})
	g.Go(func() error {
		snap.CityFuel = analytics.CrossTabulate(filtered, core.FieldCity, core.FieldFuelType)
		return nil
	})
	_ = g.Wait() // aggregations cannot fail

	return snap
}
