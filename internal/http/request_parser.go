package http

import (
	"net/http"
	"sort"
	"strings"

	"showroom/internal/analytics"
)

// parseSelection reads the multi-select filter state from repeated query
// params (?year=2023&year=2024&city=Delhi&fuel=Petrol). Values may also be
// comma-separated within one param. Absent params mean nothing selected
// for that dimension, which filters everything out.
func parseSelection(r *http.Request) analytics.Selection {
	q := r.URL.Query()
	return analytics.NewSelection(
		splitValues(q["year"]),
		splitValues(q["city"]),
		splitValues(q["fuel"]),
	)
}

func splitValues(params []string) []string {
	var out []string
	for _, p := range params {
		for _, v := range strings.Split(p, ",") {
			v = strings.TrimSpace(v)
			if v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// selectionKey canonicalizes a selection for cache lookup: values sorted
// within each dimension so parameter order cannot split cache entries.
func selectionKey(sel analytics.Selection) string {
	var b strings.Builder
	for i, set := range []map[string]struct{}{sel.Years, sel.Cities, sel.FuelTypes} {
		if i > 0 {
			b.WriteByte('|')
		}
		values := make([]string, 0, len(set))
		for v := range set {
			values = append(values, v)
		}
		sort.Strings(values)
		b.WriteString(strings.Join(values, ","))
	}
	return b.String()
}
