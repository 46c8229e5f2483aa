package core

// YearCount is one point of the year-wise trend line.
type YearCount struct {
	Year  string `json:"year"`
	Count int    `json:"count"`
}

// MonthCount is one bar of the month-wise trend, keyed by (year, month).
// MonthName follows calendar order via MonthNames, not lexical order.
type MonthCount struct {
	Year      string `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"monthName"`
	Count     int    `json:"count"`
}

// GroupSummary is the per-category aggregate over the price field.
// Mean is always Sum/Count; a key appears only if at least one record
// carries it, so Count is never zero.
type GroupSummary struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
	Mean  float64 `json:"mean"`
}

// CrossTab is a dense counts matrix over two categorical dimensions.
// Cells[r][c] counts records where rowField=RowLabels[r] and
// colField=ColLabels[c]; combinations absent from the input are 0, not
// missing.
type CrossTab struct {
	RowLabels []string `json:"rowLabels"`
	ColLabels []string `json:"colLabels"`
	Cells     [][]int  `json:"cells"`
}

// KPI holds the headline card metrics for a filtered view.
type KPI struct {
	CarsSold     int     `json:"carsSold"`
	TotalRevenue float64 `json:"totalRevenue"`
	AvgPrice     float64 `json:"avgPrice"` // 0 when CarsSold is 0
}
