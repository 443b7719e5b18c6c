package models

// TrendEngineer identifies one of the top contributors a trend series
// has a column for
type TrendEngineer struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TrendRow holds the merged PR counts of a single ISO week, one entry
// per top contributor (0 if the contributor merged nothing that week)
type TrendRow struct {
	Week   string         `json:"week"`
	Counts map[string]int `json:"counts"`
}

// TrendsResponse is the chart-ready payload of the trends endpoint
type TrendsResponse struct {
	Engineers []TrendEngineer `json:"engineers"`
	Series    []TrendRow      `json:"series"`
}
