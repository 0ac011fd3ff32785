package dto

// TrendPoint is one month of the income/expense trend, oldest first.
type TrendPoint struct {
	Month    string  `json:"month"` // YYYY-MM
	Label    string  `json:"label"` // short month name, e.g. "Jan"
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

type TrendResult struct {
	Months []TrendPoint `json:"months"`
}

// BreakdownItem is one expense category's share of the current month.
type BreakdownItem struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type BreakdownResult struct {
	Total float64         `json:"total"`
	Items []BreakdownItem `json:"items"`
}
