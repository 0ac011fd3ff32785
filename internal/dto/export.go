package dto

import (
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
)

// Export formats
const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
	ExportFormatPDF  = "pdf" // print-ready HTML; the app renders it to PDF on device
)

// Export date-range scopes. Each is an inclusive lower bound extending
// to "now"; "all" applies no filtering.
const (
	ExportRangeAll     = "all"
	ExportRangeMonth   = "month"
	ExportRangeQuarter = "quarter"
	ExportRangeYear    = "year"
)

type ExportOptions struct {
	Format              string `json:"format"`
	DateRange           string `json:"dateRange"`
	IncludeTransactions bool   `json:"includeTransactions"`
	IncludeBudgets      bool   `json:"includeBudgets"`
	IncludeCategories   bool   `json:"includeCategories"`
	IncludeSummary      bool   `json:"includeSummary"`
}

type ExportSummary struct {
	TotalTransactions int     `json:"totalTransactions"`
	TotalIncome       float64 `json:"totalIncome"`
	TotalExpenses     float64 `json:"totalExpenses"`
	NetAmount         float64 `json:"netAmount"`
	DateRange         string  `json:"dateRange"`
}

type ExportUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ExportData is the assembled export object. Collections whose include
// flag was off serialize as empty arrays, never null.
type ExportData struct {
	Transactions []models.Transaction `json:"transactions"`
	Budgets      []models.Budget      `json:"budgets"`
	Categories   []models.Category    `json:"categories"`
	Summary      ExportSummary        `json:"summary"`
	User         ExportUser           `json:"user"`
	ExportDate   string               `json:"exportDate"`
}

// ExportResult carries the serialized document back to the handler.
type ExportResult struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	Content  string `json:"content"`
}
