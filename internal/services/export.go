package services

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/kaiseldev-sudo/budget-buddy/internal/dto"
	"github.com/kaiseldev-sudo/budget-buddy/internal/errs"
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
	"github.com/kaiseldev-sudo/budget-buddy/pkg/logger"
)

type exportTransactionStore interface {
	List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error)
}

type exportBudgetStore interface {
	ListActive(ctx context.Context, uid string) ([]models.Budget, error)
}

type exportCategoryResolver interface {
	Resolve(ctx context.Context) ([]models.Category, error)
}

type exportUserStore interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

type exportService struct {
	txs        exportTransactionStore
	budgets    exportBudgetStore
	categories exportCategoryResolver
	users      exportUserStore
}

func NewExportService(txs exportTransactionStore, budgets exportBudgetStore, categories exportCategoryResolver, users exportUserStore) *exportService {
	return &exportService{txs: txs, budgets: budgets, categories: categories, users: users}
}

// Export assembles and serializes the user's financial data. The
// returned content is the document itself; for the pdf format it is a
// print-ready HTML page the app converts on device.
func (s *exportService) Export(ctx context.Context, uid string, opts dto.ExportOptions) (dto.ExportResult, error) {
	if err := validateExportOptions(opts); err != nil {
		return dto.ExportResult{}, err
	}

	txs, err := s.txs.List(ctx, uid, dto.TransactionQuery{})
	if err != nil {
		return dto.ExportResult{}, err
	}
	budgets, err := s.budgets.ListActive(ctx, uid)
	if err != nil {
		return dto.ExportResult{}, err
	}
	cats, err := s.categories.Resolve(ctx)
	if err != nil {
		return dto.ExportResult{}, err
	}

	user := dto.ExportUser{Name: "User"}
	if profile, err := s.users.GetUser(ctx, uid); err == nil {
		if profile.FullName != "" {
			user.Name = profile.FullName
		}
		user.Email = profile.Email
	} else {
		logger.FromContext(ctx).Warn("exporting without profile", "error", err)
	}

	now := time.Now()
	data := PrepareExportData(txs, budgets, cats, user, opts, now)

	var content string
	switch opts.Format {
	case dto.ExportFormatCSV:
		content = GenerateCSV(data.Transactions, categoriesByID(cats))
	case dto.ExportFormatJSON:
		content, err = GenerateJSON(data)
	case dto.ExportFormatPDF:
		content, err = GenerateReportHTML(data, categoriesByID(cats))
	default:
		return dto.ExportResult{}, errs.NewUnsupportedFormatError(opts.Format)
	}
	if err != nil {
		return dto.ExportResult{}, err
	}

	return dto.ExportResult{
		Filename: ExportFilename(opts.Format, opts.DateRange, now),
		MimeType: ExportMimeType(opts.Format),
		Content:  content,
	}, nil
}

func validateExportOptions(opts dto.ExportOptions) error {
	switch opts.Format {
	case dto.ExportFormatCSV, dto.ExportFormatJSON, dto.ExportFormatPDF:
	default:
		return errs.NewUnsupportedFormatError(opts.Format)
	}
	switch opts.DateRange {
	case dto.ExportRangeAll, dto.ExportRangeMonth, dto.ExportRangeQuarter, dto.ExportRangeYear:
		return nil
	}
	return errs.NewValidationError("dateRange must be one of: all, month, quarter, year")
}

// --- Assembly ---

// PrepareExportData filters transactions to the requested range,
// computes the summary, and zeroes out any collection whose include
// flag is off. Toggled-off collections stay as empty slices so the
// JSON export always carries arrays.
func PrepareExportData(txs []models.Transaction, budgets []models.Budget, cats []models.Category, user dto.ExportUser, opts dto.ExportOptions, now time.Time) dto.ExportData {
	filtered := FilterTransactionsByDateRange(txs, opts.DateRange, now)

	data := dto.ExportData{
		Transactions: []models.Transaction{},
		Budgets:      []models.Budget{},
		Categories:   []models.Category{},
		Summary:      dto.ExportSummary{DateRange: opts.DateRange},
		User:         user,
		ExportDate:   now.Format(time.RFC3339),
	}
	if opts.IncludeTransactions {
		data.Transactions = filtered
	}
	if opts.IncludeBudgets && budgets != nil {
		data.Budgets = budgets
	}
	if opts.IncludeCategories && cats != nil {
		data.Categories = cats
	}
	if opts.IncludeSummary {
		summary := CalculateSummary(filtered, categoriesByID(cats))
		summary.DateRange = opts.DateRange
		data.Summary = summary
	}
	return data
}

// FilterTransactionsByDateRange keeps transactions on or after the
// range's start date; every range extends to "now". Date strings
// compare lexicographically.
func FilterTransactionsByDateRange(txs []models.Transaction, dateRange string, now time.Time) []models.Transaction {
	lower := rangeLowerBound(dateRange, now)
	if lower == "" {
		out := make([]models.Transaction, len(txs))
		copy(out, txs)
		return out
	}
	filtered := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Date >= lower {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func rangeLowerBound(dateRange string, now time.Time) string {
	switch dateRange {
	case dto.ExportRangeMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(dateLayout)
	case dto.ExportRangeQuarter:
		m := int(now.Month())
		qStart := ((m-1)/3)*3 + 1
		return time.Date(now.Year(), time.Month(qStart), 1, 0, 0, 0, 0, now.Location()).Format(dateLayout)
	case dto.ExportRangeYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()).Format(dateLayout)
	default:
		return ""
	}
}

// CalculateSummary totals the filtered transactions. A transaction
// whose category is unknown counts as an expense, matching how the
// rest of the app renders orphaned categories.
func CalculateSummary(txs []models.Transaction, cats map[string]models.Category) dto.ExportSummary {
	summary := dto.ExportSummary{TotalTransactions: len(txs)}
	for _, t := range txs {
		if cats[t.CategoryID].Type == models.CategoryTypeIncome {
			summary.TotalIncome += t.Amount
		} else {
			summary.TotalExpenses += t.Amount
		}
	}
	summary.NetAmount = summary.TotalIncome - summary.TotalExpenses
	return summary
}

// --- Serialization ---

// GenerateCSV writes one row per transaction under a fixed header.
// Every field is double-quoted with embedded quotes doubled, so a
// standard CSV reader recovers the original values.
func GenerateCSV(txs []models.Transaction, cats map[string]models.Category) string {
	var b strings.Builder
	b.WriteString("Date,Description,Category,Type,Amount\n")

	for _, t := range txs {
		name, typ := categoryDisplay(cats, t.CategoryID)
		fields := []string{
			shortDate(t.Date),
			t.Description,
			name,
			typ,
			formatAmount(t.Amount),
		}
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(csvField(f))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func csvField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func GenerateJSON(data dto.ExportData) (string, error) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// shortDate renders a stored YYYY-MM-DD date as M/D/YYYY, the format
// the app has always written to exports. Unparseable dates pass
// through untouched.
func shortDate(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func categoryDisplay(cats map[string]models.Category, categoryID string) (name, typ string) {
	if c, ok := cats[categoryID]; ok {
		return c.Name, c.Type
	}
	return "Unknown", models.CategoryTypeExpense
}

// --- Filename / mime helpers ---

func ExportFilename(format, dateRange string, now time.Time) string {
	return fmt.Sprintf("budget-buddy-%s-%s.%s", dateRange, now.Format(dateLayout), format)
}

func ExportMimeType(format string) string {
	switch format {
	case dto.ExportFormatCSV:
		return "text/csv"
	case dto.ExportFormatJSON:
		return "application/json"
	case dto.ExportFormatPDF:
		return "application/pdf"
	default:
		return "text/plain"
	}
}

// --- HTML report ---

type reportRow struct {
	Date        string
	Description string
	Category    string
	Type        string
	Amount      string
	AmountClass string
}

type reportContext struct {
	GeneratedDate     string
	TotalTransactions int
	TotalIncome       string
	TotalExpenses     string
	NetAmount         string
	NetClass          string
	UserName          string
	Rows              []reportRow
}

// GenerateReportHTML renders the print-ready financial report the app
// hands to its on-device PDF renderer.
func GenerateReportHTML(data dto.ExportData, cats map[string]models.Category) (string, error) {
	rctx := reportContext{
		GeneratedDate:     shortDate(data.ExportDate[:10]),
		TotalTransactions: data.Summary.TotalTransactions,
		TotalIncome:       "$" + formatAmount(data.Summary.TotalIncome),
		TotalExpenses:     "$" + formatAmount(data.Summary.TotalExpenses),
		NetAmount:         "$" + formatAmount(data.Summary.NetAmount),
		NetClass:          "income",
		UserName:          data.User.Name,
	}
	if data.Summary.NetAmount < 0 {
		rctx.NetClass = "expense"
	}

	for _, t := range data.Transactions {
		name, typ := categoryDisplay(cats, t.CategoryID)
		amountClass := "expense"
		if typ == models.CategoryTypeIncome {
			amountClass = "income"
		}
		rctx.Rows = append(rctx.Rows, reportRow{
			Date:        shortDate(t.Date),
			Description: t.Description,
			Category:    name,
			Type:        typ,
			Amount:      "$" + formatAmount(t.Amount),
			AmountClass: amountClass,
		})
	}

	var b strings.Builder
	if err := reportTemplate.Execute(&b, rctx); err != nil {
		return "", err
	}
	return b.String(), nil
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Budget Buddy - Financial Report</title>
    <style>
      body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 0; padding: 20px; background: #f8fafc; }
      .container { max-width: 800px; margin: 0 auto; background: white; border-radius: 12px; overflow: hidden; }
      .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; }
      .header h1 { margin: 0; font-size: 28px; font-weight: 700; }
      .header p { margin: 10px 0 0 0; opacity: 0.9; font-size: 16px; }
      .summary { background: #f8fafc; padding: 30px; border-bottom: 1px solid #e2e8f0; }
      .summary h2 { margin: 0 0 20px 0; color: #1e293b; font-size: 20px; }
      .summary-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 20px; }
      .summary-item { text-align: center; background: white; padding: 20px; border-radius: 8px; }
      .summary-value { font-size: 24px; font-weight: 700; margin-bottom: 5px; }
      .summary-label { font-size: 14px; color: #64748b; text-transform: uppercase; letter-spacing: 0.5px; }
      .income { color: #059669; }
      .expense { color: #dc2626; }
      .neutral { color: #1e293b; }
      .content { padding: 30px; }
      .content h2 { margin: 0 0 20px 0; color: #1e293b; font-size: 20px; }
      table { width: 100%; border-collapse: collapse; margin-top: 20px; background: white; }
      th, td { padding: 12px 16px; text-align: left; border-bottom: 1px solid #e2e8f0; }
      th { background: #f1f5f9; font-weight: 600; color: #475569; font-size: 14px; text-transform: uppercase; letter-spacing: 0.5px; }
      td { font-size: 14px; color: #334155; }
      .footer { background: #f8fafc; padding: 20px 30px; text-align: center; color: #64748b; font-size: 14px; border-top: 1px solid #e2e8f0; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1>Budget Buddy</h1>
        <p>Financial Report - {{.GeneratedDate}}</p>
      </div>
      <div class="summary">
        <h2>Financial Summary</h2>
        <div class="summary-grid">
          <div class="summary-item">
            <div class="summary-value neutral">{{.TotalTransactions}}</div>
            <div class="summary-label">Transactions</div>
          </div>
          <div class="summary-item">
            <div class="summary-value income">{{.TotalIncome}}</div>
            <div class="summary-label">Total Income</div>
          </div>
          <div class="summary-item">
            <div class="summary-value expense">{{.TotalExpenses}}</div>
            <div class="summary-label">Total Expenses</div>
          </div>
          <div class="summary-item">
            <div class="summary-value {{.NetClass}}">{{.NetAmount}}</div>
            <div class="summary-label">Net Amount</div>
          </div>
        </div>
      </div>
      <div class="content">
        <h2>Transaction Details</h2>
        <table>
          <thead>
            <tr>
              <th>Date</th>
              <th>Description</th>
              <th>Category</th>
              <th>Type</th>
              <th>Amount</th>
            </tr>
          </thead>
          <tbody>
            {{range .Rows}}<tr>
              <td>{{.Date}}</td>
              <td>{{.Description}}</td>
              <td>{{.Category}}</td>
              <td style="text-transform: capitalize;">{{.Type}}</td>
              <td class="{{.AmountClass}}">{{.Amount}}</td>
            </tr>
            {{end}}
          </tbody>
        </table>
      </div>
      <div class="footer">
        <p>Generated by Budget Buddy for {{.UserName}} on {{.GeneratedDate}}</p>
      </div>
    </div>
  </body>
</html>
`))

func categoriesByID(cats []models.Category) map[string]models.Category {
	byID := make(map[string]models.Category, len(cats))
	for _, c := range cats {
		byID[c.CategoryID] = c
	}
	return byID
}
