package services

import (
	"context"
	"sort"
	"time"

	"github.com/kaiseldev-sudo/budget-buddy/internal/dto"
	"github.com/kaiseldev-sudo/budget-buddy/internal/errs"
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
)

const defaultTrendMonths = 6

type reportTransactionStore interface {
	List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error)
}

type reportCategoryResolver interface {
	ByID(ctx context.Context) (map[string]models.Category, error)
}

type reportService struct {
	txs        reportTransactionStore
	categories reportCategoryResolver
}

func NewReportService(txs reportTransactionStore, categories reportCategoryResolver) *reportService {
	return &reportService{txs: txs, categories: categories}
}

// GetTrend returns per-month income and expense totals for the last
// `months` calendar months, oldest first, including the current month.
func (s *reportService) GetTrend(ctx context.Context, uid string, months int) (dto.TrendResult, error) {
	if months <= 0 {
		months = defaultTrendMonths
	}
	if months > 24 {
		return dto.TrendResult{}, errs.NewValidationError("months must be at most 24")
	}

	txs, err := s.txs.List(ctx, uid, dto.TransactionQuery{})
	if err != nil {
		return dto.TrendResult{}, err
	}
	cats, err := s.categories.ByID(ctx)
	if err != nil {
		return dto.TrendResult{}, err
	}

	return dto.TrendResult{Months: BuildTrend(txs, cats, months, time.Now())}, nil
}

func BuildTrend(txs []models.Transaction, cats map[string]models.Category, months int, now time.Time) []dto.TrendPoint {
	points := make([]dto.TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		// Anchor on the first of the month so AddDate never spills
		// into a neighboring month on the 29th-31st.
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		key := m.Format("2006-01")

		point := dto.TrendPoint{Month: key, Label: m.Format("Jan")}
		for _, t := range txs {
			if len(t.Date) < 7 || t.Date[:7] != key {
				continue
			}
			if cats[t.CategoryID].Type == models.CategoryTypeIncome {
				point.Income += t.Amount
			} else {
				point.Expenses += t.Amount
			}
		}
		points = append(points, point)
	}
	return points
}

// GetBreakdown returns the current month's expense total per category,
// largest first, with each category's share of the total.
func (s *reportService) GetBreakdown(ctx context.Context, uid string) (dto.BreakdownResult, error) {
	txs, err := s.txs.List(ctx, uid, dto.TransactionQuery{})
	if err != nil {
		return dto.BreakdownResult{}, err
	}
	cats, err := s.categories.ByID(ctx)
	if err != nil {
		return dto.BreakdownResult{}, err
	}
	return BuildBreakdown(txs, cats, time.Now()), nil
}

func BuildBreakdown(txs []models.Transaction, cats map[string]models.Category, now time.Time) dto.BreakdownResult {
	month := now.Format("2006-01")
	totals := map[string]float64{}
	var total float64

	for _, t := range txs {
		if len(t.Date) < 7 || t.Date[:7] != month {
			continue
		}
		cat, ok := cats[t.CategoryID]
		if !ok || cat.Type != models.CategoryTypeExpense {
			continue
		}
		totals[t.CategoryID] += t.Amount
		total += t.Amount
	}

	items := make([]dto.BreakdownItem, 0, len(totals))
	for categoryID, amount := range totals {
		cat := cats[categoryID]
		item := dto.BreakdownItem{
			CategoryID: categoryID,
			Name:       cat.Name,
			Color:      cat.Color,
			Icon:       cat.Icon,
			Amount:     amount,
		}
		if total > 0 {
			item.Percentage = amount / total * 100
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Amount > items[j].Amount
	})

	return dto.BreakdownResult{Total: total, Items: items}
}
