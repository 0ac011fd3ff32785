package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kaiseldev-sudo/budget-buddy/internal/dto"
	"github.com/kaiseldev-sudo/budget-buddy/internal/errs"
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
	"github.com/kaiseldev-sudo/budget-buddy/pkg/logger"
)

const dateLayout = "2006-01-02"

type budgetBStore interface {
	ListActive(ctx context.Context, uid string) ([]models.Budget, error)
	Get(ctx context.Context, uid, budgetID string) (*models.Budget, error)
	Create(ctx context.Context, uid string, b *models.Budget) error
	Update(ctx context.Context, uid string, b *models.Budget) error
	Delete(ctx context.Context, uid, budgetID string) error
}

type budgetTransactionStore interface {
	List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error)
}

type budgetCategoryResolver interface {
	ByID(ctx context.Context) (map[string]models.Category, error)
}

type budgetNotifier interface {
	BudgetCreated(ctx context.Context, uid string, b models.Budget, categoryName string)
}

type budgetService struct {
	store      budgetBStore
	txs        budgetTransactionStore
	categories budgetCategoryResolver
	notifier   budgetNotifier
}

func NewBudgetService(store budgetBStore, txs budgetTransactionStore, categories budgetCategoryResolver, notifier budgetNotifier) *budgetService {
	return &budgetService{store: store, txs: txs, categories: categories, notifier: notifier}
}

// --- Public service methods ---

func (s *budgetService) ListBudgets(ctx context.Context, uid string) ([]models.Budget, error) {
	return s.store.ListActive(ctx, uid)
}

func (s *budgetService) CreateBudget(ctx context.Context, uid string, req dto.CreateBudgetRequest) (*models.Budget, error) {
	if req.Amount <= 0 {
		return nil, errs.NewValidationError("amount must be greater than zero")
	}
	if err := validatePeriod(req.Period); err != nil {
		return nil, err
	}
	if req.StartDate != "" {
		if _, err := time.Parse(dateLayout, req.StartDate); err != nil {
			return nil, errs.NewValidationError("startDate must be YYYY-MM-DD")
		}
	}
	cats, err := s.categories.ByID(ctx)
	if err != nil {
		return nil, err
	}
	cat, ok := cats[req.CategoryID]
	if !ok {
		return nil, errs.NewValidationError("unknown category: " + req.CategoryID)
	}

	startDate := req.StartDate
	if startDate == "" {
		startDate = time.Now().Format(dateLayout)
	}
	b := &models.Budget{
		BudgetID:   uuid.New().String(),
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Period:     req.Period,
		StartDate:  startDate,
		EndDate:    req.EndDate,
		IsActive:   true,
	}
	if err := s.store.Create(ctx, uid, b); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.BudgetCreated(ctx, uid, *b, cat.Name)
	}
	return b, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, uid, budgetID string, req dto.UpdateBudgetRequest) (*models.Budget, error) {
	b, err := s.store.Get(ctx, uid, budgetID)
	if err != nil {
		return nil, err
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, errs.NewValidationError("amount must be greater than zero")
		}
		b.Amount = *req.Amount
	}
	if req.Period != nil {
		if err := validatePeriod(*req.Period); err != nil {
			return nil, err
		}
		b.Period = *req.Period
	}
	if req.EndDate != nil {
		b.EndDate = *req.EndDate
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	if err := s.store.Update(ctx, uid, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, uid, budgetID string) error {
	return s.store.Delete(ctx, uid, budgetID)
}

// GetStatus evaluates every active budget against the transaction
// history for its current period window.
func (s *budgetService) GetStatus(ctx context.Context, uid string) ([]dto.BudgetStatus, error) {
	budgets, err := s.store.ListActive(ctx, uid)
	if err != nil {
		return nil, err
	}
	txs, err := s.txs.List(ctx, uid, dto.TransactionQuery{})
	if err != nil {
		return nil, err
	}
	return EvaluateBudgets(budgets, txs, time.Now()), nil
}

// StatusForCategory evaluates only the budgets watching one category.
// Used for budget alerts after a transaction write.
func (s *budgetService) StatusForCategory(ctx context.Context, uid, categoryID string) ([]dto.BudgetStatus, error) {
	statuses, err := s.GetStatus(ctx, uid)
	if err != nil {
		return nil, err
	}
	matched := statuses[:0]
	for _, st := range statuses {
		if st.CategoryID == categoryID {
			matched = append(matched, st)
		}
	}
	if len(matched) == 0 {
		logger.FromContext(ctx).Debug("no budgets watch category", "category_id", categoryID)
	}
	return matched, nil
}

// --- Evaluation ---

// EvaluateBudgets derives spent/remaining/progress for each budget
// over its current period window. Pure and total: it never fails, and
// a budget with no matching transactions yields spent 0, progress 0.
func EvaluateBudgets(budgets []models.Budget, txs []models.Transaction, now time.Time) []dto.BudgetStatus {
	statuses := make([]dto.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		var spent float64
		for _, t := range txs {
			if t.CategoryID != b.CategoryID {
				continue
			}
			if !inPeriodWindow(b.Period, t.Date, now) {
				continue
			}
			spent += t.Amount
		}

		progress := 0.0
		if b.Amount > 0 {
			progress = spent / b.Amount * 100
		}
		statuses = append(statuses, dto.BudgetStatus{
			Budget:    b,
			Spent:     spent,
			Remaining: b.Amount - spent,
			Progress:  progress,
		})
	}
	return statuses
}

// inPeriodWindow reports whether a YYYY-MM-DD transaction date falls in
// the budget period's current window. Dates compare lexicographically,
// which matches chronological order for this layout. A malformed date
// never matches.
func inPeriodWindow(period, date string, now time.Time) bool {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return false
	}
	today := now.Format(dateLayout)

	switch period {
	case models.PeriodDaily:
		return date == today
	case models.PeriodWeekly:
		// Week runs from the most recent Sunday through Saturday,
		// inclusive on both ends.
		weekStart := now.AddDate(0, 0, -int(now.Weekday()))
		weekEnd := weekStart.AddDate(0, 0, 6)
		return date >= weekStart.Format(dateLayout) && date <= weekEnd.Format(dateLayout)
	case models.PeriodMonthly:
		return len(date) >= 7 && date[:7] == now.Format("2006-01")
	default:
		return false
	}
}

func validatePeriod(period string) error {
	switch period {
	case models.PeriodDaily, models.PeriodWeekly, models.PeriodMonthly:
		return nil
	}
	return errs.NewValidationError("period must be one of: daily, weekly, monthly")
}
