package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kaiseldev-sudo/budget-buddy/internal/dto"
	"github.com/kaiseldev-sudo/budget-buddy/internal/errs"
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
	"github.com/kaiseldev-sudo/budget-buddy/pkg/helpers"
)

type fakeBudgetStore struct {
	budgets []models.Budget
	created *models.Budget
	updated *models.Budget
	err     error
}

func (f *fakeBudgetStore) ListActive(_ context.Context, _ string) ([]models.Budget, error) {
	return f.budgets, f.err
}

func (f *fakeBudgetStore) Get(_ context.Context, _, budgetID string) (*models.Budget, error) {
	for i := range f.budgets {
		if f.budgets[i].BudgetID == budgetID {
			b := f.budgets[i]
			return &b, nil
		}
	}
	return nil, errs.NewNotFoundError("budget not found")
}

func (f *fakeBudgetStore) Create(_ context.Context, _ string, b *models.Budget) error {
	f.created = b
	return f.err
}

func (f *fakeBudgetStore) Update(_ context.Context, _ string, b *models.Budget) error {
	f.updated = b
	return f.err
}

func (f *fakeBudgetStore) Delete(_ context.Context, _, _ string) error { return f.err }

type fakeTxListStore struct {
	txs []models.Transaction
	err error
}

func (f *fakeTxListStore) List(_ context.Context, _ string, _ dto.TransactionQuery) ([]models.Transaction, error) {
	return f.txs, f.err
}

type fakeCategoryResolver struct {
	cats map[string]models.Category
	err  error
}

func (f *fakeCategoryResolver) ByID(_ context.Context) (map[string]models.Category, error) {
	return f.cats, f.err
}

type recordingBudgetNotifier struct {
	created []models.Budget
	names   []string
}

func (r *recordingBudgetNotifier) BudgetCreated(_ context.Context, _ string, b models.Budget, categoryName string) {
	r.created = append(r.created, b)
	r.names = append(r.names, categoryName)
}

// 2024-01-10 is a Wednesday; its week runs Sun 2024-01-07 through
// Sat 2024-01-13.
var evalNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func TestEvaluateBudgetsSpentAndProgress(t *testing.T) {
	budgets := []models.Budget{
		{BudgetID: "b1", CategoryID: "food", Amount: 100, Period: models.PeriodMonthly},
	}
	txs := []models.Transaction{
		{CategoryID: "food", Amount: 40, Date: "2024-01-03"},
		{CategoryID: "food", Amount: 60, Date: "2024-01-09"},
		{CategoryID: "rent", Amount: 500, Date: "2024-01-05"},
		{CategoryID: "food", Amount: 25, Date: "2023-12-30"}, // prior month
	}

	statuses := EvaluateBudgets(budgets, txs, evalNow)
	if len(statuses) != 1 {
		t.Fatalf("statuses length mismatch: got %d", len(statuses))
	}
	st := statuses[0]
	if st.Spent != 100 {
		t.Fatalf("spent mismatch: got %v", st.Spent)
	}
	if st.Remaining != 0 {
		t.Fatalf("remaining mismatch: got %v", st.Remaining)
	}
	if st.Progress != 100 {
		t.Fatalf("progress mismatch: got %v", st.Progress)
	}
}

func TestEvaluateBudgetsOverspendGoesNegative(t *testing.T) {
	budgets := []models.Budget{
		{BudgetID: "b1", CategoryID: "food", Amount: 50, Period: models.PeriodMonthly},
	}
	txs := []models.Transaction{
		{CategoryID: "food", Amount: 80, Date: "2024-01-08"},
	}

	st := EvaluateBudgets(budgets, txs, evalNow)[0]
	if st.Remaining != -30 {
		t.Fatalf("remaining mismatch: got %v", st.Remaining)
	}
	if st.Progress != 160 {
		t.Fatalf("progress mismatch: got %v", st.Progress)
	}
}

func TestEvaluateBudgetsZeroLimit(t *testing.T) {
	budgets := []models.Budget{
		{BudgetID: "b1", CategoryID: "food", Amount: 0, Period: models.PeriodMonthly},
	}
	txs := []models.Transaction{
		{CategoryID: "food", Amount: 10, Date: "2024-01-08"},
	}

	st := EvaluateBudgets(budgets, txs, evalNow)[0]
	if st.Progress != 0 {
		t.Fatalf("progress should be 0 for zero limit, got %v", st.Progress)
	}
	if st.Spent != 10 {
		t.Fatalf("spent mismatch: got %v", st.Spent)
	}
}

func TestInPeriodWindowDaily(t *testing.T) {
	if !inPeriodWindow(models.PeriodDaily, "2024-01-10", evalNow) {
		t.Fatal("today should be in the daily window")
	}
	if inPeriodWindow(models.PeriodDaily, "2024-01-09", evalNow) {
		t.Fatal("yesterday should not be in the daily window")
	}
}

func TestInPeriodWindowWeekly(t *testing.T) {
	cases := []struct {
		date string
		want bool
	}{
		{"2024-01-07", true},  // Sunday, window start
		{"2024-01-10", true},  // mid-week
		{"2024-01-13", true},  // Saturday, window end
		{"2024-01-06", false}, // Saturday before
		{"2024-01-14", false}, // Sunday after
	}
	for _, c := range cases {
		if got := inPeriodWindow(models.PeriodWeekly, c.date, evalNow); got != c.want {
			t.Fatalf("weekly window for %s: got %v, want %v", c.date, got, c.want)
		}
	}
}

func TestInPeriodWindowMonthly(t *testing.T) {
	if !inPeriodWindow(models.PeriodMonthly, "2024-01-31", evalNow) {
		t.Fatal("same month should be in the monthly window")
	}
	if inPeriodWindow(models.PeriodMonthly, "2023-12-31", evalNow) {
		t.Fatal("prior month should not be in the monthly window")
	}
}

func TestInPeriodWindowMalformedDate(t *testing.T) {
	if inPeriodWindow(models.PeriodMonthly, "not-a-date", evalNow) {
		t.Fatal("malformed date should never match")
	}
}

func TestCreateBudgetValid(t *testing.T) {
	store := &fakeBudgetStore{}
	cats := &fakeCategoryResolver{cats: map[string]models.Category{
		"food": {CategoryID: "food", Name: "Food & Dining", Type: models.CategoryTypeExpense},
	}}
	notifier := &recordingBudgetNotifier{}
	svc := NewBudgetService(store, &fakeTxListStore{}, cats, notifier)

	b, err := svc.CreateBudget(helpers.TestCtx(), "uid-1", dto.CreateBudgetRequest{
		CategoryID: "food",
		Amount:     200,
		Period:     models.PeriodMonthly,
		StartDate:  "2024-01-01",
	})
	if err != nil {
		t.Fatalf("CreateBudget returned error: %v", err)
	}
	if b.BudgetID == "" {
		t.Fatal("budget ID was not assigned")
	}
	if !b.IsActive {
		t.Fatal("new budget should be active")
	}
	if store.created == nil || store.created.BudgetID != b.BudgetID {
		t.Fatalf("store did not receive the budget: %+v", store.created)
	}
	if len(notifier.created) != 1 || notifier.names[0] != "Food & Dining" {
		t.Fatalf("budget-created notification mismatch: %+v", notifier)
	}
}

func TestCreateBudgetRejectsBadInput(t *testing.T) {
	cats := &fakeCategoryResolver{cats: map[string]models.Category{
		"food": {CategoryID: "food", Name: "Food"},
	}}
	svc := NewBudgetService(&fakeBudgetStore{}, &fakeTxListStore{}, cats, nil)

	cases := []dto.CreateBudgetRequest{
		{CategoryID: "food", Amount: 0, Period: models.PeriodMonthly},
		{CategoryID: "food", Amount: -5, Period: models.PeriodMonthly},
		{CategoryID: "food", Amount: 10, Period: "yearly"},
		{CategoryID: "food", Amount: 10, Period: models.PeriodDaily, StartDate: "01/05/2024"},
		{CategoryID: "nope", Amount: 10, Period: models.PeriodDaily},
	}
	for i, req := range cases {
		_, err := svc.CreateBudget(helpers.TestCtx(), "uid-1", req)
		var vErr *errs.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestUpdateBudgetPatchesFields(t *testing.T) {
	store := &fakeBudgetStore{budgets: []models.Budget{
		{BudgetID: "b1", CategoryID: "food", Amount: 100, Period: models.PeriodMonthly, IsActive: true},
	}}
	svc := NewBudgetService(store, &fakeTxListStore{}, &fakeCategoryResolver{}, nil)

	b, err := svc.UpdateBudget(helpers.TestCtx(), "uid-1", "b1", dto.UpdateBudgetRequest{
		Amount:   helpers.Ptr(250.0),
		IsActive: helpers.Ptr(false),
	})
	if err != nil {
		t.Fatalf("UpdateBudget returned error: %v", err)
	}
	if b.Amount != 250 || b.IsActive {
		t.Fatalf("patch not applied: %+v", b)
	}
	if b.Period != models.PeriodMonthly || b.CategoryID != "food" {
		t.Fatalf("untouched fields changed: %+v", b)
	}
	if store.updated == nil {
		t.Fatal("store Update was not called")
	}
}

func TestStatusForCategoryFilters(t *testing.T) {
	store := &fakeBudgetStore{budgets: []models.Budget{
		{BudgetID: "b1", CategoryID: "food", Amount: 100, Period: models.PeriodMonthly},
		{BudgetID: "b2", CategoryID: "rent", Amount: 900, Period: models.PeriodMonthly},
	}}
	svc := NewBudgetService(store, &fakeTxListStore{}, &fakeCategoryResolver{}, nil)

	statuses, err := svc.StatusForCategory(helpers.TestCtx(), "uid-1", "food")
	if err != nil {
		t.Fatalf("StatusForCategory returned error: %v", err)
	}
	if len(statuses) != 1 || statuses[0].BudgetID != "b1" {
		t.Fatalf("filter mismatch: %+v", statuses)
	}
}

func TestGetStatusPropagatesStoreError(t *testing.T) {
	store := &fakeBudgetStore{err: errors.New("store down")}
	svc := NewBudgetService(store, &fakeTxListStore{}, &fakeCategoryResolver{}, nil)

	if _, err := svc.GetStatus(helpers.TestCtx(), "uid-1"); err == nil {
		t.Fatal("expected error")
	}
}
