package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kaiseldev-sudo/budget-buddy/internal/dto"
	"github.com/kaiseldev-sudo/budget-buddy/internal/errs"
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
)

type transactionTStore interface {
	List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error)
	Create(ctx context.Context, uid string, t *models.Transaction) error
	Delete(ctx context.Context, uid, transactionID string) error
}

type transactionCategoryResolver interface {
	ByID(ctx context.Context) (map[string]models.Category, error)
}

type transactionNotifier interface {
	TransactionAdded(ctx context.Context, uid string, t models.Transaction, category models.Category)
	BudgetAlerts(ctx context.Context, uid string, statuses []dto.BudgetStatus, categoryName string)
}

type transactionBudgetEvaluator interface {
	StatusForCategory(ctx context.Context, uid, categoryID string) ([]dto.BudgetStatus, error)
}

type transactionService struct {
	store      transactionTStore
	categories transactionCategoryResolver
	budgets    transactionBudgetEvaluator
	notifier   transactionNotifier
}

func NewTransactionService(store transactionTStore, categories transactionCategoryResolver, budgets transactionBudgetEvaluator, notifier transactionNotifier) *transactionService {
	return &transactionService{store: store, categories: categories, budgets: budgets, notifier: notifier}
}

func (s *transactionService) ListTransactions(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error) {
	if q.DateFrom != "" {
		if _, err := time.Parse(dateLayout, q.DateFrom); err != nil {
			return nil, errs.NewValidationError("from must be YYYY-MM-DD")
		}
	}
	if q.DateTo != "" {
		if _, err := time.Parse(dateLayout, q.DateTo); err != nil {
			return nil, errs.NewValidationError("to must be YYYY-MM-DD")
		}
	}
	return s.store.List(ctx, uid, q)
}

func (s *transactionService) CreateTransaction(ctx context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	if req.Amount <= 0 {
		return nil, errs.NewValidationError("amount must be greater than zero")
	}
	if req.Description == "" {
		return nil, errs.NewValidationError("description is required")
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, errs.NewValidationError("date must be YYYY-MM-DD")
	}
	cats, err := s.categories.ByID(ctx)
	if err != nil {
		return nil, err
	}
	cat, ok := cats[req.CategoryID]
	if !ok {
		return nil, errs.NewValidationError("unknown category: " + req.CategoryID)
	}

	t := &models.Transaction{
		TransactionID: uuid.New().String(),
		CategoryID:    req.CategoryID,
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          req.Date,
		ReceiptURL:    req.ReceiptURL,
	}
	if err := s.store.Create(ctx, uid, t); err != nil {
		return nil, err
	}

	s.notifyAfterCreate(ctx, uid, *t, cat)
	return t, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, uid, transactionID string) error {
	return s.store.Delete(ctx, uid, transactionID)
}

// notifyAfterCreate fans out the transaction-added push and re-checks
// budgets watching the transaction's category. Best-effort: the write
// has already succeeded, so notification problems are only logged
// inside the notifier.
func (s *transactionService) notifyAfterCreate(ctx context.Context, uid string, t models.Transaction, cat models.Category) {
	if s.notifier == nil {
		return
	}
	s.notifier.TransactionAdded(ctx, uid, t, cat)

	if s.budgets == nil {
		return
	}
	statuses, err := s.budgets.StatusForCategory(ctx, uid, t.CategoryID)
	if err != nil {
		return
	}
	s.notifier.BudgetAlerts(ctx, uid, statuses, cat.Name)
}
