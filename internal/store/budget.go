package store

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kaiseldev-sudo/budget-buddy/internal/errs"
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
)

type budgetStore struct {
	client *firestore.Client
}

func NewBudgetStore(client *firestore.Client) *budgetStore {
	return &budgetStore{client: client}
}

func (s *budgetStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("budgets")
}

// ListActive returns active budgets newest-first. Sorting happens in
// memory to avoid a composite index on (isActive, createdAt).
func (s *budgetStore) ListActive(ctx context.Context, uid string) ([]models.Budget, error) {
	docs, err := s.collection(uid).Where("isActive", "==", true).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list budgets", err)
	}
	budgets := make([]models.Budget, 0, len(docs))
	for _, d := range docs {
		var b models.Budget
		if err := d.DataTo(&b); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse budget data", err)
		}
		budgets = append(budgets, b)
	}
	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].CreatedAt.After(budgets[j].CreatedAt)
	})
	return budgets, nil
}

func (s *budgetStore) Get(ctx context.Context, uid, budgetID string) (*models.Budget, error) {
	doc, err := s.collection(uid).Doc(budgetID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("budget not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get budget", err)
	}
	var b models.Budget
	if err := doc.DataTo(&b); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse budget data", err)
	}
	return &b, nil
}

func (s *budgetStore) Create(ctx context.Context, uid string, b *models.Budget) error {
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	_, err := s.collection(uid).Doc(b.BudgetID).Create(ctx, b)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create budget", err)
	}
	return nil
}

func (s *budgetStore) Update(ctx context.Context, uid string, b *models.Budget) error {
	b.UpdatedAt = time.Now()
	_, err := s.collection(uid).Doc(b.BudgetID).Set(ctx, b)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update budget", err)
	}
	return nil
}

func (s *budgetStore) Delete(ctx context.Context, uid, budgetID string) error {
	_, err := s.collection(uid).Doc(budgetID).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete budget", err)
	}
	return nil
}
