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

type categoryCStore interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, c *models.Category) error
}

type categoryService struct {
	store categoryCStore
}

func NewCategoryService(store categoryCStore) *categoryService {
	return &categoryService{store: store}
}

// Resolve returns the category reference data the app should use: the
// backend list when it has entries, otherwise the built-in default set.
// A store failure also falls back to defaults so the app keeps working
// before the categories collection has been provisioned.
func (s *categoryService) Resolve(ctx context.Context) ([]models.Category, error) {
	cats, err := s.store.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("falling back to default categories", "error", err)
		return DefaultCategories(), nil
	}
	if len(cats) == 0 {
		return DefaultCategories(), nil
	}
	return cats, nil
}

// ByID returns the resolved categories keyed by ID.
func (s *categoryService) ByID(ctx context.Context) (map[string]models.Category, error) {
	cats, err := s.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Category, len(cats))
	for _, c := range cats {
		byID[c.CategoryID] = c
	}
	return byID, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, errs.NewValidationError("name is required")
	}
	if req.Type != models.CategoryTypeIncome && req.Type != models.CategoryTypeExpense {
		return nil, errs.NewValidationError("type must be income or expense")
	}

	c := &models.Category{
		CategoryID: uuid.New().String(),
		Name:       req.Name,
		Color:      req.Color,
		Icon:       req.Icon,
		Type:       req.Type,
		CreatedAt:  time.Now(),
	}
	if err := s.store.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultCategories is the set served when the backend table is empty
// or unavailable. IDs are stable so transactions recorded against the
// defaults survive a later backfill of the collection.
func DefaultCategories() []models.Category {
	return []models.Category{
		{CategoryID: "1", Name: "Salary", Color: "#10B981", Icon: "💰", Type: models.CategoryTypeIncome},
		{CategoryID: "2", Name: "Freelance", Color: "#3B82F6", Icon: "💼", Type: models.CategoryTypeIncome},
		{CategoryID: "3", Name: "Investment", Color: "#8B5CF6", Icon: "📈", Type: models.CategoryTypeIncome},
		{CategoryID: "4", Name: "Gift", Color: "#F59E0B", Icon: "🎁", Type: models.CategoryTypeIncome},
		{CategoryID: "5", Name: "Food & Dining", Color: "#EF4444", Icon: "🍕", Type: models.CategoryTypeExpense},
		{CategoryID: "6", Name: "Transportation", Color: "#06B6D4", Icon: "🚗", Type: models.CategoryTypeExpense},
		{CategoryID: "7", Name: "Shopping", Color: "#EC4899", Icon: "🛍️", Type: models.CategoryTypeExpense},
		{CategoryID: "8", Name: "Entertainment", Color: "#F97316", Icon: "🎬", Type: models.CategoryTypeExpense},
		{CategoryID: "9", Name: "Bills & Utilities", Color: "#6B7280", Icon: "⚡", Type: models.CategoryTypeExpense},
		{CategoryID: "10", Name: "Healthcare", Color: "#DC2626", Icon: "🏥", Type: models.CategoryTypeExpense},
		{CategoryID: "11", Name: "Education", Color: "#7C3AED", Icon: "📚", Type: models.CategoryTypeExpense},
		{CategoryID: "12", Name: "Travel", Color: "#059669", Icon: "✈️", Type: models.CategoryTypeExpense},
	}
}
