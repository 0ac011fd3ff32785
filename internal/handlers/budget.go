package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaiseldev-sudo/budget-buddy/internal/dto"
	"github.com/kaiseldev-sudo/budget-buddy/internal/middleware"
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
	"github.com/kaiseldev-sudo/budget-buddy/internal/response"
)

type budgetService interface {
	ListBudgets(ctx context.Context, uid string) ([]models.Budget, error)
	CreateBudget(ctx context.Context, uid string, req dto.CreateBudgetRequest) (*models.Budget, error)
	UpdateBudget(ctx context.Context, uid, budgetID string, req dto.UpdateBudgetRequest) (*models.Budget, error)
	DeleteBudget(ctx context.Context, uid, budgetID string) error
	GetStatus(ctx context.Context, uid string) ([]dto.BudgetStatus, error)
}

type budgetHandlers struct {
	ResponseHandler response.ResponseHandler
	BudgetSvc       budgetService
}

func NewBudgetHandlers(deps *Deps) *budgetHandlers {
	return &budgetHandlers{
		ResponseHandler: deps.ResponseHandler,
		BudgetSvc:       deps.BudgetSvc,
	}
}

func (h *budgetHandlers) BudgetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListBudgets)
	r.Post("/", h.CreateBudget)
	r.Get("/status", h.GetStatus) // must be before /{budgetId}
	r.Put("/{budgetId}", h.UpdateBudget)
	r.Delete("/{budgetId}", h.DeleteBudget)
	return r
}

func (h *budgetHandlers) ListBudgets(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	budgets, err := h.BudgetSvc.ListBudgets(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, budgets)
}

func (h *budgetHandlers) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	b, err := h.BudgetSvc.CreateBudget(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, b)
}

func (h *budgetHandlers) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetId")
	var req dto.UpdateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	b, err := h.BudgetSvc.UpdateBudget(r.Context(), uid, budgetID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, b)
}

func (h *budgetHandlers) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetId")
	uid := middleware.UID(r.Context())
	if err := h.BudgetSvc.DeleteBudget(r.Context(), uid, budgetID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// GetStatus returns every active budget with its spent, remaining and
// progress figures for the current period window.
func (h *budgetHandlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	statuses, err := h.BudgetSvc.GetStatus(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, statuses)
}
