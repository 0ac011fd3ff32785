package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaiseldev-sudo/budget-buddy/internal/dto"
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
	"github.com/kaiseldev-sudo/budget-buddy/internal/response"
)

type categoryService interface {
	Resolve(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error)
}

type categoryHandlers struct {
	ResponseHandler response.ResponseHandler
	CategorySvc     categoryService
}

func NewCategoryHandlers(deps *Deps) *categoryHandlers {
	return &categoryHandlers{
		ResponseHandler: deps.ResponseHandler,
		CategorySvc:     deps.CategorySvc,
	}
}

func (h *categoryHandlers) CategoryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListCategories)
	r.Post("/", h.CreateCategory)
	return r
}

func (h *categoryHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.CategorySvc.Resolve(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, cats)
}

func (h *categoryHandlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	cat, err := h.CategorySvc.CreateCategory(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, cat)
}
