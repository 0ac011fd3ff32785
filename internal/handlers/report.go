package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kaiseldev-sudo/budget-buddy/internal/dto"
	"github.com/kaiseldev-sudo/budget-buddy/internal/errs"
	"github.com/kaiseldev-sudo/budget-buddy/internal/middleware"
	"github.com/kaiseldev-sudo/budget-buddy/internal/response"
)

type reportService interface {
	GetTrend(ctx context.Context, uid string, months int) (dto.TrendResult, error)
	GetBreakdown(ctx context.Context, uid string) (dto.BreakdownResult, error)
}

type reportHandlers struct {
	ResponseHandler response.ResponseHandler
	ReportSvc       reportService
}

func NewReportHandlers(deps *Deps) *reportHandlers {
	return &reportHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReportSvc:       deps.ReportSvc,
	}
}

func (h *reportHandlers) ReportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/trend", h.GetTrend)
	r.Get("/breakdown", h.GetBreakdown)
	return r
}

func (h *reportHandlers) GetTrend(w http.ResponseWriter, r *http.Request) {
	var months int
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.ResponseHandler.HandleError(w, r, errs.NewValidationError("months must be a positive integer"))
			return
		}
		months = parsed
	}

	uid := middleware.UID(r.Context())
	trend, err := h.ReportSvc.GetTrend(r.Context(), uid, months)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, trend)
}

func (h *reportHandlers) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	breakdown, err := h.ReportSvc.GetBreakdown(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, breakdown)
}
