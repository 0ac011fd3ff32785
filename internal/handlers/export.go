package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaiseldev-sudo/budget-buddy/internal/dto"
	"github.com/kaiseldev-sudo/budget-buddy/internal/middleware"
	"github.com/kaiseldev-sudo/budget-buddy/internal/response"
)

type exportService interface {
	Export(ctx context.Context, uid string, opts dto.ExportOptions) (dto.ExportResult, error)
}

type exportHandlers struct {
	ResponseHandler response.ResponseHandler
	ExportSvc       exportService
}

func NewExportHandlers(deps *Deps) *exportHandlers {
	return &exportHandlers{
		ResponseHandler: deps.ResponseHandler,
		ExportSvc:       deps.ExportSvc,
	}
}

func (h *exportHandlers) ExportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Export)
	return r
}

func (h *exportHandlers) Export(w http.ResponseWriter, r *http.Request) {
	var opts dto.ExportOptions
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	result, err := h.ExportSvc.Export(r.Context(), uid, opts)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}
