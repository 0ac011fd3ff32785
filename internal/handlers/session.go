package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaiseldev-sudo/budget-buddy/internal/dto"
	"github.com/kaiseldev-sudo/budget-buddy/internal/middleware"
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
	"github.com/kaiseldev-sudo/budget-buddy/internal/response"
)

type sessionService interface {
	Start(ctx context.Context, uid string) (*models.Session, error)
	Extend(ctx context.Context, uid string) (*models.Session, error)
	Status(ctx context.Context, uid string) (dto.SessionStatus, error)
	SignOut(ctx context.Context, uid string)
}

type sessionHandlers struct {
	ResponseHandler response.ResponseHandler
	SessionSvc      sessionService
}

func NewSessionHandlers(deps *Deps) *sessionHandlers {
	return &sessionHandlers{
		ResponseHandler: deps.ResponseHandler,
		SessionSvc:      deps.SessionSvc,
	}
}

func (h *sessionHandlers) SessionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/start", h.Start)
	r.Post("/extend", h.Extend)
	r.Get("/", h.Status)
	r.Delete("/", h.SignOut)
	return r
}

func (h *sessionHandlers) Start(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	sess, err := h.SessionSvc.Start(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, sess)
}

// Extend resets the idle-expiry window; the app calls this on user
// activity.
func (h *sessionHandlers) Extend(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	sess, err := h.SessionSvc.Extend(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, sess)
}

func (h *sessionHandlers) Status(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	status, err := h.SessionSvc.Status(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, status)
}

func (h *sessionHandlers) SignOut(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	h.SessionSvc.SignOut(r.Context(), uid)
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
