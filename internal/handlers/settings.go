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

type settingsService interface {
	GetSettings(ctx context.Context, uid string) (*models.UserSettings, error)
	UpdateSettings(ctx context.Context, uid string, ns models.NotificationSettings) (*models.UserSettings, error)
	RegisterPushToken(ctx context.Context, uid, token string) error
}

type settingsHandlers struct {
	ResponseHandler response.ResponseHandler
	SettingsSvc     settingsService
}

func NewSettingsHandlers(deps *Deps) *settingsHandlers {
	return &settingsHandlers{
		ResponseHandler: deps.ResponseHandler,
		SettingsSvc:     deps.SettingsSvc,
	}
}

func (h *settingsHandlers) SettingsRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/notifications", h.GetSettings)
	r.Put("/notifications", h.UpdateSettings)
	r.Put("/push-token", h.RegisterPushToken)
	return r
}

func (h *settingsHandlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	us, err := h.SettingsSvc.GetSettings(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, us)
}

func (h *settingsHandlers) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateNotificationSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	us, err := h.SettingsSvc.UpdateSettings(r.Context(), uid, req.NotificationSettings)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, us)
}

func (h *settingsHandlers) RegisterPushToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPushTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	if err := h.SettingsSvc.RegisterPushToken(r.Context(), uid, req.PushToken); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
