package services

import (
	"context"
	"fmt"

	"github.com/kaiseldev-sudo/budget-buddy/internal/dto"
	"github.com/kaiseldev-sudo/budget-buddy/internal/errs"
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
	"github.com/kaiseldev-sudo/budget-buddy/pkg/logger"
)

type pushSender interface {
	Send(ctx context.Context, token string, push dto.PushMessage) error
}

type notificationSettingsStore interface {
	Get(ctx context.Context, uid string) (*models.UserSettings, error)
	Upsert(ctx context.Context, us *models.UserSettings) error
}

type notificationService struct {
	sender   pushSender
	settings notificationSettingsStore
}

func NewNotificationService(sender pushSender, settings notificationSettingsStore) *notificationService {
	return &notificationService{sender: sender, settings: settings}
}

// --- Settings ---

// GetSettings returns the user's stored settings, or the defaults when
// nothing has been saved yet.
func (s *notificationService) GetSettings(ctx context.Context, uid string) (*models.UserSettings, error) {
	us, err := s.settings.Get(ctx, uid)
	if err != nil {
		if _, ok := err.(*errs.NotFoundError); ok {
			return &models.UserSettings{
				UID:                  uid,
				NotificationSettings: models.DefaultNotificationSettings(),
			}, nil
		}
		return nil, err
	}
	return us, nil
}

func (s *notificationService) UpdateSettings(ctx context.Context, uid string, ns models.NotificationSettings) (*models.UserSettings, error) {
	if ns.BudgetThreshold < 0 || ns.BudgetThreshold > 100 {
		return nil, errs.NewValidationError("budgetThreshold must be between 0 and 100")
	}
	us, err := s.GetSettings(ctx, uid)
	if err != nil {
		return nil, err
	}
	us.NotificationSettings = ns
	if err := s.settings.Upsert(ctx, us); err != nil {
		return nil, err
	}
	return us, nil
}

// RegisterPushToken stores the device token FCM deliveries target.
func (s *notificationService) RegisterPushToken(ctx context.Context, uid, token string) error {
	if token == "" {
		return errs.NewValidationError("pushToken is required")
	}
	us, err := s.GetSettings(ctx, uid)
	if err != nil {
		return err
	}
	us.PushToken = token
	return s.settings.Upsert(ctx, us)
}

// --- Pushes ---
//
// All sends are best-effort: the triggering mutation has already
// committed, so failures are logged and swallowed.

func (s *notificationService) TransactionAdded(ctx context.Context, uid string, t models.Transaction, category models.Category) {
	us, ok := s.deliverable(ctx, uid)
	if !ok || !us.NotificationSettings.TransactionNotifications {
		return
	}

	kind, emoji := "Expense", "💸"
	if category.Type == models.CategoryTypeIncome {
		kind, emoji = "Income", "💰"
	}
	s.send(ctx, us.PushToken, dto.PushMessage{
		Type:  dto.PushTypeTransaction,
		Title: fmt.Sprintf("%s %s Added", emoji, kind),
		Body:  fmt.Sprintf("%s - $%s", t.Description, formatAmount(t.Amount)),
		Data: map[string]string{
			"type":          dto.PushTypeTransaction,
			"transactionId": t.TransactionID,
		},
	})
}

func (s *notificationService) BudgetCreated(ctx context.Context, uid string, b models.Budget, categoryName string) {
	us, ok := s.deliverable(ctx, uid)
	if !ok || !us.NotificationSettings.BudgetNotifications {
		return
	}

	s.send(ctx, us.PushToken, dto.PushMessage{
		Type:  dto.PushTypeBudget,
		Title: "📊 Budget Created",
		Body:  fmt.Sprintf("%s budget set to $%s for %s", categoryName, formatAmount(b.Amount), b.Period),
		Data: map[string]string{
			"type":     dto.PushTypeBudget,
			"budgetId": b.BudgetID,
		},
	})
}

// BudgetAlerts pushes an exceeded alert for any budget at or past its
// limit, and a warning for any past the user's threshold percentage.
func (s *notificationService) BudgetAlerts(ctx context.Context, uid string, statuses []dto.BudgetStatus, categoryName string) {
	us, ok := s.deliverable(ctx, uid)
	if !ok || !us.NotificationSettings.BudgetAlerts {
		return
	}

	for _, st := range statuses {
		switch {
		case st.Progress >= 100:
			s.send(ctx, us.PushToken, dto.PushMessage{
				Type:  dto.PushTypeBudgetAlert,
				Title: "⚠️ Budget Exceeded!",
				Body:  fmt.Sprintf("%s budget has been exceeded by $%s", categoryName, formatAmount(st.Spent-st.Amount)),
				Data: map[string]string{
					"type":     dto.PushTypeBudgetAlert,
					"budgetId": st.BudgetID,
				},
			})
		case st.Progress >= us.NotificationSettings.BudgetThreshold:
			s.send(ctx, us.PushToken, dto.PushMessage{
				Type:  dto.PushTypeBudgetAlert,
				Title: "🚨 Budget Warning",
				Body: fmt.Sprintf("%s budget is %.1f%% used ($%s / $%s)",
					categoryName, st.Progress, formatAmount(st.Spent), formatAmount(st.Amount)),
				Data: map[string]string{
					"type":     dto.PushTypeBudgetAlert,
					"budgetId": st.BudgetID,
				},
			})
		}
	}
}

// deliverable loads settings and reports whether this user can receive
// pushes at all (a registered device token exists).
func (s *notificationService) deliverable(ctx context.Context, uid string) (*models.UserSettings, bool) {
	if s.sender == nil {
		return nil, false
	}
	us, err := s.GetSettings(ctx, uid)
	if err != nil {
		logger.FromContext(ctx).Warn("skipping push, settings unavailable", "uid", uid, "error", err)
		return nil, false
	}
	if us.PushToken == "" {
		return nil, false
	}
	return us, true
}

func (s *notificationService) send(ctx context.Context, token string, push dto.PushMessage) {
	if err := s.sender.Send(ctx, token, push); err != nil {
		logger.FromContext(ctx).Warn("push delivery failed", "push_type", push.Type, "error", err)
	}
}
