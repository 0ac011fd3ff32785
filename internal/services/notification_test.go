package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"cloud.google.com/go/firestore"

	"github.com/kaiseldev-sudo/budget-buddy/internal/dto"
	"github.com/kaiseldev-sudo/budget-buddy/internal/errs"
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
	"github.com/kaiseldev-sudo/budget-buddy/internal/store"
	"github.com/kaiseldev-sudo/budget-buddy/pkg/helpers"
)

type recordingPushSender struct {
	pushes []dto.PushMessage
	tokens []string
	err    error
}

func (r *recordingPushSender) Send(_ context.Context, token string, push dto.PushMessage) error {
	r.tokens = append(r.tokens, token)
	r.pushes = append(r.pushes, push)
	return r.err
}

type fakeSettingsStore struct {
	settings *models.UserSettings
	upserted *models.UserSettings
	err      error
}

func (f *fakeSettingsStore) Get(_ context.Context, _ string) (*models.UserSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.settings == nil {
		return nil, errs.NewNotFoundError("settings not found")
	}
	copied := *f.settings
	return &copied, nil
}

func (f *fakeSettingsStore) Upsert(_ context.Context, us *models.UserSettings) error {
	f.upserted = us
	f.settings = us
	return nil
}

func settingsWithToken(ns models.NotificationSettings) *fakeSettingsStore {
	return &fakeSettingsStore{settings: &models.UserSettings{
		UID:                  "uid-1",
		PushToken:            "device-token",
		NotificationSettings: ns,
	}}
}

func TestGetSettingsDefaults(t *testing.T) {
	svc := NewNotificationService(&recordingPushSender{}, &fakeSettingsStore{})

	us, err := svc.GetSettings(helpers.TestCtx(), "uid-1")
	if err != nil {
		t.Fatalf("GetSettings returned error: %v", err)
	}
	if us.NotificationSettings.BudgetThreshold != 80 {
		t.Fatalf("default threshold mismatch: %v", us.NotificationSettings.BudgetThreshold)
	}
	if !us.NotificationSettings.TransactionNotifications || !us.NotificationSettings.BudgetAlerts {
		t.Fatalf("defaults should enable notifications: %+v", us.NotificationSettings)
	}
}

func TestUpdateSettingsValidatesThreshold(t *testing.T) {
	svc := NewNotificationService(&recordingPushSender{}, &fakeSettingsStore{})

	for _, threshold := range []float64{-1, 101} {
		ns := models.DefaultNotificationSettings()
		ns.BudgetThreshold = threshold
		_, err := svc.UpdateSettings(helpers.TestCtx(), "uid-1", ns)
		var vErr *errs.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("threshold %v: expected ValidationError, got %v", threshold, err)
		}
	}
}

func TestRegisterPushToken(t *testing.T) {
	store := &fakeSettingsStore{}
	svc := NewNotificationService(&recordingPushSender{}, store)

	if err := svc.RegisterPushToken(helpers.TestCtx(), "uid-1", "new-token"); err != nil {
		t.Fatalf("RegisterPushToken returned error: %v", err)
	}
	if store.upserted == nil || store.upserted.PushToken != "new-token" {
		t.Fatalf("token not persisted: %+v", store.upserted)
	}

	var vErr *errs.ValidationError
	if err := svc.RegisterPushToken(helpers.TestCtx(), "uid-1", ""); !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for empty token, got %v", err)
	}
}

func TestTransactionAddedPush(t *testing.T) {
	sender := &recordingPushSender{}
	svc := NewNotificationService(sender, settingsWithToken(models.DefaultNotificationSettings()))

	tx := models.Transaction{TransactionID: "t1", Description: "Coffee", Amount: 4.5}
	svc.TransactionAdded(helpers.TestCtx(), "uid-1", tx, models.Category{Type: models.CategoryTypeExpense})

	if len(sender.pushes) != 1 {
		t.Fatalf("push count mismatch: %d", len(sender.pushes))
	}
	push := sender.pushes[0]
	if push.Title != "💸 Expense Added" {
		t.Fatalf("title mismatch: %q", push.Title)
	}
	if push.Body != "Coffee - $4.5" {
		t.Fatalf("body mismatch: %q", push.Body)
	}
	if push.Data["transactionId"] != "t1" {
		t.Fatalf("data mismatch: %+v", push.Data)
	}
	if sender.tokens[0] != "device-token" {
		t.Fatalf("token mismatch: %q", sender.tokens[0])
	}
}

func TestTransactionAddedIncomeTitle(t *testing.T) {
	sender := &recordingPushSender{}
	svc := NewNotificationService(sender, settingsWithToken(models.DefaultNotificationSettings()))

	svc.TransactionAdded(helpers.TestCtx(), "uid-1", models.Transaction{Description: "Paycheck", Amount: 1000},
		models.Category{Type: models.CategoryTypeIncome})

	if sender.pushes[0].Title != "💰 Income Added" {
		t.Fatalf("title mismatch: %q", sender.pushes[0].Title)
	}
}

func TestTransactionAddedRespectsToggle(t *testing.T) {
	ns := models.DefaultNotificationSettings()
	ns.TransactionNotifications = false
	sender := &recordingPushSender{}
	svc := NewNotificationService(sender, settingsWithToken(ns))

	svc.TransactionAdded(helpers.TestCtx(), "uid-1", models.Transaction{}, models.Category{})
	if len(sender.pushes) != 0 {
		t.Fatal("push sent despite disabled setting")
	}
}

func TestTransactionAddedNoTokenNoPush(t *testing.T) {
	sender := &recordingPushSender{}
	store := &fakeSettingsStore{settings: &models.UserSettings{
		UID:                  "uid-1",
		NotificationSettings: models.DefaultNotificationSettings(),
	}}
	svc := NewNotificationService(sender, store)

	svc.TransactionAdded(helpers.TestCtx(), "uid-1", models.Transaction{}, models.Category{})
	if len(sender.pushes) != 0 {
		t.Fatal("push sent without a registered device token")
	}
}

func TestBudgetAlertsThresholds(t *testing.T) {
	sender := &recordingPushSender{}
	svc := NewNotificationService(sender, settingsWithToken(models.DefaultNotificationSettings()))

	statuses := []dto.BudgetStatus{
		{Budget: models.Budget{BudgetID: "b1", Amount: 100}, Spent: 120, Progress: 120}, // exceeded
		{Budget: models.Budget{BudgetID: "b2", Amount: 100}, Spent: 85, Progress: 85},   // past 80% threshold
		{Budget: models.Budget{BudgetID: "b3", Amount: 100}, Spent: 40, Progress: 40},   // quiet
	}
	svc.BudgetAlerts(helpers.TestCtx(), "uid-1", statuses, "Food")

	if len(sender.pushes) != 2 {
		t.Fatalf("push count mismatch: %d", len(sender.pushes))
	}
	if sender.pushes[0].Title != "⚠️ Budget Exceeded!" {
		t.Fatalf("exceeded title mismatch: %q", sender.pushes[0].Title)
	}
	if sender.pushes[0].Body != "Food budget has been exceeded by $20" {
		t.Fatalf("exceeded body mismatch: %q", sender.pushes[0].Body)
	}
	if sender.pushes[1].Title != "🚨 Budget Warning" {
		t.Fatalf("warning title mismatch: %q", sender.pushes[1].Title)
	}
}

func TestBudgetAlertsAtExactLimit(t *testing.T) {
	sender := &recordingPushSender{}
	svc := NewNotificationService(sender, settingsWithToken(models.DefaultNotificationSettings()))

	svc.BudgetAlerts(helpers.TestCtx(), "uid-1", []dto.BudgetStatus{
		{Budget: models.Budget{BudgetID: "b1", Amount: 100}, Spent: 100, Progress: 100},
	}, "Food")

	if len(sender.pushes) != 1 || sender.pushes[0].Title != "⚠️ Budget Exceeded!" {
		t.Fatalf("100%% should count as exceeded: %+v", sender.pushes)
	}
}

func TestBudgetCreatedPush(t *testing.T) {
	sender := &recordingPushSender{}
	svc := NewNotificationService(sender, settingsWithToken(models.DefaultNotificationSettings()))

	svc.BudgetCreated(helpers.TestCtx(), "uid-1", models.Budget{
		BudgetID: "b1", Amount: 300, Period: models.PeriodMonthly,
	}, "Food")

	if len(sender.pushes) != 1 {
		t.Fatalf("push count mismatch: %d", len(sender.pushes))
	}
	if sender.pushes[0].Body != "Food budget set to $300 for monthly" {
		t.Fatalf("body mismatch: %q", sender.pushes[0].Body)
	}
}

// Round trip through the real settings store: register a token, then
// deliver a push sourced from the persisted document.
func TestRegisterThenDeliverWithEmulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := helpers.TestCtx()
	client, err := firestore.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("firestore client error: %v", err)
	}
	defer client.Close()

	sender := &recordingPushSender{}
	svc := NewNotificationService(sender, store.NewSettingsStore(client))
	uid := "round-trip-user"

	if err := svc.RegisterPushToken(ctx, uid, "device-token"); err != nil {
		t.Fatalf("RegisterPushToken returned error: %v", err)
	}

	svc.TransactionAdded(ctx, uid, models.Transaction{
		TransactionID: "t1", Description: "Coffee", Amount: 4.5,
	}, models.Category{Type: models.CategoryTypeExpense})

	if len(sender.pushes) != 1 {
		t.Fatalf("push count mismatch: %d", len(sender.pushes))
	}
	if sender.tokens[0] != "device-token" {
		t.Fatalf("token mismatch: %q", sender.tokens[0])
	}
}

func TestSendFailureIsSwallowed(t *testing.T) {
	sender := &recordingPushSender{err: errs.NewExternalServiceError("fcm", "unavailable", true, errors.New("503"))}
	svc := NewNotificationService(sender, settingsWithToken(models.DefaultNotificationSettings()))

	// Must not panic or surface the error; delivery is best-effort.
	svc.TransactionAdded(helpers.TestCtx(), "uid-1", models.Transaction{Description: "x", Amount: 1}, models.Category{})
	if len(sender.pushes) != 1 {
		t.Fatal("send was not attempted")
	}
}
