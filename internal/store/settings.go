package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kaiseldev-sudo/budget-buddy/internal/errs"
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
)

type settingsStore struct {
	client *firestore.Client
}

func NewSettingsStore(client *firestore.Client) *settingsStore {
	return &settingsStore{client: client}
}

func (s *settingsStore) doc(uid string) *firestore.DocumentRef {
	return s.client.Collection("user_settings").Doc(uid)
}

func (s *settingsStore) Get(ctx context.Context, uid string) (*models.UserSettings, error) {
	doc, err := s.doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("user settings not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get user settings", err)
	}
	var us models.UserSettings
	if err := doc.DataTo(&us); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse user settings", err)
	}
	return &us, nil
}

// Upsert writes the full settings document. Callers always hold the
// complete struct (Get merges in defaults), so no field-level merge is
// needed; MergeAll would also be rejected for struct data.
func (s *settingsStore) Upsert(ctx context.Context, us *models.UserSettings) error {
	us.UpdatedAt = time.Now()
	_, err := s.doc(us.UID).Set(ctx, us)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to save user settings", err)
	}
	return nil
}
