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

type sessionStore struct {
	client *firestore.Client
}

func NewSessionStore(client *firestore.Client) *sessionStore {
	return &sessionStore{client: client}
}

func (s *sessionStore) collection() *firestore.CollectionRef {
	return s.client.Collection("sessions")
}

func (s *sessionStore) Get(ctx context.Context, uid string) (*models.Session, error) {
	doc, err := s.collection().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("session not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get session", err)
	}
	var sess models.Session
	if err := doc.DataTo(&sess); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse session data", err)
	}
	return &sess, nil
}

func (s *sessionStore) Set(ctx context.Context, sess *models.Session) error {
	sess.UpdatedAt = time.Now()
	_, err := s.collection().Doc(sess.UID).Set(ctx, sess)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to save session", err)
	}
	return nil
}

// Delete is idempotent: deleting an absent session is not an error.
func (s *sessionStore) Delete(ctx context.Context, uid string) error {
	_, err := s.collection().Doc(uid).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete session", err)
	}
	return nil
}

// ListExpired returns sessions whose expiry is before the given time.
// Used by the hourly sweeper.
func (s *sessionStore) ListExpired(ctx context.Context, before time.Time) ([]models.Session, error) {
	docs, err := s.collection().Where("expiresAt", "<", before).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list expired sessions", err)
	}
	sessions := make([]models.Session, 0, len(docs))
	for _, d := range docs {
		var sess models.Session
		if err := d.DataTo(&sess); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse session data", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}
