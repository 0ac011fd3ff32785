package services

import (
	"context"
	"sync"
	"time"

	"github.com/kaiseldev-sudo/budget-buddy/internal/dto"
	"github.com/kaiseldev-sudo/budget-buddy/internal/errs"
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
	"github.com/kaiseldev-sudo/budget-buddy/pkg/logger"
)

// expiryWarnWindow is how close to expiry the one-time
// "expiring soon" warning fires.
const expiryWarnWindow = 24 * time.Hour

type sessionSStore interface {
	Get(ctx context.Context, uid string) (*models.Session, error)
	Set(ctx context.Context, sess *models.Session) error
	Delete(ctx context.Context, uid string) error
	ListExpired(ctx context.Context, before time.Time) ([]models.Session, error)
}

// sessionAuth revokes the user's Firebase refresh tokens on sign-out,
// forcing re-authentication on every device.
type sessionAuth interface {
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

type sessionService struct {
	store sessionSStore
	auth  sessionAuth
	ttl   time.Duration
	now   func() time.Time

	mu     sync.Mutex
	warned map[string]bool
}

func NewSessionService(store sessionSStore, auth sessionAuth, ttl time.Duration) *sessionService {
	return &sessionService{
		store:  store,
		auth:   auth,
		ttl:    ttl,
		now:    time.Now,
		warned: make(map[string]bool),
	}
}

// Start opens a fresh idle-expiry window; called at sign-in.
func (s *sessionService) Start(ctx context.Context, uid string) (*models.Session, error) {
	return s.reset(ctx, uid)
}

// Extend resets the window while the user is active.
func (s *sessionService) Extend(ctx context.Context, uid string) (*models.Session, error) {
	return s.reset(ctx, uid)
}

func (s *sessionService) reset(ctx context.Context, uid string) (*models.Session, error) {
	sess := &models.Session{
		UID:       uid,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.store.Set(ctx, sess); err != nil {
		return nil, err
	}
	s.setWarned(uid, false)
	return sess, nil
}

// Status reports the session's idle-expiry state. A session past its
// expiry (or missing entirely) is Expired: the session record is
// cleared and refresh tokens revoked before returning. The expiring-
// soon warning fires at most once per process per uid and is re-armed
// by Start/Extend.
func (s *sessionService) Status(ctx context.Context, uid string) (dto.SessionStatus, error) {
	sess, err := s.store.Get(ctx, uid)
	if err != nil {
		if _, ok := err.(*errs.NotFoundError); ok {
			return dto.SessionStatus{Active: false}, nil
		}
		return dto.SessionStatus{}, err
	}

	now := s.now()
	if now.After(sess.ExpiresAt) {
		s.SignOut(ctx, uid)
		return dto.SessionStatus{Active: false, ExpiresAt: sess.ExpiresAt}, nil
	}

	status := dto.SessionStatus{Active: true, ExpiresAt: sess.ExpiresAt}
	if sess.ExpiresAt.Sub(now) <= expiryWarnWindow && !s.isWarned(uid) {
		s.setWarned(uid, true)
		status.WarnExpiring = true
	}
	return status, nil
}

// SignOut clears the session record and revokes refresh tokens.
// Idempotent: the hourly sweeper and request-path checks may both
// land here for the same uid.
func (s *sessionService) SignOut(ctx context.Context, uid string) {
	log := logger.FromContext(ctx)
	if err := s.store.Delete(ctx, uid); err != nil {
		log.Error("failed to clear session", "uid", uid, "error", err)
	}
	if s.auth != nil {
		if err := s.auth.RevokeRefreshTokens(ctx, uid); err != nil {
			log.Error("failed to revoke refresh tokens", "uid", uid, "error", err)
		}
	}
	s.setWarned(uid, false)
	log.Info("session signed out", "uid", uid)
}

// Sweep signs out every session whose expiry has passed.
func (s *sessionService) Sweep(ctx context.Context) error {
	expired, err := s.store.ListExpired(ctx, s.now())
	if err != nil {
		return err
	}
	for _, sess := range expired {
		s.SignOut(ctx, sess.UID)
	}
	if len(expired) > 0 {
		logger.FromContext(ctx).Info("expired sessions swept", "count", len(expired))
	}
	return nil
}

// RunSweeper runs Sweep on the given interval until ctx is cancelled.
func (s *sessionService) RunSweeper(ctx context.Context, interval time.Duration) {
	log := logger.FromContext(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("session sweeper stopped")
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				log.Error("session sweep failed", "error", err)
			}
		}
	}
}

func (s *sessionService) isWarned(uid string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warned[uid]
}

func (s *sessionService) setWarned(uid string, warned bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if warned {
		s.warned[uid] = true
	} else {
		delete(s.warned, uid)
	}
}
