package dto

import (
	"time"
)

// SessionStatus reports the idle-expiry state of a session. When the
// stored expiry has passed (or no session exists) Active is false and
// sign-out has been triggered. WarnExpiring is raised once per process
// when the session is within 24 hours of expiry.
type SessionStatus struct {
	Active       bool      `json:"active"`
	ExpiresAt    time.Time `json:"expiresAt,omitzero"`
	WarnExpiring bool      `json:"warnExpiring"`
}
