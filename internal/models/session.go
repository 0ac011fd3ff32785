package models

import (
	"time"
)

// Session tracks the client idle-expiry window. It is bookkeeping on
// top of Firebase's own token lifetime: when ExpiresAt passes, the
// user is signed out regardless of token validity.
type Session struct {
	UID       string    `firestore:"uid" json:"uid"`
	ExpiresAt time.Time `firestore:"expiresAt" json:"expiresAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
