package session

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a session id is unknown or expired.
	ErrNotFound = errors.New("session not found")
	// ErrBadCredentials is returned on any username/password mismatch.
	ErrBadCredentials = errors.New("invalid credentials")
)

// Session is the server-side state behind an admin cookie.
type Session struct {
	ID            string    `json:"-"`
	Username      string    `json:"username"`
	Authenticated bool      `json:"authenticated"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store abstracts session persistence (in-memory, Redis).
// Get must not return expired sessions; Delete is idempotent.
type Store interface {
	Get(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, sess Session) error
	Delete(ctx context.Context, id string) error
}

// Status is the payload of the auth status endpoint.
type Status struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}
