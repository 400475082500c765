package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/karniella/revisions/core"
)

// Service authenticates against the single shared admin identity and manages
// the session state behind it. Credentials are compared by exact equality.
type Service struct {
	store Store
	admin core.AdminConfig
	ttl   time.Duration
	now   func() time.Time
}

func NewService(store Store, conf *core.Config) *Service {
	return NewServiceWithClock(store, conf, time.Now)
}

// NewServiceWithClock allows deterministic expiry timestamps in tests.
func NewServiceWithClock(store Store, conf *core.Config, now func() time.Time) *Service {
	return &Service{
		store: store,
		admin: conf.Admin,
		ttl:   conf.Server.SessionTTL,
		now:   now,
	}
}

// Login validates the credential pair and creates an authenticated session.
func (svc *Service) Login(ctx context.Context, username, password string) (Session, error) {
	if username != svc.admin.Username || password != svc.admin.Password {
		return Session{}, ErrBadCredentials
	}
	sess := Session{
		ID:            uuid.NewString(),
		Username:      username,
		Authenticated: true,
		ExpiresAt:     svc.now().Add(svc.ttl),
	}
	if err := svc.store.Save(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Logout destroys the session unconditionally; unknown ids are not an error.
func (svc *Service) Logout(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return svc.store.Delete(ctx, id)
}

// Status reports whether the session id maps to an authenticated session.
func (svc *Service) Status(ctx context.Context, id string) Status {
	sess, err := svc.Get(ctx, id)
	if err != nil || !sess.Authenticated {
		return Status{Authenticated: false}
	}
	return Status{Authenticated: true, Username: sess.Username}
}

// Get loads a live session; expired or unknown ids yield ErrNotFound.
func (svc *Service) Get(ctx context.Context, id string) (Session, error) {
	if id == "" {
		return Session{}, ErrNotFound
	}
	sess, err := svc.store.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if sess.Expired(svc.now()) {
		return Session{}, ErrNotFound
	}
	return sess, nil
}

// TTL exposes the configured session lifetime for cookie expiry.
func (svc *Service) TTL() time.Duration {
	return svc.ttl
}
