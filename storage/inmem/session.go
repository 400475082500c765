package inmemdb

import (
	"context"
	"sync"
	"time"

	"github.com/karniella/revisions/core/session"
)

// SessionStore is the in-memory session.Store. Expired sessions are dropped
// lazily on Get; DeleteExpired exists for a periodic sweep.
type SessionStore struct {
	mutex    sync.RWMutex
	sessions map[string]session.Session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return NewSessionStoreWithClock(time.Now)
}

// NewSessionStoreWithClock allows deterministic expiry in tests.
func NewSessionStoreWithClock(now func() time.Time) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]session.Session),
		now:      now,
	}
}

func (store *SessionStore) Get(_ context.Context, id string) (session.Session, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	sess, ok := store.sessions[id]
	if !ok {
		return session.Session{}, session.ErrNotFound
	}
	if sess.Expired(store.now()) {
		delete(store.sessions, id)
		return session.Session{}, session.ErrNotFound
	}
	return sess, nil
}

func (store *SessionStore) Save(_ context.Context, sess session.Session) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.sessions[sess.ID] = sess
	return nil
}

func (store *SessionStore) Delete(_ context.Context, id string) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	delete(store.sessions, id)
	return nil
}

// DeleteExpired removes every expired session and reports how many were dropped.
func (store *SessionStore) DeleteExpired() int {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	now := store.now()
	dropped := 0
	for id, sess := range store.sessions {
		if sess.Expired(now) {
			delete(store.sessions, id)
			dropped++
		}
	}
	return dropped
}
