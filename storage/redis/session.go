// Package redisdb backs the session store with Redis so admin sessions survive
// restarts and can be shared by multiple instances. Expiry rides on key TTLs.
package redisdb

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/karniella/revisions/core/session"
)

type SessionStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return NewSessionStoreWithClock(client, time.Now)
}

// NewSessionStoreWithClock allows deterministic TTLs in tests.
func NewSessionStoreWithClock(client *redis.Client, now func() time.Time) *SessionStore {
	return &SessionStore{client: client, now: now}
}

func (store *SessionStore) Get(ctx context.Context, id string) (session.Session, error) {
	data, err := store.client.Get(ctx, key(id)).Bytes()
	if err == redis.Nil {
		return session.Session{}, session.ErrNotFound
	}
	if err != nil {
		return session.Session{}, errors.Wrap(err, "getting session")
	}
	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return session.Session{}, errors.Wrap(err, "parsing session")
	}
	sess.ID = id
	return sess, nil
}

func (store *SessionStore) Save(ctx context.Context, sess session.Session) error {
	ttl := sess.ExpiresAt.Sub(store.now())
	if ttl <= 0 {
		return nil // already expired, nothing to persist
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "encoding session")
	}
	if err := store.client.Set(ctx, key(sess.ID), data, ttl).Err(); err != nil {
		return errors.Wrap(err, "saving session")
	}
	return nil
}

func (store *SessionStore) Delete(ctx context.Context, id string) error {
	if err := store.client.Del(ctx, key(id)).Err(); err != nil {
		return errors.Wrap(err, "deleting session")
	}
	return nil
}

func key(id string) string {
	return "session:" + id
}
