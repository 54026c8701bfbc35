// Package memory provides an in-process session store for local development
// and tests. Sessions do not survive a restart.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/spendwise/spendwise-web/internal/domain/session"
)

// SessionStore is a mutex-guarded map.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]session.Session
	now      func() time.Time
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]session.Session), now: time.Now}
}

// Save stores a copy of sess.
func (m *SessionStore) Save(_ context.Context, sess session.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if sess.Expired(m.now()) {
		return errors.New("session is expired")
	}
	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	return nil
}

// Get returns session.ErrNotFound for missing or expired records.
func (m *SessionStore) Get(_ context.Context, id string) (session.Session, error) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return session.Session{}, session.ErrNotFound
	}
	if sess.Expired(m.now()) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return session.Session{}, session.ErrNotFound
	}
	return sess, nil
}

// Delete removes id if present.
func (m *SessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

// PurgeExpired drops every record past its deadline.
func (m *SessionStore) PurgeExpired(_ context.Context) (int64, error) {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, sess := range m.sessions {
		if sess.Expired(now) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

// Len reports the number of stored records, expired or not.
func (m *SessionStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
