package service

import (
	"context"
	"sync"

	"github.com/spendwise/spendwise-web/internal/domain/session"
)

// SessionState is the request-scoped view of the caller's session. Handlers
// and loaders read it; only SessionService writes it, and every write lands
// in the store first, so a read later in the same request never observes a
// value the store does not hold.
type SessionState struct {
	mu      sync.RWMutex
	sess    session.Session
	stored  bool
	expired bool
}

func newState(sess session.Session, stored bool) *SessionState {
	return &SessionState{sess: sess, stored: stored}
}

// NewAnonymousState returns a logged-out state that has never been stored.
func NewAnonymousState(id string) *SessionState {
	return newState(session.Session{ID: id}, false)
}

func (s *SessionState) set(sess session.Session, stored bool) {
	s.mu.Lock()
	s.sess = sess
	s.stored = stored
	s.mu.Unlock()
}

// Session returns a copy of the current record.
func (s *SessionState) Session() session.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess
}

// ID is the record ID carried in the session cookie.
func (s *SessionState) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.ID
}

// Stored reports whether the record exists in the store, which decides
// whether the browser needs the cookie at all.
func (s *SessionState) Stored() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stored
}

// LoggedIn reports whether a token is present.
func (s *SessionState) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.LoggedIn()
}

// Token returns the bearer token, or "".
func (s *SessionState) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.Token
}

// IsAdmin reports the admin flag of a logged-in session.
func (s *SessionState) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.LoggedIn() && s.sess.IsAdmin
}

// UserType returns the user's catalog flavour.
func (s *SessionState) UserType() session.UserType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.UserType
}

// ActiveTab returns the last app view the user opened.
func (s *SessionState) ActiveTab() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.ActiveTab
}

// Expired reports whether this request found and discarded an expired token.
func (s *SessionState) Expired() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expired
}

type stateKey struct{}

// WithState attaches st to ctx.
func WithState(ctx context.Context, st *SessionState) context.Context {
	return context.WithValue(ctx, stateKey{}, st)
}

// StateFrom returns the request's state or a fresh anonymous one.
func StateFrom(ctx context.Context) *SessionState {
	if st, ok := ctx.Value(stateKey{}).(*SessionState); ok && st != nil {
		return st
	}
	return NewAnonymousState("")
}
