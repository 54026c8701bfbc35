package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/spendwise-web/internal/domain/session"
	"github.com/spendwise/spendwise-web/internal/domain/view"
	"github.com/spendwise/spendwise-web/internal/notify"
	"github.com/spendwise/spendwise-web/internal/ports"
)

// DefaultSessionTTL is used when no TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

// MsgSessionExpired is shown when a stored token has expired.
const MsgSessionExpired = "Session expired, please login again"

// SessionConfig holds tunables for SessionService.
type SessionConfig struct {
	TTL time.Duration
	Now func() time.Time
}

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Store  ports.SessionStore // Required
	Config SessionConfig
	Logger *slog.Logger
}

// SessionService is the single writer of SessionState. It loads the record
// for a request and persists every mutation before exposing it.
type SessionService struct {
	store  ports.SessionStore
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// NewSessionService constructs a SessionService. It panics without a store.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	if opts.Store == nil {
		panic("service: SessionServiceOptions.Store is required")
	}
	s := &SessionService{
		store:  opts.Store,
		ttl:    opts.Config.TTL,
		now:    opts.Config.Now,
		logger: opts.Logger,
	}
	if s.ttl <= 0 {
		s.ttl = DefaultSessionTTL
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "session")
	return s
}

// NewID returns a fresh random session ID.
func NewID() string { return uuid.NewString() }

// Load returns the state for the cookie value id. Missing, expired and
// partial records, as well as records carrying an expired JWT, yield an
// anonymous state rather than an error. A store failure also yields an
// anonymous state, together with the error so the caller can log it.
func (s *SessionService) Load(ctx context.Context, id string) (*SessionState, error) {
	if id == "" {
		return NewAnonymousState(NewID()), nil
	}

	sess, err := s.store.Get(ctx, id)
	switch {
	case errors.Is(err, session.ErrNotFound):
		return NewAnonymousState(NewID()), nil
	case err != nil:
		return NewAnonymousState(NewID()), fmt.Errorf("load session: %w", err)
	}

	now := s.now()
	if sess.Expired(now) {
		s.discard(ctx, id, "expired record")
		return NewAnonymousState(NewID()), nil
	}
	if vErr := sess.Validate(); vErr != nil {
		s.discard(ctx, id, "partial record")
		return NewAnonymousState(NewID()), nil
	}
	if TokenExpired(sess.Token, now) {
		s.discard(ctx, id, "token expired")
		st := NewAnonymousState(NewID())
		st.expired = true
		notify.Push(ctx, MsgSessionExpired, notify.Warning)
		return st, nil
	}
	return newState(sess, true), nil
}

func (s *SessionService) discard(ctx context.Context, id, reason string) {
	s.logger.InfoContext(ctx, "discarding session", "reason", reason)
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "failed to delete discarded session", "error", err)
	}
}

// Save persists sess for st and then updates st. Partial sessions are refused.
// The record keeps st's ID and gets a fresh expiry.
func (s *SessionService) Save(ctx context.Context, st *SessionState, sess session.Session) error {
	if err := sess.Validate(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	now := s.now()
	sess.ID = st.ID()
	if sess.ID == "" {
		sess.ID = NewID()
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = now
	}
	sess.ExpiresAt = now.Add(s.ttl)

	if err := s.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	st.set(sess, true)
	return nil
}

// SignIn starts a logged-in session for id under a new record ID and removes
// the previous record, so an ID issued before login never carries a token.
func (s *SessionService) SignIn(ctx context.Context, st *SessionState, id session.Identity) error {
	prev := st.Session()

	next := session.Session{ID: NewID()}.WithIdentity(id)
	if v, ok := view.Lookup(view.ID(prev.ActiveTab)); ok && !v.IsAuth() {
		next.ActiveTab = string(v.ID)
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	now := s.now()
	next.CreatedAt = now
	next.ExpiresAt = now.Add(s.ttl)
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	if prev.ID != "" {
		if err := s.store.Delete(ctx, prev.ID); err != nil {
			s.logger.WarnContext(ctx, "failed to delete pre-login session", "error", err)
		}
	}
	st.set(next, true)
	return nil
}

// Clear deletes the record and resets st to an anonymous, unstored state in
// the same call.
func (s *SessionService) Clear(ctx context.Context, st *SessionState) error {
	id := st.ID()
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	st.set(session.Session{ID: id}, false)
	return nil
}

// SetActiveTab persists v as the last active view. Auth views, unknown ids
// and anonymous sessions are ignored, as are unchanged values.
func (s *SessionService) SetActiveTab(ctx context.Context, st *SessionState, v view.ID) error {
	if !st.LoggedIn() || view.IsAuthView(v) {
		return nil
	}
	if _, ok := view.Lookup(v); !ok {
		return nil
	}
	sess := st.Session()
	if sess.ActiveTab == string(v) {
		return nil
	}
	sess.ActiveTab = string(v)
	return s.Save(ctx, st, sess)
}
