// Package postgres provides the Postgres-backed session store.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/spendwise-web/internal/domain/session"
	apperrors "github.com/spendwise/spendwise-web/internal/errors"
)

// SessionStore keeps sessions in the ui_sessions table. Expired rows are
// invisible to Get and removed by PurgeExpired.
type SessionStore struct {
	DB  *sql.DB
	now func() time.Time
}

// NewSessionStore creates a store over db. Migrations must have run.
func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{DB: db, now: time.Now}
}

// NewSessionStoreWithClock is NewSessionStore with an injected clock.
func NewSessionStoreWithClock(db *sql.DB, now func() time.Time) *SessionStore {
	return &SessionStore{DB: db, now: now}
}

// Save upserts the whole record in one statement.
func (s *SessionStore) Save(ctx context.Context, sess session.Session) error {
	id, err := uuid.Parse(sess.ID)
	if err != nil {
		return apperrors.ValidationField("id", "session ID must be a UUID")
	}
	now := s.now().UTC()
	if sess.Expired(now) {
		return errors.New("session is expired")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	createdAt := sess.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO ui_sessions (id, data, logged_in, created_at, updated_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			data = EXCLUDED.data,
			logged_in = EXCLUDED.logged_in,
			updated_at = EXCLUDED.updated_at,
			expires_at = EXCLUDED.expires_at
	`, id, data, sess.LoggedIn(), createdAt.UTC(), now, sess.ExpiresAt.UTC())
	if err != nil {
		return fmt.Errorf("save session: %w", apperrors.MapDBError(err))
	}
	return nil
}

// Get returns session.ErrNotFound for missing, malformed or expired IDs.
func (s *SessionStore) Get(ctx context.Context, id string) (session.Session, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return session.Session{}, session.ErrNotFound
	}

	var data []byte
	err = s.DB.QueryRowContext(ctx, `
		SELECT data FROM ui_sessions WHERE id = $1 AND expires_at > $2
	`, uid, s.now().UTC()).Scan(&data)
	if err != nil {
		mapped := apperrors.MapDBError(err)
		if apperrors.IsNotFound(mapped) {
			return session.Session{}, session.ErrNotFound
		}
		return session.Session{}, fmt.Errorf("get session: %w", mapped)
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return session.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return sess, nil
}

// Delete removes the row. Unknown IDs are ignored.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM ui_sessions WHERE id = $1`, uid); err != nil {
		return fmt.Errorf("delete session: %w", apperrors.MapDBError(err))
	}
	return nil
}

// PurgeExpired deletes rows past their deadline and reports how many.
func (s *SessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM ui_sessions WHERE expires_at <= $1`, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", apperrors.MapDBError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return n, nil
}
