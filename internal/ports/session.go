package ports

// Package ports defines interfaces (hexagonal ports) for the web client.
// Implementations live in internal/adapters and internal/gateway;
// orchestration in internal/service.

import (
	"context"

	"github.com/spendwise/spendwise-web/internal/domain/session"
)

// SessionStore persists and retrieves UI sessions keyed by the cookie ID.
// Get returns session.ErrNotFound for missing or expired records.
type SessionStore interface {
	Save(ctx context.Context, sess session.Session) error
	Get(ctx context.Context, id string) (session.Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionPurger removes expired records for stores without native TTLs.
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}
