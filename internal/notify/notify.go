// Package notify queues transient, user-facing messages produced while a
// request is handled. Each message is delivered once and dismissed by the
// browser after DismissAfter or on click.
package notify

import (
	"context"
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Severity selects the visual treatment of a notification.
type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Warning Severity = "warning"
	Danger  Severity = "danger"
)

// DismissAfter is how long a notification stays on screen.
const DismissAfter = 6 * time.Second

// ParseSeverity normalises raw input. Unknown values become Info.
func ParseSeverity(raw string) Severity {
	switch s := Severity(strings.ToLower(strings.TrimSpace(raw))); s {
	case Success, Warning, Danger:
		return s
	default:
		return Info
	}
}

// Icon is the remixicon class shown next to the message.
func (s Severity) Icon() string {
	switch s {
	case Success:
		return "ri-checkbox-circle-line"
	case Danger:
		return "ri-error-warning-line"
	case Warning:
		return "ri-alert-line"
	default:
		return "ri-information-line"
	}
}

// Notification is one dismissible message.
type Notification struct {
	ID             string    `json:"id"`
	Message        string    `json:"message"`
	Severity       Severity  `json:"severity"`
	CreatedAt      time.Time `json:"created_at"`
	DismissAfterMS int64     `json:"dismiss_after_ms"`
}

// DismissAfter returns the on-screen lifetime.
func (n Notification) DismissAfter() time.Duration {
	return time.Duration(n.DismissAfterMS) * time.Millisecond
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

func newID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// Stack collects notifications for one request. It is safe for concurrent use.
type Stack struct {
	mu    sync.Mutex
	items []Notification
	now   func() time.Time
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{now: time.Now}
}

// Push appends a notification. Nothing is replaced or deduplicated.
func (s *Stack) Push(message string, sev Severity) Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	n := Notification{
		ID:             newID(now),
		Message:        message,
		Severity:       ParseSeverity(string(sev)),
		CreatedAt:      now,
		DismissAfterMS: DismissAfter.Milliseconds(),
	}
	s.items = append(s.items, n)
	return n
}

// Restore appends previously drained notifications, keeping their IDs.
func (s *Stack) Restore(items []Notification) {
	if len(items) == 0 {
		return
	}
	s.mu.Lock()
	s.items = append(s.items, items...)
	s.mu.Unlock()
}

// Len reports the number of pending notifications.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Drain removes and returns the pending notifications in creation order.
func (s *Stack) Drain() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.items
	s.items = nil
	return out
}

type stackKey struct{}

// WithStack attaches s to ctx.
func WithStack(ctx context.Context, s *Stack) context.Context {
	return context.WithValue(ctx, stackKey{}, s)
}

// FromContext returns the request's stack. A context without one gets a
// fresh detached stack so callers never need a nil check.
func FromContext(ctx context.Context) *Stack {
	if s, ok := ctx.Value(stackKey{}).(*Stack); ok && s != nil {
		return s
	}
	return NewStack()
}

// Push is shorthand for FromContext(ctx).Push.
func Push(ctx context.Context, message string, sev Severity) {
	FromContext(ctx).Push(message, sev)
}
