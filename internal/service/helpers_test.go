package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spendwise/spendwise-web/internal/adapters/memory"
	"github.com/spendwise/spendwise-web/internal/domain/session"
	"github.com/spendwise/spendwise-web/internal/mocks"
	"github.com/spendwise/spendwise-web/internal/notify"
)

func testJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func testIdentity(t *testing.T) session.Identity {
	t.Helper()
	return session.Identity{
		Token:    testJWT(t, time.Now().Add(7*24*time.Hour)),
		Username: "alice",
		Email:    "alice@example.com",
		UserType: session.UserTypeStudent,
	}
}

// notifyCtx returns a context carrying a fresh notification stack.
func notifyCtx() (context.Context, *notify.Stack) {
	stack := notify.NewStack()
	return notify.WithStack(context.Background(), stack), stack
}

func newMemorySessions(t *testing.T) (*memory.SessionStore, *SessionService) {
	t.Helper()
	store := memory.NewSessionStore()
	return store, NewSessionService(SessionServiceOptions{Store: store})
}

// signedIn returns a stored, logged-in state.
func signedIn(t *testing.T, svc *SessionService) *SessionState {
	t.Helper()
	st := NewAnonymousState(NewID())
	require.NoError(t, svc.SignIn(context.Background(), st, testIdentity(t)))
	return st
}

type backendFixture struct {
	backend  *mocks.MockBackend
	store    *memory.SessionStore
	sessions *SessionService
	auth     *AuthService
}

func newBackendFixture(t *testing.T) *backendFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	backend := mocks.NewMockBackend(ctrl)
	store, sessions := newMemorySessions(t)
	return &backendFixture{
		backend:  backend,
		store:    store,
		sessions: sessions,
		auth:     NewAuthService(AuthServiceOptions{Sessions: sessions, Backend: backend}),
	}
}

func messages(items []notify.Notification) []string {
	out := make([]string, 0, len(items))
	for _, n := range items {
		out = append(out, n.Message)
	}
	return out
}
