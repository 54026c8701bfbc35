// Package mocks provides gomock implementations of the ports used by the web client.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	store := mocks.NewMockSessionStore(ctrl)
//	store.EXPECT().Get(gomock.Any(), "id").Return(session.Session{}, session.ErrNotFound)
package mocks

// SessionStore: Save, Get, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/spendwise/spendwise-web/internal/ports SessionStore

// Backend: the full REST surface (auth, records, analytics, admin, account)
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=backend_mock.go github.com/spendwise/spendwise-web/internal/ports Backend
