package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/net/html"

	"github.com/spendwise/spendwise-web/internal/adapters/memory"
	"github.com/spendwise/spendwise-web/internal/domain/session"
	"github.com/spendwise/spendwise-web/internal/mocks"
	"github.com/spendwise/spendwise-web/internal/notify"
	"github.com/spendwise/spendwise-web/internal/service"
)

const testCSRFToken = "test-csrf-token"

// fixedNow is the clock every handler test runs against.
//
//nolint:gochecknoglobals // test fixture
var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

// RequireTemplateRenderer parses the templates from disk, skipping the test
// when they are not reachable from the working directory.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
		Logger:     discardLogger(),
	})
	if err != nil {
		t.Skipf("Templates not available, skipping: %v", err)
		return nil
	}
	return tr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testApp is a router wired to a mocked backend and an in-memory session store.
type testApp struct {
	t        *testing.T
	backend  *mocks.MockBackend
	store    *memory.SessionStore
	sessions *service.SessionService
	handler  http.Handler
}

type testAppOption func(*RouterServices)

func withAuthLimiter(l *IPRateLimiter) testAppOption {
	return func(s *RouterServices) { s.AuthLimiter = l }
}

func withReadiness(checks map[string]ReadinessCheck) testAppOption {
	return func(s *RouterServices) { s.Readiness = checks }
}

func newTestApp(t *testing.T, opts ...testAppOption) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	store := memory.NewSessionStore()
	logger := discardLogger()

	sessions := service.NewSessionService(service.SessionServiceOptions{Store: store, Logger: logger})
	auth := service.NewAuthService(service.AuthServiceOptions{Sessions: sessions, Backend: backend, Logger: logger})
	loaders := service.NewLoaders(service.LoadersOptions{Backend: backend, Logger: logger})
	navigator := service.NewNavigator(service.NavigatorOptions{Sessions: sessions, Loaders: loaders, Logger: logger})
	actions := service.NewActions(service.ActionsOptions{
		Backend: backend,
		Auth:    auth,
		Now:     func() time.Time { return fixedNow },
	})

	handlers := NewHandlers(HandlersOptions{
		Services: Services{
			Sessions:  sessions,
			Auth:      auth,
			Navigator: navigator,
			Actions:   actions,
			Backend:   backend,
		},
		Web: WebConfig{
			Renderer: RequireTemplateRenderer(t),
			Now:      func() time.Time { return fixedNow },
		},
		Logger: logger,
	})

	rs := RouterServices{
		Handlers: handlers,
		Sessions: sessions,
		Logger:   logger,
	}
	for _, opt := range opts {
		opt(&rs)
	}

	return &testApp{
		t:        t,
		backend:  backend,
		store:    store,
		sessions: sessions,
		handler:  NewRouter(rs),
	}
}

func testToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func testIdentity(t *testing.T, admin bool) session.Identity {
	t.Helper()
	return session.Identity{
		Token:    testToken(t, time.Now().Add(24*time.Hour)),
		Username: "alice",
		Email:    "alice@example.com",
		UserType: session.UserTypeIndividual,
		IsAdmin:  admin,
	}
}

// signIn stores a logged-in session and returns its cookie value.
func (a *testApp) signIn(admin bool) string {
	a.t.Helper()
	st := service.NewAnonymousState(service.NewID())
	require.NoError(a.t, a.sessions.SignIn(context.Background(), st, testIdentity(a.t, admin)))
	return st.ID()
}

// stored returns the persisted record for id.
func (a *testApp) stored(id string) (session.Session, error) {
	return a.store.Get(context.Background(), id)
}

type reqOpt func(*http.Request)

func asHTMX(r *http.Request) { r.Header.Set("Hx-Request", "true") }

func withSession(id string) reqOpt {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: DefaultSessionCookieName, Value: id}) }
}

// withCSRF attaches a matching cookie and header.
func withCSRF(r *http.Request) {
	r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	r.Header.Set(DefaultCSRFHeaderName, testCSRFToken)
}

func (a *testApp) get(target string, opts ...reqOpt) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, o := range opts {
		o(req)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) post(target string, form url.Values, opts ...reqOpt) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, o := range opts {
		o(req)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	res := rec.Result()
	defer func() { _ = res.Body.Close() }()
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// flashMessages decodes the notifications carried across a redirect.
func flashMessages(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	c := responseCookie(rec, DefaultFlashCookieName)
	if c == nil {
		return nil
	}
	items, err := notify.DecodeFlash(c.Value)
	require.NoError(t, err)
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Message)
	}
	return out
}

// parseHTML parses a fragment or page body.
func parseHTML(t *testing.T, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// findByID returns the first element with the given id.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		if v, ok := attr(n, "id"); ok && v == id {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// hasClass reports whether n's class attribute lists class.
func hasClass(n *html.Node, class string) bool {
	v, _ := attr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// countClass counts descendant elements carrying class.
func countClass(n *html.Node, class string) int {
	count := 0
	if n.Type == html.ElementNode && hasClass(n, class) {
		count++
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countClass(c, class)
	}
	return count
}
