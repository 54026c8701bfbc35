package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfTestHandler(cfg CSRFConfig) http.Handler {
	return CSRFProtection(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(GetCSRFToken(r)))
	}))
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := rec.Result()
	t.Cleanup(func() { _ = res.Body.Close() })
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// issueCSRFToken performs a GET and returns the freshly minted token.
func issueCSRFToken(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	c := findCookie(t, rec, DefaultCSRFCookieName)
	require.NotNil(t, c, "csrf cookie not set")
	require.NotEmpty(t, c.Value)
	assert.Equal(t, c.Value, rec.Body.String(), "token exposed to templates")
	return c.Value
}

func TestCSRFProtection_IssuesReadableCookie(t *testing.T) {
	h := csrfTestHandler(CSRFConfig{CookieDomain: "spendwise.test"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "https://spendwise.test/", nil))

	c := findCookie(t, rec, DefaultCSRFCookieName)
	require.NotNil(t, c)
	assert.True(t, c.Secure)
	assert.False(t, c.HttpOnly, "app.js copies the token into a header")
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, "spendwise.test", c.Domain)
	assert.Equal(t, "/", c.Path)
}

func TestCSRFProtection_SecureBehindTLSProxy(t *testing.T) {
	h := csrfTestHandler(CSRFConfig{})
	req := httptest.NewRequest(http.MethodGet, "http://spendwise.test/", nil)
	req.Header.Set("X-Forwarded-Proto", "http, https")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	c := findCookie(t, rec, DefaultCSRFCookieName)
	require.NotNil(t, c)
	assert.True(t, c.Secure)
}

func TestCSRFProtection_ExistingCookieIsReused(t *testing.T) {
	h := csrfTestHandler(CSRFConfig{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "existing"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Nil(t, findCookie(t, rec, DefaultCSRFCookieName))
	assert.Equal(t, "existing", rec.Body.String())
}

func TestCSRFProtection_Validation(t *testing.T) {
	h := csrfTestHandler(CSRFConfig{})
	token := issueCSRFToken(t, h)

	formBody := func(v string) string { return url.Values{"csrf_token": {v}, "email": {"a@b.c"}}.Encode() }

	tests := []struct {
		name        string
		method      string
		body        string
		contentType string
		header      string
		cookie      string
		want        int
	}{
		{name: "missing everything", method: http.MethodPost, want: http.StatusForbidden},
		{name: "cookie without submitted token", method: http.MethodPost, cookie: token, want: http.StatusForbidden},
		{name: "htmx header", method: http.MethodPost, cookie: token, header: token, want: http.StatusOK},
		{name: "header mismatch", method: http.MethodPost, cookie: token, header: "other", want: http.StatusForbidden},
		{
			name: "form field", method: http.MethodPost, cookie: token,
			body: formBody(token), contentType: "application/x-www-form-urlencoded", want: http.StatusOK,
		},
		{
			name: "form field mismatch", method: http.MethodPost, cookie: token,
			body: formBody("nope"), contentType: "application/x-www-form-urlencoded", want: http.StatusForbidden,
		},
		{
			name: "json body ignores field", method: http.MethodPost, cookie: token,
			body: `{"csrf_token":"` + token + `"}`, contentType: "application/json", want: http.StatusForbidden,
		},
		{name: "delete with header", method: http.MethodDelete, cookie: token, header: token, want: http.StatusOK},
		{name: "head exempt", method: http.MethodHead, want: http.StatusOK},
		{name: "options exempt", method: http.MethodOptions, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/actions/add-expense", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			if tt.header != "" {
				req.Header.Set(DefaultCSRFHeaderName, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestGetCSRFToken_NoToken(t *testing.T) {
	assert.Empty(t, GetCSRFToken(httptest.NewRequest(http.MethodGet, "/", nil)))
}
