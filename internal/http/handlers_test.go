package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spendwise/spendwise-web/internal/domain/finance"
	"github.com/spendwise/spendwise-web/internal/domain/session"
	"github.com/spendwise/spendwise-web/internal/domain/view"
	apperrors "github.com/spendwise/spendwise-web/internal/errors"
	"github.com/spendwise/spendwise-web/internal/notify"
	"github.com/spendwise/spendwise-web/internal/ports"
	"github.com/spendwise/spendwise-web/internal/service"
)

func march2024() finance.Month { return finance.Month{Year: 2024, Month: 3} }

// toastMessages reads the showToast payload of an HX-Trigger header.
func toastMessages(t *testing.T, header string) []string {
	t.Helper()
	if header == "" {
		return nil
	}
	var events map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(header), &events))
	raw, ok := events[toastEvent]
	if !ok {
		return nil
	}
	var items []struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(raw, &items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Message)
	}
	return out
}

func TestAuthGate_RedirectsAnonymousToLogin(t *testing.T) {
	app := newTestApp(t)

	for _, v := range view.All() {
		if !view.RequiresAuth(v.ID) {
			continue
		}
		t.Run(string(v.ID), func(t *testing.T) {
			rec := app.get("/view/" + string(v.ID))
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Location"))

			rec = app.get("/view/"+string(v.ID), asHTMX)
			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Hx-Redirect"))
		})
	}
}

func TestIndex_AnonymousShowsAuthViewOnly(t *testing.T) {
	app := newTestApp(t)

	rec := app.get("/")
	require.Equal(t, http.StatusOK, rec.Code)

	doc := parseHTML(t, rec.Body.String())
	assert.NotNil(t, findByID(doc, "auth-view"))
	assert.Nil(t, findByID(doc, "app-view"), "app view must never render without a session")
	assert.NotNil(t, findByID(doc, "toast-stack"))
	assert.Contains(t, rec.Body.String(), "<title>Login</title>")
}

func TestIndex_SignedInRestoresActiveTab(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	app.backend.EXPECT().ListIncome(gomock.Any()).Return([]finance.Income{
		{ID: 1, Amount: 5000, Source: "salary", Date: "2024-03-01"},
	}, nil).Times(2)

	rec := app.get("/view/add-income", withSession(id))
	require.Equal(t, http.StatusOK, rec.Code)
	sess, err := app.stored(id)
	require.NoError(t, err)
	assert.Equal(t, string(view.Income), sess.ActiveTab)

	rec = app.get("/", withSession(id))
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec.Body.String())
	assert.NotNil(t, findByID(doc, "app-view"))
	assert.Nil(t, findByID(doc, "auth-view"))
	title := findByID(doc, "page-title")
	require.NotNil(t, title)
	require.NotNil(t, title.FirstChild)
	assert.Equal(t, view.Title(view.Income), title.FirstChild.Data)
}

func TestView_SwapPushesURLAndTogglesMonthPicker(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	app.backend.EXPECT().Dashboard(gomock.Any(), march2024()).Return(finance.Dashboard{TotalIncome: 1000, TotalExpenses: 250}, nil)
	app.backend.EXPECT().MonthlyTrend(gomock.Any()).Return([]finance.MonthTotals{{Month: "2024-03", Income: 1000, Expenses: 250}}, nil)
	app.backend.EXPECT().ListExpenses(gomock.Any()).Return(nil, nil)

	rec := app.get("/view/dashboard?month=2024-03", withSession(id), asHTMX)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/view/dashboard?month=2024-03", rec.Header().Get("Hx-Push-Url"))
	picker := findByID(parseHTML(t, rec.Body.String()), "month-picker")
	require.NotNil(t, picker)
	assert.False(t, hasClass(picker, "hidden"), "dashboard is month scoped")

	rec = app.get("/view/add-expense?month=2024-03", withSession(id), asHTMX)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/view/add-expense", rec.Header().Get("Hx-Push-Url"))
	picker = findByID(parseHTML(t, rec.Body.String()), "month-picker")
	require.NotNil(t, picker)
	assert.True(t, hasClass(picker, "hidden"), "expenses is not month scoped")
}

func TestView_UnknownKeepsScreen(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	rec := app.get("/view/nope", withSession(id), asHTMX)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "none", rec.Header().Get("Hx-Reswap"))
}

func TestView_AuthViewWhileSignedInGoesHome(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	rec := app.get("/login", withSession(id))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestView_RejectedTokenClearsSessionAndRedirects(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	app.backend.EXPECT().ListExpenses(gomock.Any()).
		Return(nil, apperrors.Unauthenticated("Invalid or expired token", http.StatusUnauthorized))

	rec := app.get("/view/add-expense", withSession(id), asHTMX)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Hx-Redirect"))
	assert.Equal(t, []string{"Invalid or expired token"}, flashMessages(t, rec))

	_, err := app.stored(id)
	require.ErrorIs(t, err, session.ErrNotFound)
	c := responseCookie(rec, DefaultSessionCookieName)
	require.NotNil(t, c)
	assert.Negative(t, c.MaxAge)
}

func TestView_AccessDeniedPreservesSession(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	app.backend.EXPECT().AdminStats(gomock.Any()).
		Return(finance.AdminStats{}, apperrors.AccessDenied("forbidden", http.StatusForbidden))

	rec := app.get("/view/admin-panel", withSession(id), asHTMX)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{service.MsgAccessDenied}, toastMessages(t, rec.Header().Get("Hx-Trigger")))

	sess, err := app.stored(id)
	require.NoError(t, err)
	assert.True(t, sess.LoggedIn())
}

func TestView_TransportFailureShowsConnectionError(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	app.backend.EXPECT().ListRecurring(gomock.Any()).Return(nil, apperrors.Transport(errors.New("dial tcp: refused")))

	rec := app.get("/view/recurring", withSession(id), asHTMX)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{msgConnectionError}, toastMessages(t, rec.Header().Get("Hx-Trigger")))
}

func TestView_FullPageLoadFailureStillRenders(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	app.backend.EXPECT().ListRecurring(gomock.Any()).Return(nil, apperrors.Backend("boom", http.StatusInternalServerError))

	rec := app.get("/view/recurring", withSession(id))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "boom")
	assert.NotNil(t, findByID(parseHTML(t, body), "view-content"))
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	app := newTestApp(t)
	ident := testIdentity(t, true)
	app.backend.EXPECT().Login(gomock.Any(), ports.Credentials{Username: "alice", Password: "Secret#123"}).Return(ident, nil)

	rec := app.post("/auth/login", url.Values{"username": {"alice"}, "password": {"Secret#123"}}, withCSRF)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, []string{service.MsgLoginSuccess}, flashMessages(t, rec))

	c := responseCookie(rec, DefaultSessionCookieName)
	require.NotNil(t, c)
	assert.True(t, c.HttpOnly)
	sess, err := app.stored(c.Value)
	require.NoError(t, err)
	assert.Equal(t, ident.Token, sess.Token)
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, "alice@example.com", sess.Email)
	assert.Equal(t, session.UserTypeIndividual, sess.UserType)
	assert.True(t, sess.IsAdmin)
}

func TestLogin_FailureStaysOnForm(t *testing.T) {
	app := newTestApp(t)
	app.backend.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(session.Identity{}, apperrors.Unauthenticated("Invalid credentials", http.StatusUnauthorized))

	rec := app.post("/auth/login", url.Values{"username": {"alice"}, "password": {"wrong"}}, withCSRF, asHTMX)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"Invalid credentials"}, toastMessages(t, rec.Header().Get("Hx-Trigger")))
	assert.Nil(t, responseCookie(rec, DefaultSessionCookieName))

	rec = app.post("/auth/login", url.Values{"username": {""}, "password": {""}}, withCSRF)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), service.MsgFillAllFields)
}

func TestLogin_FailureWhileSignedInReturnsToApp(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)
	app.backend.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(session.Identity{}, apperrors.Unauthenticated("Invalid credentials", http.StatusUnauthorized))

	rec := app.post("/auth/login", url.Values{"username": {"alice"}, "password": {"wrong"}}, withSession(id), withCSRF)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, []string{"Invalid credentials"}, flashMessages(t, rec))

	sess, err := app.stored(id)
	require.NoError(t, err)
	assert.True(t, sess.LoggedIn())
}

func TestAuthForms_SignedInNeverRendersAuthInsideApp(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	for _, tc := range []struct {
		name string
		rec  func() *http.Response
	}{
		{name: "forgot password page", rec: func() *http.Response { return app.get("/forgot-password", withSession(id)).Result() }},
		{name: "register with empty form", rec: func() *http.Response {
			return app.post("/auth/register", url.Values{}, withSession(id), withCSRF).Result()
		}},
		{name: "reset without token", rec: func() *http.Response {
			return app.post("/auth/reset-password", url.Values{"password": {"Secret123"}}, withSession(id), withCSRF).Result()
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := tc.rec()
			defer func() { _ = res.Body.Close() }()
			assert.Equal(t, http.StatusSeeOther, res.StatusCode)
			assert.Equal(t, "/", res.Header.Get("Location"))
		})
	}
}

func TestRegister_SuccessRedirectsToLogin(t *testing.T) {
	app := newTestApp(t)
	app.backend.EXPECT().Register(gomock.Any(), ports.Registration{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "Secret123",
		UserType: session.UserTypeStudent,
	}).Return("User registered", nil)

	rec := app.post("/auth/register", url.Values{
		"username":  {"bob"},
		"email":     {"bob@example.com"},
		"password":  {"Secret123"},
		"user_type": {"student"},
	}, withCSRF)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, []string{service.MsgRegistered}, flashMessages(t, rec))
	assert.Nil(t, responseCookie(rec, DefaultSessionCookieName))
}

func TestRegister_WeakPasswordNeverReachesBackend(t *testing.T) {
	app := newTestApp(t)

	rec := app.post("/auth/register", url.Values{
		"username":  {"bob"},
		"email":     {"bob@example.com"},
		"password":  {"secret123"},
		"user_type": {"business"},
	}, withCSRF, asHTMX)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "none", rec.Header().Get("Hx-Reswap"))
	assert.Equal(t,
		[]string{"Password must contain at least one uppercase letter (A-Z)"},
		toastMessages(t, rec.Header().Get("Hx-Trigger")))

	rec = app.post("/auth/register", url.Values{
		"username": {"bob"},
		"email":    {"bob@example.com"},
		"password": {"Short1"},
	}, withCSRF)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Password must be at least 8 characters long")
	assert.Contains(t, body, `action="/auth/register"`)
	assert.Nil(t, findByID(parseHTML(t, body), "app-view"))
}

func TestLogout_ClearsEverySessionField(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	rec := app.post("/auth/logout", url.Values{}, withSession(id), withCSRF, asHTMX)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Hx-Redirect"))
	assert.Equal(t, []string{service.MsgLoggedOut}, flashMessages(t, rec))

	_, err := app.stored(id)
	require.ErrorIs(t, err, session.ErrNotFound)
	c := responseCookie(rec, DefaultSessionCookieName)
	require.NotNil(t, c)
	assert.Negative(t, c.MaxAge)
}

func TestAuthPosts_RequireCSRF(t *testing.T) {
	app := newTestApp(t)
	rec := app.post("/auth/login", url.Values{"username": {"alice"}, "password": {"x"}})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthPosts_RateLimited(t *testing.T) {
	app := newTestApp(t, withAuthLimiter(NewIPRateLimiter(RateLimitConfig{RPS: 0.001, Burst: 1})))

	form := url.Values{"username": {""}, "password": {""}}
	first := app.post("/auth/login", form, withCSRF, asHTMX)
	assert.Equal(t, http.StatusNoContent, first.Code)

	second := app.post("/auth/login", form, withCSRF, asHTMX)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "none", second.Header().Get("Hx-Reswap"))
}

func TestAuthPosts_RateLimitIgnoresForwardedForByDefault(t *testing.T) {
	app := newTestApp(t, withAuthLimiter(NewIPRateLimiter(RateLimitConfig{RPS: 0.001, Burst: 1})))

	form := url.Values{"username": {""}, "password": {""}}
	spoof := func(ip string) reqOpt {
		return func(r *http.Request) { r.Header.Set("X-Forwarded-For", ip) }
	}
	first := app.post("/auth/login", form, withCSRF, asHTMX, spoof("203.0.113.1"))
	assert.Equal(t, http.StatusNoContent, first.Code)

	second := app.post("/auth/login", form, withCSRF, asHTMX, spoof("203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestAction_AddExpenseRefreshesView(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	gomock.InOrder(
		app.backend.EXPECT().CreateExpense(gomock.Any(), finance.NewExpense{
			Amount: 42.5, Category: "food", Date: "2024-03-15", Description: "lunch",
		}).Return(nil),
		app.backend.EXPECT().ListExpenses(gomock.Any()).Return([]finance.Expense{
			{ID: 7, Amount: 42.5, Category: "food", Date: "2024-03-15", Description: "lunch"},
		}, nil),
	)

	form := url.Values{"amount": {"42.5"}, "category": {"food"}, "description": {"lunch"}}
	rec := app.post("/actions/add-expense", form, withSession(id), withCSRF, asHTMX)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, viewContentSelector, rec.Header().Get("Hx-Retarget"))
	assert.Equal(t, "/view/add-expense", rec.Header().Get("Hx-Push-Url"))

	trigger := rec.Header().Get("Hx-Trigger")
	assert.Contains(t, trigger, service.EventExpensesChanged)
	assert.Equal(t, []string{"Expense Added"}, toastMessages(t, trigger))
	assert.Contains(t, rec.Body.String(), "lunch")
}

func TestAction_ValidationFailsBeforeBackend(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	rec := app.post("/actions/add-expense", url.Values{"category": {"food"}}, withSession(id), withCSRF, asHTMX)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "none", rec.Header().Get("Hx-Reswap"))
	assert.Len(t, toastMessages(t, rec.Header().Get("Hx-Trigger")), 1)
}

func TestAction_UnknownNameIs404(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	rec := app.post("/actions/format-disk", url.Values{}, withSession(id), withCSRF, asHTMX)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAction_AnonymousGoesToLogin(t *testing.T) {
	app := newTestApp(t)

	rec := app.post("/actions/add-income", url.Values{"amount": {"10"}}, withCSRF, asHTMX)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Hx-Redirect"))
	assert.Equal(t, []string{msgLoginFirst}, flashMessages(t, rec))
}

func TestAction_ProfileUpdateReloadsShell(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	app.backend.EXPECT().UpdateProfile(gomock.Any(), finance.Profile{
		Username: "alicia", Email: "alicia@example.com", UserType: string(session.UserTypeBusiness),
	}).Return("ok", nil)

	form := url.Values{"username": {"alicia"}, "email": {"alicia@example.com"}, "user_type": {"business"}}
	rec := app.post("/actions/update-profile", form, withSession(id), withCSRF, asHTMX)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Hx-Redirect"))

	sess, err := app.stored(id)
	require.NoError(t, err)
	assert.Equal(t, "alicia", sess.Username)
	assert.Equal(t, session.UserTypeBusiness, sess.UserType)
}

func TestCalendar_RendersMonthGrid(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	app.backend.EXPECT().ListExpenses(gomock.Any()).Return([]finance.Expense{
		{ID: 1, Amount: 10, Category: "food", Date: "2024-03-05", Description: "tea"},
		{ID: 2, Amount: 20, Category: "food", Date: "2024-03-05T00:00:00"},
		{ID: 3, Amount: 30, Category: "travel", Date: "2024-03-20"},
	}, nil)

	rec := app.get("/calendar?month=2024-03&day=2024-03-05", withSession(id), asHTMX)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := parseHTML(t, rec.Body.String())
	assert.Equal(t, 5, countClass(doc, "empty"), "March 2024 starts on a Friday")
	assert.Equal(t, 31+5, countClass(doc, "cal-cell"))
	assert.Equal(t, 2, countClass(doc, "has-records"), "only exact ISO dates match")
	assert.Equal(t, 1, countClass(doc, "selected"))
	assert.Contains(t, rec.Body.String(), "tea")
}

func TestCalendar_AnonymousRedirects(t *testing.T) {
	app := newTestApp(t)
	rec := app.get("/calendar", asHTMX)
	assert.Equal(t, "/login", rec.Header().Get("Hx-Redirect"))
}

func TestExport_StreamsDownload(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	app.backend.EXPECT().Export(gomock.Any(), ports.ExportCSV).Return(ports.Download{
		Body:        io.NopCloser(strings.NewReader("date,amount\n2024-03-05,10\n")),
		ContentType: "text/csv",
		Filename:    "spendwise.csv",
	}, nil)

	rec := app.get("/export/csv", withSession(id))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=spendwise.csv`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "date,amount\n2024-03-05,10\n", rec.Body.String())
}

func TestExport_FailureRedirectsWithMessage(t *testing.T) {
	app := newTestApp(t)
	id := app.signIn(false)

	app.backend.EXPECT().Export(gomock.Any(), ports.ExportPDF).Return(ports.Download{}, apperrors.Backend("", http.StatusBadGateway))

	rec := app.get("/export/pdf", withSession(id))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, []string{msgDownloadFailed}, flashMessages(t, rec))
}

func TestFlashCookie_RenderedOnNextPageAndCleared(t *testing.T) {
	app := newTestApp(t)

	value, err := notify.EncodeFlash([]notify.Notification{
		notify.NewStack().Push("Account locked", notify.Danger),
	})
	require.NoError(t, err)

	rec := app.get("/login", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: DefaultFlashCookieName, Value: value})
	})
	require.Equal(t, http.StatusOK, rec.Code)

	stack := findByID(parseHTML(t, rec.Body.String()), "toast-stack")
	require.NotNil(t, stack)
	assert.Equal(t, 1, countClass(stack, "toast"))
	assert.Contains(t, rec.Body.String(), "Account locked")

	c := responseCookie(rec, DefaultFlashCookieName)
	require.NotNil(t, c)
	assert.Negative(t, c.MaxAge)
}

func TestProbes(t *testing.T) {
	app := newTestApp(t, withReadiness(map[string]ReadinessCheck{
		"redis": func(_ context.Context) error { return errors.New("connection refused") },
	}))

	rec := app.get("/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.get("/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}
