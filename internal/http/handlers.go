package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spendwise/spendwise-web/internal/domain/finance"
	"github.com/spendwise/spendwise-web/internal/domain/view"
	apperrors "github.com/spendwise/spendwise-web/internal/errors"
	"github.com/spendwise/spendwise-web/internal/notify"
	"github.com/spendwise/spendwise-web/internal/ports"
	"github.com/spendwise/spendwise-web/internal/service"
)

// toastEvent is the client-side event app.js listens for.
const toastEvent = "showToast"

// Fallback messages when an error carries none.
const (
	msgConnectionError = "Connection error"
	msgSomethingWrong  = "Something went wrong"
	msgLoginFirst      = "Please login first"
	msgDownloadFailed  = "Download failed"
)

// Services are the application services the handlers drive.
type Services struct {
	Sessions  *service.SessionService
	Auth      *service.AuthService
	Navigator *service.Navigator
	Actions   *service.Actions
	Backend   ports.Backend
}

// WebConfig holds presentation settings.
type WebConfig struct {
	Renderer *TemplateRenderer
	Cookies  CookieConfig
	Now      func() time.Time
}

// HandlersOptions groups dependencies for Handlers.
type HandlersOptions struct {
	Services Services
	Web      WebConfig
	Logger   *slog.Logger
}

// Handlers serves every page, fragment and form of the web client.
type Handlers struct {
	sessions  *service.SessionService
	auth      *service.AuthService
	navigator *service.Navigator
	actions   *service.Actions
	backend   ports.Backend
	renderer  *TemplateRenderer
	cookies   CookieConfig
	now       func() time.Time
	logger    *slog.Logger
}

// NewHandlers constructs Handlers. It panics on missing dependencies.
func NewHandlers(opts HandlersOptions) *Handlers {
	s := opts.Services
	if s.Sessions == nil || s.Auth == nil || s.Navigator == nil || s.Actions == nil || s.Backend == nil {
		panic("httpx: HandlersOptions.Services is incomplete")
	}
	if opts.Web.Renderer == nil {
		panic("httpx: HandlersOptions.Web.Renderer is required")
	}
	h := &Handlers{
		sessions:  s.Sessions,
		auth:      s.Auth,
		navigator: s.Navigator,
		actions:   s.Actions,
		backend:   s.Backend,
		renderer:  opts.Web.Renderer,
		cookies:   opts.Web.Cookies.withDefaults(),
		now:       opts.Web.Now,
		logger:    opts.Logger,
	}
	if h.now == nil {
		h.now = time.Now
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	h.logger = h.logger.With("component", "http")
	return h
}

func stateOf(r *http.Request) *service.SessionState { return service.StateFrom(r.Context()) }

// month resolves the month parameter against the clock.
func (h *Handlers) month(r *http.Request) finance.Month {
	return finance.ResolveMonth(r.FormValue("month"), h.now())
}

// viewPath is the bookmarkable URL of a view.
func viewPath(id view.ID, month finance.Month) string {
	switch {
	case id == view.Login:
		return "/login"
	case id == view.Register:
		return "/register"
	case view.MonthScoped(id) && month.Year > 0:
		return "/view/" + string(id) + "?month=" + month.String()
	default:
		return "/view/" + string(id)
	}
}

func (h *Handlers) toasts(ctx context.Context) []notify.Notification {
	return notify.FromContext(ctx).Drain()
}

// renderPage writes a full page with pending notifications in the toast stack.
func (h *Handlers) renderPage(w http.ResponseWriter, r *http.Request, data PageData) {
	h.cookies.syncSession(w, r, stateOf(r))
	data.Toasts = h.toasts(r.Context())
	if err := h.renderer.RenderFull(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// renderFragment writes the named template with pending notifications
// delivered as an HX-Trigger event.
func (h *Handlers) renderFragment(w http.ResponseWriter, r *http.Request, name string, data any, hx *HTMXResponse) {
	h.cookies.syncSession(w, r, stateOf(r))
	if items := h.toasts(r.Context()); len(items) > 0 {
		hx.Trigger(toastEvent, items)
	}
	hx.Apply()
	if err := h.renderer.Render(w, name, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// redirect sends the browser to url, carrying pending notifications in the
// flash cookie.
func (h *Handlers) redirect(w http.ResponseWriter, r *http.Request, url string) {
	h.cookies.syncSession(w, r, stateOf(r))
	if err := h.cookies.writeFlash(w, r, h.toasts(r.Context())); err != nil {
		h.logger.WarnContext(r.Context(), "failed to write flash cookie", "error", err)
	}
	if IsHTMX(r) {
		HTMX(w).Redirect(url)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// keep leaves the current screen as it is. htmx callers get the
// notifications as triggers and no swap; plain requests go back to the app.
func (h *Handlers) keep(w http.ResponseWriter, r *http.Request, hx *HTMXResponse) {
	if !IsHTMX(r) {
		h.redirect(w, r, "/")
		return
	}
	h.cookies.syncSession(w, r, stateOf(r))
	if items := h.toasts(r.Context()); len(items) > 0 {
		hx.Trigger(toastEvent, items)
	}
	hx.NoSwap()
}

// report applies the error policy: it turns err into notifications and
// returns true when the session was cleared and the caller must send the
// browser to the login view. Authorization failures never clear the session.
func (h *Handlers) report(r *http.Request, err error, fallback string) bool {
	ctx := r.Context()
	switch {
	case apperrors.IsCanceled(err) || errors.Is(err, context.Canceled):
		h.logger.DebugContext(ctx, "request canceled", "error", err)
	case apperrors.IsUnauthenticated(err):
		st := stateOf(r)
		if st.Stored() {
			if cErr := h.sessions.Clear(ctx, st); cErr != nil {
				h.logger.ErrorContext(ctx, "failed to clear rejected session", "error", cErr)
			}
		}
		notify.Push(ctx, apperrors.Message(err, service.MsgSessionExpired), notify.Warning)
		return true
	case apperrors.IsAccessDenied(err):
		notify.Push(ctx, apperrors.Message(err, "Access denied"), notify.Danger)
	case apperrors.IsValidation(err):
		h.logger.DebugContext(ctx, "form rejected", "field", apperrors.GetField(err))
		notify.Push(ctx, apperrors.Message(err, fallback), notify.Warning)
	case apperrors.IsTransport(err), apperrors.IsTimeout(err):
		h.logger.WarnContext(ctx, "backend unreachable", "error", err)
		notify.Push(ctx, msgConnectionError, notify.Danger)
	case apperrors.IsBackend(err), apperrors.IsNotFound(err):
		h.logger.InfoContext(ctx, "backend rejected request", "error", err)
		notify.Push(ctx, apperrors.Message(err, fallback), notify.Danger)
	default:
		h.logger.ErrorContext(ctx, "request failed", "error", err)
		notify.Push(ctx, msgSomethingWrong, notify.Danger)
	}
	return false
}

// reportAuth is the policy of the sign-in forms: a rejected login is a
// form error, never a reason to clear anything.
func (h *Handlers) reportAuth(r *http.Request, err error, fallback string) {
	ctx := r.Context()
	switch {
	case apperrors.IsValidation(err):
		h.logger.DebugContext(ctx, "form rejected", "field", apperrors.GetField(err))
		notify.Push(ctx, apperrors.Message(err, fallback), notify.Warning)
	case apperrors.IsTransport(err), apperrors.IsTimeout(err):
		notify.Push(ctx, msgConnectionError, notify.Danger)
	default:
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			h.logger.ErrorContext(ctx, "auth flow failed", "error", err)
		}
		notify.Push(ctx, apperrors.Message(err, fallback), notify.Danger)
	}
}
