package httpx

import (
	"net/http"

	"github.com/spendwise/spendwise-web/internal/domain/view"
	"github.com/spendwise/spendwise-web/internal/notify"
	"github.com/spendwise/spendwise-web/internal/service"
)

const msgLoadFailed = "Failed to load data"

// Index serves GET /: the restored view for a signed-in user, the login
// view otherwise. A reset_token query parameter opens the reset form.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	st := stateOf(r)
	if token := r.URL.Query().Get("reset_token"); token != "" {
		if !st.LoggedIn() {
			h.renderAuth(w, r, AuthModeReset, token)
			return
		}
		notify.Push(r.Context(), "Log out to use the password reset link", notify.Info)
	}
	h.navigate(w, r, h.navigator.Restore(st))
}

// Login serves GET /login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, view.Login)
}

// Register serves GET /register.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, view.Register)
}

// ForgotPassword serves GET /forgot-password.
func (h *Handlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	h.renderAuth(w, r, AuthModeForgot, "")
}

// View serves GET /view/{id}.
func (h *Handlers) View(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, view.ID(r.PathValue("id")))
}

func (h *Handlers) navigate(w http.ResponseWriter, r *http.Request, id view.ID) {
	st := stateOf(r)
	nav, err := h.navigator.Navigate(r.Context(), st, service.NavigateRequest{View: id, Month: h.month(r)})

	switch {
	case nav.Redirect == view.Login:
		h.redirect(w, r, "/login")
		return
	case nav.Redirect != "":
		h.redirect(w, r, "/")
		return
	case nav.Unknown:
		h.keep(w, r, HTMX(w))
		return
	case err != nil:
		if h.report(r, err, msgLoadFailed) {
			h.redirect(w, r, "/login")
			return
		}
		if WantsPartial(r) {
			h.keep(w, r, HTMX(w))
			return
		}
	}

	h.respondView(w, r, newPageData(r, st).withNavigation(nav))
}

// respondView writes data as a swap for htmx and as a page otherwise.
func (h *Handlers) respondView(w http.ResponseWriter, r *http.Request, data PageData) {
	if !WantsPartial(r) {
		h.renderPage(w, r, data)
		return
	}
	hx := HTMX(w).PushURL(viewPath(data.View.ID, data.Month))
	if data.View.IsAuth() {
		h.renderFragment(w, r, tmplAuthSwap, data, hx)
		return
	}
	h.renderFragment(w, r, tmplViewSwap, data, hx)
}

// renderAuth shows the auth view in a mode the registry has no id for.
// A signed-in browser is sent to the app instead.
func (h *Handlers) renderAuth(w http.ResponseWriter, r *http.Request, mode, token string) {
	if stateOf(r).LoggedIn() {
		h.redirect(w, r, "/")
		return
	}
	login, _ := view.Lookup(view.Login)
	data := newPageData(r, stateOf(r))
	data.View = login
	data.Title = view.Title(view.Login)
	data.AuthMode = mode
	data.ResetToken = token

	if !WantsPartial(r) {
		h.renderPage(w, r, data)
		return
	}
	h.renderFragment(w, r, tmplAuthSwap, data, HTMX(w))
}
