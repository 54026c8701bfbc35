package httpx

import (
	"net/http"

	"github.com/spendwise/spendwise-web/internal/service"
)

// PostLogin handles the login form.
func (h *Handlers) PostLogin(w http.ResponseWriter, r *http.Request) {
	st := stateOf(r)
	if err := h.auth.Login(r.Context(), st, r.FormValue("username"), r.FormValue("password")); err != nil {
		h.reportAuth(r, err, "Login failed")
		h.stay(w, r, AuthModeLogin, "")
		return
	}
	h.redirect(w, r, "/")
}

// PostRegister handles the registration form.
func (h *Handlers) PostRegister(w http.ResponseWriter, r *http.Request) {
	in := service.RegisterInput{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		UserType: r.FormValue("user_type"),
	}
	if err := h.auth.Register(r.Context(), in); err != nil {
		h.reportAuth(r, err, "Registration failed")
		h.stay(w, r, AuthModeRegister, "")
		return
	}
	h.redirect(w, r, "/login")
}

// PostForgotPassword requests a reset link.
func (h *Handlers) PostForgotPassword(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.ForgotPassword(r.Context(), r.FormValue("email")); err != nil {
		h.reportAuth(r, err, "Request failed")
		h.stay(w, r, AuthModeForgot, "")
		return
	}
	h.redirect(w, r, "/login")
}

// PostResetPassword sets a new password from a reset link.
func (h *Handlers) PostResetPassword(w http.ResponseWriter, r *http.Request) {
	token := r.FormValue("token")
	if err := h.auth.ResetPassword(r.Context(), stateOf(r), token, r.FormValue("password")); err != nil {
		h.reportAuth(r, err, "Reset failed")
		h.stay(w, r, AuthModeReset, token)
		return
	}
	h.redirect(w, r, "/login")
}

// PostLogout ends the session.
func (h *Handlers) PostLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), stateOf(r)); err != nil {
		h.report(r, err, "Logout failed")
		h.redirect(w, r, "/")
		return
	}
	h.redirect(w, r, "/login")
}

// stay keeps the auth form on screen after a failed submission.
func (h *Handlers) stay(w http.ResponseWriter, r *http.Request, mode, token string) {
	if IsHTMX(r) {
		h.keep(w, r, HTMX(w))
		return
	}
	h.renderAuth(w, r, mode, token)
}
