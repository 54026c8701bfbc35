package httpx

import (
	"net/http"

	"github.com/spendwise/spendwise-web/internal/notify"
	"github.com/spendwise/spendwise-web/internal/service"
)

// viewContentSelector is the app shell's swap target.
const viewContentSelector = "#view-content"

// Action serves POST /actions/{name}. Success refreshes the view the action
// belongs to; failure leaves the screen unchanged.
func (h *Handlers) Action(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st := stateOf(r)
	name := service.ActionName(r.PathValue("name"))
	if _, ok := h.actions.Lookup(name); !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		notify.Push(ctx, "Invalid form submission", notify.Warning)
		h.keep(w, r, HTMX(w))
		return
	}

	res, err := h.actions.Dispatch(ctx, st, name, r.PostForm)
	if err != nil {
		if h.report(r, err, "Action failed") {
			h.redirect(w, r, "/login")
			return
		}
		h.keep(w, r, HTMX(w))
		return
	}

	if res.Event == service.EventSessionChanged {
		h.redirect(w, r, "/")
		return
	}

	hx := HTMX(w)
	if res.Event != "" {
		hx.Trigger(res.Event, nil)
	}
	if res.Refresh == "" {
		h.keep(w, r, hx)
		return
	}
	if !IsHTMX(r) {
		h.redirect(w, r, viewPath(res.Refresh, h.month(r)))
		return
	}

	nav, err := h.navigator.Navigate(ctx, st, service.NavigateRequest{View: res.Refresh, Month: h.month(r)})
	if err != nil || nav.Redirect != "" || nav.Unknown {
		if err != nil && h.report(r, err, msgLoadFailed) {
			h.redirect(w, r, "/login")
			return
		}
		h.keep(w, r, hx)
		return
	}

	data := newPageData(r, st).withNavigation(nav)
	hx.Retarget(viewContentSelector, "innerHTML").PushURL(viewPath(nav.View.ID, nav.Month))
	h.renderFragment(w, r, tmplViewSwap, data, hx)
}
