package httpx

import (
	"net/http"
)

// HTMXResponse provides a fluent API for building HTMX responses.
type HTMXResponse struct {
	w      http.ResponseWriter
	events map[string]any
}

// HTMX creates a new HTMXResponse for fluent response building.
func HTMX(w http.ResponseWriter) *HTMXResponse {
	return &HTMXResponse{w: w}
}

// Trigger queues a client-side event. Events are written together by the
// terminal methods or by Apply. This method is chainable.
func (h *HTMXResponse) Trigger(event string, payload any) *HTMXResponse {
	if event == "" {
		return h
	}
	if h.events == nil {
		h.events = make(map[string]any)
	}
	h.events[event] = payload
	return h
}

// PushURL pushes the given URL into the browser history for the new content.
// This method is chainable.
func (h *HTMXResponse) PushURL(url string) *HTMXResponse {
	SetHXPushURL(h.w, url)
	return h
}

// Retarget swaps the response into selector. This method is chainable.
func (h *HTMXResponse) Retarget(selector, strategy string) *HTMXResponse {
	SetHXRetarget(h.w, selector)
	if strategy != "" {
		SetHXReswap(h.w, strategy)
	}
	return h
}

// Apply writes the queued triggers without writing a status.
func (h *HTMXResponse) Apply() {
	SetHXTriggers(h.w, h.events)
}

// Redirect instructs htmx to redirect the browser to the given URL.
// It sets the HX-Redirect header and returns a 204 No Content status.
// The handler should return immediately after calling this method to avoid
// accidental writes that would be ignored.
func (h *HTMXResponse) Redirect(url string) {
	h.Apply()
	SetHXRedirect(h.w, url)
	h.w.WriteHeader(http.StatusNoContent)
}

// NoSwap keeps the current DOM untouched while still delivering triggers.
// It answers 204 with HX-Reswap: none.
func (h *HTMXResponse) NoSwap() {
	h.Apply()
	SetHXReswap(h.w, "none")
	h.w.WriteHeader(http.StatusNoContent)
}
