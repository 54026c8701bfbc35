package httpx

import (
	"encoding/json"
	"net/http"
	"strings"
)

// IsHTMX reports whether the request was initiated by htmx (Hx-Request: true).
func IsHTMX(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-Request"), "true")
}

// IsHistoryRestore reports true when htmx is restoring history (Hx-History-Restore-Request: true).
func IsHistoryRestore(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-History-Restore-Request"), "true")
}

// WantsPartial returns true when the handler should return only the view fragment.
// History restores need the full page because htmx replaces the whole body.
func WantsPartial(r *http.Request) bool {
	return IsHTMX(r) && !IsHistoryRestore(r)
}

// SetHXRedirect instructs htmx to redirect the browser to the given URL.
func SetHXRedirect(w http.ResponseWriter, url string) { w.Header().Set("Hx-Redirect", url) }

// SetHXPushURL pushes the given URL into the browser history for the new content.
func SetHXPushURL(w http.ResponseWriter, url string) { w.Header().Set("Hx-Push-Url", url) }

// SetHXReswap overrides the swap strategy of the triggering element.
func SetHXReswap(w http.ResponseWriter, strategy string) { w.Header().Set("Hx-Reswap", strategy) }

// SetHXRetarget points the swap at a different element.
func SetHXRetarget(w http.ResponseWriter, selector string) { w.Header().Set("Hx-Retarget", selector) }

// SetHXTrigger triggers a single client-side event after swap with optional payload.
// If payload is nil, the value true is used for the event.
func SetHXTrigger(w http.ResponseWriter, event string, payload any) {
	SetHXTriggers(w, map[string]any{event: payload})
}

// SetHXTriggers sets the Hx-Trigger response header as a JSON object holding
// every event. Nil payloads become true. An empty map leaves the header unset.
func SetHXTriggers(w http.ResponseWriter, events map[string]any) {
	if len(events) == 0 {
		return
	}
	m := make(map[string]any, len(events))
	for event, payload := range events {
		if payload == nil {
			payload = true
		}
		m[event] = payload
	}
	b, err := json.Marshal(m)
	if err != nil {
		// Fall back to boolean triggers if a payload cannot be serialized
		for event := range m {
			m[event] = true
		}
		b, _ = json.Marshal(m)
	}
	w.Header().Set("Hx-Trigger", string(b))
}
