package httpx

import (
	"net/http"
	"time"

	"github.com/spendwise/spendwise-web/internal/notify"
	"github.com/spendwise/spendwise-web/internal/service"
)

// DefaultSessionCookieName names the cookie carrying the session ID.
const DefaultSessionCookieName = "session_id"

// CookieConfig holds the attributes of the session and flash cookies.
type CookieConfig struct {
	SessionName string
	FlashName   string
	Domain      string
	// Secure forces the Secure attribute. Requests arriving over TLS or a
	// forwarded HTTPS hop always get it.
	Secure bool
	TTL    time.Duration
}

func (c CookieConfig) withDefaults() CookieConfig {
	if c.SessionName == "" {
		c.SessionName = DefaultSessionCookieName
	}
	if c.FlashName == "" {
		c.FlashName = DefaultFlashCookieName
	}
	if c.TTL <= 0 {
		c.TTL = service.DefaultSessionTTL
	}
	return c
}

func (c CookieConfig) secure(r *http.Request) bool {
	return c.Secure || r.TLS != nil || isForwardedHTTPS(r)
}

func (c CookieConfig) set(w http.ResponseWriter, r *http.Request, name, value string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   c.secure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge.Seconds()),
	})
}

func (c CookieConfig) clear(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   c.secure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// syncSession makes the browser's session cookie agree with st: set when the
// record exists under a different or missing cookie, removed when no record
// backs it.
func (c CookieConfig) syncSession(w http.ResponseWriter, r *http.Request, st *service.SessionState) {
	var current string
	if ck, err := r.Cookie(c.SessionName); err == nil {
		current = ck.Value
	}
	switch {
	case st.Stored() && current != st.ID():
		c.set(w, r, c.SessionName, st.ID(), c.TTL)
	case !st.Stored() && current != "":
		c.clear(w, r, c.SessionName)
	}
}

// writeFlash stores items for the next page render. A failure to encode only
// loses the notifications.
func (c CookieConfig) writeFlash(w http.ResponseWriter, r *http.Request, items []notify.Notification) error {
	if len(items) == 0 {
		return nil
	}
	value, err := notify.EncodeFlash(items)
	if err != nil {
		return err
	}
	c.set(w, r, c.FlashName, value, time.Minute)
	return nil
}
