package gateway

import (
	"context"
	"net"
	"strings"
)

// Caller identifies who a backend call is made for: the host the browser used
// to reach this service and the user's bearer token, if any.
type Caller struct {
	Host  string
	Token string
}

type callerKey struct{}

// WithCaller attaches c to ctx.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFrom returns the caller attached to ctx, or the zero Caller.
func CallerFrom(ctx context.Context) Caller {
	c, _ := ctx.Value(callerKey{}).(Caller)
	return c
}

// isLocalHost reports whether host (optionally with a port) is a loopback name
// used during development.
func isLocalHost(host string) bool {
	h := strings.TrimSpace(host)
	if hh, _, err := net.SplitHostPort(h); err == nil {
		h = hh
	}
	h = strings.Trim(h, "[]")
	return strings.EqualFold(h, "localhost") || h == "127.0.0.1"
}
