// Package gateway is the only component that talks to the SpendWise REST
// backend. It attaches the caller's bearer token, picks the backend base URL
// from the caller's host and turns non-success responses into AppErrors.
// There is no retry and no client-side timeout; the request context is the
// only bound.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	apperrors "github.com/spendwise/spendwise-web/internal/errors"
	"github.com/spendwise/spendwise-web/internal/observability/metrics"
	"github.com/spendwise/spendwise-web/internal/observability/statsd"
)

const (
	// DefaultDevURL is used when the browser reached us on a loopback host.
	DefaultDevURL = "http://127.0.0.1:5000"
	// DefaultProdURL is used for every other host.
	DefaultProdURL = "https://spendwise-backend-7ul1.onrender.com"
)

// Options configures a Client.
type Options struct {
	// BaseURL, when set, is used for every call regardless of host.
	BaseURL string
	DevURL  string
	ProdURL string
	// Transport is the shared base round tripper. Defaults to http.DefaultTransport.
	Transport http.RoundTripper
	Metrics   statsd.Sink
	Logger    *slog.Logger
}

// Client issues backend calls on behalf of the caller in the context.
// It is safe for concurrent use.
type Client struct {
	baseURL   string
	devURL    string
	prodURL   string
	transport http.RoundTripper
	metrics   statsd.Sink
	logger    *slog.Logger
	now       func() time.Time
}

// New builds a Client.
func New(opts Options) *Client {
	c := &Client{
		baseURL:   trimURL(opts.BaseURL),
		devURL:    trimURL(opts.DevURL),
		prodURL:   trimURL(opts.ProdURL),
		transport: opts.Transport,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
		now:       time.Now,
	}
	if c.devURL == "" {
		c.devURL = DefaultDevURL
	}
	if c.prodURL == "" {
		c.prodURL = DefaultProdURL
	}
	if c.transport == nil {
		c.transport = http.DefaultTransport
	}
	if c.metrics == nil {
		c.metrics = statsd.Discard{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.logger = c.logger.With("component", "gateway")
	return c
}

func trimURL(u string) string { return strings.TrimRight(strings.TrimSpace(u), "/") }

// BaseURL resolves the backend base URL for a browser host.
func (c *Client) BaseURL(host string) string {
	switch {
	case c.baseURL != "":
		return c.baseURL
	case isLocalHost(host):
		return c.devURL
	default:
		return c.prodURL
	}
}

// httpClient returns a client that adds the bearer header when token is set.
func (c *Client) httpClient(token string) *http.Client {
	if token == "" {
		return &http.Client{Transport: c.transport}
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	return &http.Client{Transport: &oauth2.Transport{Source: src, Base: c.transport}}
}

// call describes one backend request.
type call struct {
	method   string
	path     string
	endpoint string
	body     any
	// fallback is the user-facing message when the backend supplies none.
	fallback string
}

// send performs the request and returns the response for 2xx statuses. The
// caller owns the body. Non-2xx responses are consumed and mapped to errors.
func (c *Client) send(ctx context.Context, cl call) (*http.Response, error) {
	caller := CallerFrom(ctx)
	start := c.now()

	var reader io.Reader
	if cl.body != nil {
		payload, err := json.Marshal(cl.body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.BaseURL(caller.Host)+cl.path, reader)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient(caller.Token).Do(req)
	if err != nil {
		mapped := transportError(ctx, err)
		c.record(ctx, cl, 0, start, mapped)
		return nil, mapped
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		mapped := statusError(resp, cl.fallback)
		closeBody(resp)
		c.record(ctx, cl, resp.StatusCode, start, mapped)
		return nil, mapped
	}

	c.record(ctx, cl, resp.StatusCode, start, nil)
	return resp, nil
}

// do performs the request and decodes a 2xx JSON body into out (when non-nil).
func (c *Client) do(ctx context.Context, cl call, out any) error {
	resp, err := c.send(ctx, cl)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(fmt.Errorf("decode %s: %w", cl.endpoint, err), apperrors.ErrCodeBackend, cl.fallback)
	}
	return nil
}

func (c *Client) record(ctx context.Context, cl call, status int, start time.Time, err error) {
	d := c.now().Sub(start)
	metrics.EmitBackendRequest(c.metrics, metrics.BackendRequest{
		Endpoint: cl.endpoint,
		Method:   cl.method,
		Status:   status,
		Duration: d,
		Err:      err,
	})
	if err != nil {
		c.logger.WarnContext(ctx, "backend call failed",
			"endpoint", cl.endpoint,
			"method", cl.method,
			"status", status,
			"duration_ms", d.Milliseconds(),
			"error", err,
		)
		return
	}
	c.logger.DebugContext(ctx, "backend call",
		"endpoint", cl.endpoint,
		"method", cl.method,
		"status", status,
		"duration_ms", d.Milliseconds(),
	)
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
}
