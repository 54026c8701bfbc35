package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	apperrors "github.com/spendwise/spendwise-web/internal/errors"
)

// messageExpr picks the human-readable message out of a backend error body.
const messageExpr = "error || message || msg"

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// extractMessage returns the backend-provided message in body, or "".
func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return ""
	}
	v, err := jmespath.Search(messageExpr, doc)
	if err != nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// statusError maps a non-2xx response to an AppError. fallback is used when
// the body carries no message.
func statusError(resp *http.Response, fallback string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := extractMessage(body)
	if msg == "" {
		msg = fallback
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperrors.Unauthenticated(msg, resp.StatusCode)
	case http.StatusForbidden:
		return apperrors.AccessDenied(msg, resp.StatusCode)
	case http.StatusNotFound:
		e := apperrors.NotFound(msg)
		e.Status = resp.StatusCode
		return e
	default:
		return apperrors.Backend(msg, resp.StatusCode)
	}
}

// transportError classifies a failure to obtain any response.
func transportError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return apperrors.Wrap(err, apperrors.ErrCodeCanceled, "Request canceled")
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return apperrors.Wrap(err, apperrors.ErrCodeTimeout, "Request timed out")
	default:
		return apperrors.Transport(err)
	}
}
