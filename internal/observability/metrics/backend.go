package metrics

import (
	"strconv"
	"time"

	obserrors "github.com/spendwise/spendwise-web/internal/observability/errors"
	"github.com/spendwise/spendwise-web/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// BackendRequest captures one call to the SpendWise REST backend.
type BackendRequest struct {
	Endpoint string
	Method   string
	Status   int
	Duration time.Duration
	Err      error
}

// EmitBackendRequest emits the standard request counter and duration timing.
func EmitBackendRequest(sink statsd.Sink, in BackendRequest) {
	if sink == nil {
		return
	}

	result := ResultSuccess
	if in.Err != nil {
		result = ResultError
	}
	tags := map[string]string{
		"endpoint": in.Endpoint,
		"method":   in.Method,
		"result":   result,
	}
	if in.Status > 0 {
		tags["status"] = strconv.Itoa(in.Status)
	}
	if in.Err != nil {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("backend.request", 1, tags)
	if in.Duration > 0 {
		sink.Timing("backend.duration", in.Duration, CloneTags(tags))
	}
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
