package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spendwise/spendwise-web/internal/errors"
)

type recordingSink struct {
	counts  []recorded
	timings []recorded
}

type recorded struct {
	name string
	tags map[string]string
}

func (r *recordingSink) Count(name string, _ int64, tags map[string]string) {
	r.counts = append(r.counts, recorded{name: name, tags: tags})
}

func (r *recordingSink) Timing(name string, _ time.Duration, tags map[string]string) {
	r.timings = append(r.timings, recorded{name: name, tags: tags})
}

func TestEmitBackendRequest_Success(t *testing.T) {
	sink := &recordingSink{}
	EmitBackendRequest(sink, BackendRequest{
		Endpoint: "dashboard",
		Method:   "GET",
		Status:   200,
		Duration: 15 * time.Millisecond,
	})

	require.Len(t, sink.counts, 1)
	require.Len(t, sink.timings, 1)
	assert.Equal(t, "backend.request", sink.counts[0].name)
	assert.Equal(t, map[string]string{
		"endpoint": "dashboard",
		"method":   "GET",
		"result":   ResultSuccess,
		"status":   "200",
	}, sink.counts[0].tags)
	assert.Equal(t, "backend.duration", sink.timings[0].name)
}

func TestEmitBackendRequest_ErrorClass(t *testing.T) {
	sink := &recordingSink{}
	EmitBackendRequest(sink, BackendRequest{
		Endpoint: "admin/stats",
		Method:   "GET",
		Status:   403,
		Err:      apperrors.AccessDenied("nope", 403),
	})

	require.Len(t, sink.counts, 1)
	assert.Empty(t, sink.timings, "zero duration skips the timing")
	assert.Equal(t, ResultError, sink.counts[0].tags["result"])
	assert.Equal(t, "access_denied", sink.counts[0].tags["error_class"])
}

func TestEmitBackendRequest_NilSink(t *testing.T) {
	assert.NotPanics(t, func() {
		EmitBackendRequest(nil, BackendRequest{Err: errors.New("x")})
	})
}

func TestCloneTags(t *testing.T) {
	assert.Nil(t, CloneTags(nil))
	src := map[string]string{"a": "1"}
	cp := CloneTags(src)
	cp["a"] = "2"
	assert.Equal(t, "1", src["a"])
}
