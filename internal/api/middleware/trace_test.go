package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/typeflow-api/internal/api/shared"
	"github.com/phrazzld/typeflow-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	base, logBuf := logger.GetTestLogger(t)

	var seenTraceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	Trace(base)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate", nil))

	require.Len(t, seenTraceID, shared.TraceIDLength)
	assert.Equal(t, seenTraceID, rec.Header().Get(shared.TraceIDHeader))

	entries, err := logBuf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, seenTraceID, entry["trace_id"])
	}
	assert.Equal(t, "request started", entries[0]["msg"])
	assert.Equal(t, "/generate", entries[0]["path"])
}

func TestTraceGeneratesDistinctIDs(t *testing.T) {
	handler := Trace(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := httptest.NewRecorder()
	second := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, first.Header().Get(shared.TraceIDHeader))
	assert.NotEqual(t, first.Header().Get(shared.TraceIDHeader), second.Header().Get(shared.TraceIDHeader))
}
