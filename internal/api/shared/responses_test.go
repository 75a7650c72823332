package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/typeflow-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "sentence response",
			status:       http.StatusOK,
			data:         map[string]string{"sentence": "The quick brown fox jumps."},
			expectedBody: `{"sentence":"The quick brown fox jumps."}`,
		},
		{
			name:         "empty response",
			status:       http.StatusOK,
			data:         map[string]interface{}{},
			expectedBody: `{}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedBody+"\n", w.Body.String())
		})
	}
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	ctx, logBuf := logger.NewLogCaptureContext(t)
	req := httptest.NewRequest(http.MethodGet, "/test", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
	logger.AssertLogContains(t, logBuf, "failed to encode JSON response")
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		message     string
		err         error
		wantLevel   string
		notInLog    string
		wantInLog   string
		wantErrType bool
	}{
		{
			name:        "server error is logged at error level and redacted",
			status:      http.StatusInternalServerError,
			message:     "Failed to generate sentence",
			err:         errors.New("groq rejected key gsk_abcdefghijklmnop123"),
			wantLevel:   "ERROR",
			notInLog:    "gsk_abcdefghijklmnop123",
			wantInLog:   "[REDACTED_KEY]",
			wantErrType: true,
		},
		{
			name:      "client error is logged at debug level",
			status:    http.StatusBadRequest,
			message:   "Invalid request format",
			err:       errors.New("unexpected end of JSON input"),
			wantLevel: "DEBUG",
			wantInLog: "unexpected end of JSON input",
		},
		{
			name:      "nil error",
			status:    http.StatusBadRequest,
			message:   "Invalid request format",
			wantLevel: "DEBUG",
			wantInLog: "Invalid request format",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx, logBuf := logger.NewLogCaptureContext(t)
			req := httptest.NewRequest(http.MethodPost, "/generate", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, req, tc.status, tc.message, tc.err)

			assert.Equal(t, tc.status, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, map[string]interface{}{"error": tc.message}, body)

			entries, err := logBuf.GetLogEntries()
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tc.wantLevel, entries[0]["level"])
			assert.Equal(t, "API error response", entries[0]["msg"])
			assert.Equal(t, float64(tc.status), entries[0]["status_code"])
			assert.Equal(t, "/generate", entries[0]["path"])

			logs := logBuf.String()
			assert.Contains(t, logs, tc.wantInLog)
			if tc.notInLog != "" {
				assert.NotContains(t, logs, tc.notInLog)
			}
			if tc.wantErrType {
				assert.Contains(t, entries[0], "error_type")
			}
		})
	}
}

func TestRespondWithErrorAndLogUsesContextLogger(t *testing.T) {
	ctx, logBuf := logger.NewLogCaptureContext(t)
	log := logger.FromContext(ctx).With("trace_id", "abc123")
	req := httptest.NewRequest(http.MethodPost, "/generate", nil).
		WithContext(logger.WithLogger(context.Background(), log))
	w := httptest.NewRecorder()

	RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "Failed to generate sentence", errors.New("boom"))

	logger.AssertLogField(t, logBuf, "trace_id", "abc123")
}
