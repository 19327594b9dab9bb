package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/quota-ledger/internal/logger"
)

// observeLogs swaps the global logger for one that records entries.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zap.InfoLevel)
	original := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = original })

	return logs
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		status       int
		body         string
		expectedSize string
	}{
		{
			name:         "account lookup",
			method:       http.MethodGet,
			target:       "/api/v1/users/alice/account",
			status:       http.StatusOK,
			body:         `{"user":{"username":"alice"}}`,
			expectedSize: "29B",
		},
		{
			name:         "rejected quota",
			method:       http.MethodPut,
			target:       "/api/v1/users/1/quota",
			status:       http.StatusBadRequest,
			body:         `{"error":"invalid quota"}`,
			expectedSize: "25B",
		},
		{
			name:         "deleted without body",
			method:       http.MethodDelete,
			target:       "/api/v1/databases/7",
			status:       http.StatusNoContent,
			expectedSize: "0B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observeLogs(t)

			var fromCtx string
			handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromCtx = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.body, rr.Body.String())

			reqID := rr.Header().Get("X-Request-ID")
			_, err := uuid.Parse(reqID)
			require.NoError(t, err)
			assert.Equal(t, reqID, fromCtx)

			entries := logs.All()
			require.Len(t, entries, 2)

			request := entries[0].ContextMap()
			assert.Equal(t, "request", entries[0].Message)
			assert.Equal(t, reqID, request["request_id"])
			assert.Equal(t, tt.method, request["method"])
			assert.Equal(t, tt.target, request["uri"])

			response := entries[1].ContextMap()
			assert.Equal(t, "response", entries[1].Message)
			assert.Equal(t, reqID, response["request_id"])
			assert.EqualValues(t, tt.status, response["status"])
			assert.Equal(t, tt.expectedSize, response["response_size"])
		})
	}
}

func TestLoggingMiddleware_DistinctRequestIDs(t *testing.T) {
	observeLogs(t)
	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/users/1", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/users/1", nil))

	assert.NotEqual(t, first.Header().Get("X-Request-ID"), second.Header().Get("X-Request-ID"))
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}
