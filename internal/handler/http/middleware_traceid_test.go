package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-registry-validator/internal/logger"
	"github.com/MKhiriev/go-registry-validator/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTraceHandler returns a Handler whose logger writes to buf.
func newTraceHandler(buf *bytes.Buffer) *Handler {
	return &Handler{
		logger:   &logger.Logger{Logger: zerolog.New(buf)},
		traceIDs: utils.NewUUIDGenerator(),
	}
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
		wantGenerated  bool
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id"},
		{name: "uuid from request header is reused", requestTraceID: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "no trace ID in request", wantGenerated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTraceHandler(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v11/service/validate", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			traceID := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, traceID)
			assert.Equal(t, http.StatusTeapot, rr.Code)

			if tt.wantGenerated {
				id, err := uuid.Parse(traceID)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), id.Version())
			} else {
				assert.Equal(t, tt.requestTraceID, traceID)
			}

			entry := decodeLogLine(t, strings.TrimSpace(buf.String()))
			assert.Equal(t, traceID, entry["trace_id"])
		})
	}
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := newTraceHandler(&bytes.Buffer{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rr.Header().Get(traceIDHeader)
		_, duplicate := seen[id]
		require.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_ParentLoggerUntouched(t *testing.T) {
	var buf bytes.Buffer
	h := newTraceHandler(&buf)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "t-1")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	h.logger.Info().Msg("after")
	entry := decodeLogLine(t, strings.TrimSpace(buf.String()))
	assert.NotContains(t, entry, "trace_id")
}
