package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-registry-validator/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMethodRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
	router.Get("/api/version/", ok)
	router.Post("/api/v{version:[0-9]+}/{entity}/validate", ok)
	router.Put("/api/v{version:[0-9]+}/{entity}/validate", ok)
	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))
	return router
}

func TestMethodNotAllowed_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "registered GET", method: http.MethodGet, path: "/api/version/", wantStatus: http.StatusOK},
		{name: "registered POST", method: http.MethodPost, path: "/api/v11/service/validate", wantStatus: http.StatusOK},
		{name: "POST on version", method: http.MethodPost, path: "/api/version/", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET"},
		{name: "GET on validate", method: http.MethodGet, path: "/api/v9/organization/validate", wantStatus: http.StatusMethodNotAllowed, wantAllow: "POST, PUT"},
		{name: "DELETE on validate", method: http.MethodDelete, path: "/api/v9/organization/validate", wantStatus: http.StatusMethodNotAllowed, wantAllow: "POST, PUT"},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
		{name: "non numeric version", method: http.MethodPost, path: "/api/vX/service/validate", wantStatus: http.StatusNotFound},
	}

	router := newMethodRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
		})
	}
}

func TestMethodNotAllowed_JSONBody(t *testing.T) {
	rr := httptest.NewRecorder()
	newMethodRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/api/version/", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "method PATCH is not allowed", body.Error)
}

func TestNotFound_JSONBody(t *testing.T) {
	rr := httptest.NewRecorder()
	newMethodRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)

	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "route /nope not found", body.Error)
}
