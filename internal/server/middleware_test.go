package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"beacon/internal/server"
)

func TestRequestIDMiddleware_MintsID(t *testing.T) {
	h := server.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, rec.Header().Get("X-Request-ID"), 12)
}

func TestRequestIDMiddleware_PropagatesCallerID(t *testing.T) {
	h := server.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, "caller-supplied", rec.Header().Get("X-Request-ID"))
}

func TestLoggingMiddleware_PassesThroughStatus(t *testing.T) {
	h := server.LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
}
