package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"accesslog/internal/config"
)

func newRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = "203.0.113.5:51234"
	return req
}

func TestHandlerHealth(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{AccessLog: true, AccessLogLevel: zerolog.InfoLevel}
	h := New(cfg).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, newRequest("/health"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHandlerWithoutAccessLog(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{AccessLog: false}
	h := New(cfg).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, newRequest("/health"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHandlerUnknownRoute(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{AccessLog: true, AccessLogLevel: zerolog.InfoLevel}
	h := New(cfg).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, newRequest("/nope"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPprofDisabledByDefault(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	h := New(cfg).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, newRequest("/debug/pprof/"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
