// Package server provides HTTP server setup, routing, and middleware wiring.
package server

import (
	"net/http"
	"net/http/pprof"

	"github.com/rs/zerolog/log"

	"accesslog"
	"accesslog/internal/config"
	"accesslog/internal/health"
)

// Server holds the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	router *http.ServeMux
}

// New creates a new Server with all routes configured.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:    cfg,
		router: http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /health", health.HandleCheck)

	if s.cfg.EnablePprof {
		log.Info().Msg("Pprof enabled")
		s.router.HandleFunc("/debug/pprof/", pprof.Index)
		s.router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		s.router.HandleFunc("/debug/pprof/profile", pprof.Profile)
		s.router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		s.router.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
}

// Handler returns the HTTP handler with the access-log middleware applied.
func (s *Server) Handler() http.Handler {
	if s.cfg.AccessLog {
		log.Info().
			Str("level", s.cfg.AccessLogLevel.String()).
			Bool("duration", s.cfg.AccessLogDuration).
			Msg("Access logging enabled")
		mw := accesslog.NewWithDuration(s.cfg.AccessLogLevel, s.cfg.AccessLogDuration)
		return mw.Handler(s.router)
	}
	return s.router
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	log.Info().
		Str("listen_addr", s.cfg.ListenAddr).
		Msg("Starting server")

	return http.ListenAndServe(s.cfg.ListenAddr, s.Handler())
}
