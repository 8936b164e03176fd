// Access-log demo server.
//
// This is the entry point for a small HTTP server that exercises the
// accesslog middleware end to end: every request to it produces one Common
// Log Format line on stdout.
//
// Usage:
//
//	ACCESS_LOG_DURATION=true LISTEN_ADDR=:8080 go run ./cmd/api
//
// Environment Variables:
//   - LISTEN_ADDR: Address to listen on (default: ":8080")
//   - ACCESS_LOG: Enable the access-log middleware (default: "true")
//   - ACCESS_LOG_LEVEL: Severity access lines are emitted at (default: "info")
//   - ACCESS_LOG_DURATION: Append request latency to each line (default: "false")
//   - LOG_PRETTY: Console output instead of raw JSON (default: "true")
//   - ENABLE_PPROF: Expose /debug/pprof/ endpoints (default: "false")
package main

import (
	"os"

	"accesslog/internal/config"
	"accesslog/internal/server"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	setupLogging(cfg)

	srv := server.New(cfg)

	log.Fatal().Err(srv.ListenAndServe()).Msg("Server error")
}

func setupLogging(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
}
