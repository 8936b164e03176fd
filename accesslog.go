// Package accesslog provides an HTTP middleware that emits one access-log
// line per request in the Common Log Format (CLF), optionally annotated with
// the request latency.
//
// The middleware wraps any http.Handler, observes the response through
// httpsnoop without altering it, and writes the assembled line as a zerolog
// event at the level chosen at construction. When logging at that level is
// disabled, requests pass through untouched with no timing or formatting
// work done.
package accesslog

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is an access-log middleware instance. It is immutable after
// construction and safe for use by any number of concurrent requests.
type Logger struct {
	log      zerolog.Logger
	level    zerolog.Level
	duration bool
}

// New creates a Logger that emits at the given level, without the latency
// suffix. It panics if level is not a regular leveled-logging level; an
// undefined severity is a programming error, not a runtime condition.
func New(level zerolog.Level) Logger {
	return NewWithDuration(level, false)
}

// NewWithDuration creates a Logger that emits at the given level, appending
// the elapsed request time to each line when includeDuration is true.
func NewWithDuration(level zerolog.Level, includeDuration bool) Logger {
	if level < zerolog.TraceLevel || level > zerolog.PanicLevel {
		panic(fmt.Sprintf("accesslog: invalid log level %d", level))
	}
	return Logger{
		log:      log.Logger,
		level:    level,
		duration: includeDuration,
	}
}

// Output duplicates the Logger with its sink redirected to w.
func (l Logger) Output(w io.Writer) Logger {
	l.log = l.log.Output(w)
	return l
}

// Handler wraps next with access logging. The wrapped handler calls next
// exactly once and returns its response unmodified; the log line is a side
// effect, emitted only after next has produced the response.
func (l Logger) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.enabled() {
			next.ServeHTTP(w, r)
			return
		}

		// start must be captured before control passes downstream; every
		// other field is still readable once the response exists.
		start := time.Now()
		m := httpsnoop.CaptureMetrics(next, w, r)
		l.emit(w, r, start, m)
	})
}

// enabled reports whether an event at the configured level would currently
// be written. Checked per request, so process-wide level changes made
// through zerolog.SetGlobalLevel take effect between requests.
func (l Logger) enabled() bool {
	return l.level >= l.log.GetLevel() && l.level >= zerolog.GlobalLevel()
}

func (l Logger) emit(w http.ResponseWriter, r *http.Request, start time.Time, m httpsnoop.Metrics) {
	target := r.RequestURI
	if target == "" {
		target = r.URL.RequestURI()
	}

	ip, ok := clientAddr(r.RemoteAddr)
	if !ok {
		l.log.Debug().Str("target", target).Msg("access log: client address unavailable")
	}

	suffix := ""
	if l.duration {
		suffix = formatDuration(m.Duration)
	}

	line := formatLine(ip, start, r.Method, target, r.Proto, m.Code, contentLength(w.Header(), m.Written), suffix)
	l.log.WithLevel(l.level).Msg(line)
}
