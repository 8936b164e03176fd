package accesslog

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"
)

// clfTimestamp is the Common Log Format time layout, rendered from the
// request's start instant.
const clfTimestamp = "02/Jan/2006:15:04:05 -0700"

// formatLine assembles one CLF line. duration is appended after a " - "
// separator when non-empty; an empty duration contributes no characters.
func formatLine(ip string, start time.Time, method, target, proto string, status int, length int64, duration string) string {
	line := fmt.Sprintf("%s - - [%s] \"%s %s %s\" %d %d",
		ip, start.Format(clfTimestamp), method, target, proto, status, length)
	if duration != "" {
		line += " - " + duration
	}
	return line
}

// formatDuration renders an elapsed time on a three-tier human scale:
// integer microseconds below 1ms, fractional milliseconds below 1s, and
// fractional seconds above that.
func formatDuration(d time.Duration) string {
	us := d.Microseconds()
	switch {
	case us < 1000:
		return strconv.FormatInt(us, 10) + "µs"
	case us < 1000000:
		return fmt.Sprintf("%.2fms", float64(us)/1000)
	default:
		return fmt.Sprintf("%.2fs", float64(us)/1000000)
	}
}

// clientAddr resolves the peer IP from a RemoteAddr value. When the address
// is unavailable it returns the CLF "-" sentinel and false rather than
// failing the request's log line.
func clientAddr(remoteAddr string) (string, bool) {
	if remoteAddr == "" {
		return "-", false
	}
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host, true
	}
	return remoteAddr, true
}

// contentLength resolves the size field from the response's Content-Length
// header, falling back to the byte count actually written when the header is
// absent or unparsable. The field is always numeric.
func contentLength(h http.Header, written int64) int64 {
	if v := h.Get("Content-Length"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			return n
		}
	}
	return written
}
