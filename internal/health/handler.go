// Package health handles the liveness endpoint.
package health

import (
	"net/http"
	"strconv"
)

const body = "ok"

// HandleCheck handles GET /health. It sets an explicit Content-Length so
// access lines for this endpoint always carry a real size field.
func HandleCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
