package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"studybot/internal/metrics"
)

// unmatchedPath labels requests no route matched, so stray paths share one series
const unmatchedPath = "unmatched"

// Metrics records request counts and latency in Prometheus, labelled by route pattern.
// It must wrap the ServeMux directly: the mux sets r.Pattern on the request it is
// handed, and middleware that clones the request would hide it.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		method, path := routeLabels(r)
		metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

// routeLabels returns bounded method and path label values for r
func routeLabels(r *http.Request) (string, string) {
	method := r.Method
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions:
	default:
		method = "OTHER"
	}

	if r.Pattern == "" {
		return method, unmatchedPath
	}
	// "GET /chat/{user_id}/history" -> "/chat/{user_id}/history"
	if _, path, ok := strings.Cut(r.Pattern, " "); ok {
		return method, path
	}
	return method, r.Pattern
}
