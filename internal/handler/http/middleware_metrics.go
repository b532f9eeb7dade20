package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that did not match any registered route, so
// that arbitrary paths cannot blow up metric cardinality.
const unmatchedRoute = "unmatched"

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		h.settings.Metrics.RecordRequest(r.Method, routePattern(r), mw.statusCode(), time.Since(start))
	})
}

// routePattern is the chi pattern the request matched, e.g.
// "/employees/{employee_id}", or unmatchedRoute. It is only complete after
// the router has served the request.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return unmatchedRoute
}
