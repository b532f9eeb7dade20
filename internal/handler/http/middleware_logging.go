package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-employees/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one entry per request through the trace-scoped logger.
// Server errors are logged at error level and client errors at warn, so a
// "warn" log level still shows every failed request.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.statusCode()
		logger.FromRequest(r).WithLevel(levelForStatus(status)).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("route", routePattern(r)).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}

func levelForStatus(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
