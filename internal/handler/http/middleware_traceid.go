package http

import (
	"net/http"

	"github.com/MKhiriev/go-employees/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID puts a child logger carrying trace_id into the request context.
// A well-formed X-Trace-ID from the caller is reused, anything else is
// replaced by a fresh id. The id is echoed back in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !utils.ValidTraceID(traceID) {
			traceID = utils.NewTraceID()
		}

		l := h.logger.WithTraceID(traceID)
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
