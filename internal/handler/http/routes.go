package http

import (
	"net/http"

	"github.com/MKhiriev/go-employees/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer, withGZip)
	if h.settings.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.settings.RequestTimeout))
	}

	// set before mounting so that sub-routers inherit them
	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	// routes without authorization
	router.Get("/", h.root)
	router.Get("/version", h.getServerVersion)
	if h.settings.Gatherer != nil {
		router.Method(http.MethodGet, "/metrics", metrics.Handler(h.settings.Gatherer))
	}
	if h.settings.AuthEnabled {
		router.Post("/token", h.token)
	}

	router.Route("/employees", func(r chi.Router) {
		if h.settings.AuthEnabled {
			r.Use(h.auth)
		}

		r.Post("/", h.createEmployee)
		r.Get("/", h.listEmployees)
		r.Get("/search", h.searchEmployeesBySkill)
		r.Get("/avg-salary", h.averageSalaryByDepartment)
		r.Get("/{employee_id}", h.getEmployee)
		r.Put("/{employee_id}", h.updateEmployee)
		r.Delete("/{employee_id}", h.deleteEmployee)
	})

	return router
}
