package http

import (
	"time"

	"github.com/MKhiriev/go-employees/internal/logger"
	"github.com/MKhiriev/go-employees/internal/metrics"
	"github.com/MKhiriev/go-employees/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// Settings controls optional parts of the router.
type Settings struct {
	// AuthEnabled mounts the bearer-token gate in front of /employees and
	// registers POST /token.
	AuthEnabled bool

	// RequestTimeout bounds every request when positive.
	RequestTimeout time.Duration

	// Metrics records request and domain metrics. Nil disables recording.
	Metrics metrics.MetricsCollector

	// Gatherer backs GET /metrics. Nil leaves the route unregistered.
	Gatherer prometheus.Gatherer
}

type Handler struct {
	services *service.Services
	settings Settings

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, logger *logger.Logger) *Handler {
	if settings.Metrics == nil {
		settings.Metrics = metrics.Nop()
	}

	logger.Info().Bool("auth_enabled", settings.AuthEnabled).Msg("http handler created")
	return &Handler{
		services: services,
		settings: settings,
		logger:   logger,
	}
}
