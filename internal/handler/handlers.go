package handler

import (
	"errors"

	"github.com/MKhiriev/go-employees/internal/config"
	"github.com/MKhiriev/go-employees/internal/handler/grpc"
	"github.com/MKhiriev/go-employees/internal/handler/http"
	"github.com/MKhiriev/go-employees/internal/logger"
	"github.com/MKhiriev/go-employees/internal/metrics"
	"github.com/MKhiriev/go-employees/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// errNoTransport means neither SERVER_ADDRESS nor SERVER_GRPC_ADDRESS is set.
var errNoTransport = errors.New("no transport address is configured")

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a handler for every transport that has an address in
// cfg.Server. gatherer may be nil, in which case GET /metrics is not served.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, collector metrics.MetricsCollector,
	gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, http.Settings{
			AuthEnabled:    cfg.App.AuthEnabled,
			RequestTimeout: cfg.Server.RequestTimeout,
			Metrics:        collector,
			Gatherer:       gatherer,
		}, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoTransport
	}

	return handlers, nil
}
