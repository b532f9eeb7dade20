package grpc

import (
	"github.com/MKhiriev/go-employees/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service name reported next to the overall ("")
// server status.
const ServiceName = "employees.EmployeesAPI"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1 service, whose status follows the
// reachability of the employee store, together with server reflection.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both the overall status and
// [ServiceName] start as NOT_SERVING until the first successful store ping.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(false)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health and reflection services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

// SetServing flips the reported status of the server and of [ServiceName].
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// Shutdown sets every status to NOT_SERVING and ignores later updates, so
// that watchers see the server go down before the listener is closed.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health service shutting down")
	h.health.Shutdown()
}
