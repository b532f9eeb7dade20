package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-employees/internal/config"
	"github.com/MKhiriev/go-employees/internal/handler"
	"github.com/MKhiriev/go-employees/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may run after a stop
// signal.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			if servers.httpServer != nil {
				servers.httpServer.listener.Close()
			}
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.shutdown(ctx)
}

func (s *server) shutdown(ctx context.Context) {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown(ctx)
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown(ctx)
	}
}

// run serves until ctx is done or a transport fails, then shuts everything
// down. The first transport failure is returned.
func (s *server) run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersAreCreated
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, 2)
	launch := func(run func() error) {
		go func() {
			if err := run(); err != nil {
				errs <- err
				cancel()
			}
		}()
	}

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		launch(s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		launch(s.gRPCServer.RunServer)
	}

	<-ctx.Done()
	s.Shutdown()

	select {
	case err := <-errs:
		return errors.Join(errServerFailed, err)
	default:
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
