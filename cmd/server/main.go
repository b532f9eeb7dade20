package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-employees/internal/config"
	"github.com/MKhiriev/go-employees/internal/handler"
	"github.com/MKhiriev/go-employees/internal/logger"
	"github.com/MKhiriev/go-employees/internal/metrics"
	"github.com/MKhiriev/go-employees/internal/server"
	"github.com/MKhiriev/go-employees/internal/service"
	"github.com/MKhiriev/go-employees/internal/store"
	"github.com/MKhiriev/go-employees/internal/workers"
	"github.com/MKhiriev/go-employees/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const storageTimeout = 30 * time.Second

func main() {
	buildInfo := newBuildInfo()
	printBuildInfo(buildInfo)

	log := logger.NewLogger("employees-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("driver", cfg.Storage.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Bool("auth_enabled", cfg.App.AuthEnabled).
		Msg("received configs")

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		cancel()
		log.Fatal().Err(err).Msg("error creating storages")
	}
	if err = storages.Init(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("error initializing storages")
	}
	cancel()
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), storageTimeout)
		defer closeCancel()
		if err := storages.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	services, err := service.NewServices(storages, cfg, collector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, collector, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var backgroundWorkers []workers.Worker
	if handlers.GRPC != nil {
		backgroundWorkers = append(backgroundWorkers, workers.NewHealthWorker(
			storages, handlers.GRPC, cfg.Workers.HealthCheckInterval, log.WithComponent("health-worker"),
		))
	}
	ws := workers.NewWorkers(backgroundWorkers...)
	ws.Start(context.Background())
	defer ws.Stop()

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("error running server")
	}
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
