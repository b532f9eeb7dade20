package service

import (
	"context"

	"github.com/MKhiriev/go-employees/internal/config"
	"github.com/MKhiriev/go-employees/internal/logger"
	"github.com/MKhiriev/go-employees/models"
)

type appInfoService struct {
	info models.AppInfo
}

// NewAppInfoService snapshots the version, storage driver and auth mode the
// server was started with. The version is required.
func NewAppInfoService(cfg *config.StructuredConfig, logger *logger.Logger) (AppInfoService, error) {
	if cfg.App.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	info := models.AppInfo{
		Version:     cfg.App.Version,
		Storage:     cfg.Storage.Driver,
		AuthEnabled: cfg.App.AuthEnabled,
	}
	logger.Debug().
		Str("version", info.Version).
		Str("storage", info.Storage).
		Bool("auth_enabled", info.AuthEnabled).
		Msg("app info service created")

	return &appInfoService{info: info}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
