package service

import (
	"github.com/MKhiriev/go-employees/internal/config"
	"github.com/MKhiriev/go-employees/internal/logger"
	"github.com/MKhiriev/go-employees/internal/metrics"
	"github.com/MKhiriev/go-employees/internal/store"
)

type Services struct {
	AuthService     AuthService
	EmployeeService EmployeeService
	AppInfoService  AppInfoService
}

// NewServices builds the service layer over storages. The employee service
// is wrapped with input validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, collector metrics.MetricsCollector, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	employeeService := NewEmployeeValidationService().Wrap(
		NewEmployeeService(storages.EmployeeRepository, collector, logger),
	)

	return &Services{
		AuthService:     NewAuthService(storages.CredentialRepository, cfg.App, logger),
		EmployeeService: employeeService,
		AppInfoService:  appInfoService,
	}, nil
}
