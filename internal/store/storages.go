package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-employees/internal/config"
	"github.com/MKhiriev/go-employees/internal/logger"
)

// Storages groups the repositories handed to the service layer together with
// the backend they run on.
type Storages struct {
	EmployeeRepository   EmployeeRepository
	CredentialRepository CredentialRepository

	database Database
}

// NewStorages connects to the backend selected by cfg.Storage.Driver and
// builds the repositories over it.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.Storage.Driver).Msg("creating new storages...")

	storages := &Storages{
		CredentialRepository: NewCredentialRepository(cfg.App.Users),
	}

	switch cfg.Storage.Driver {
	case config.DriverMongo:
		m, err := NewConnectMongo(ctx, cfg.Storage.Mongo, log)
		if err != nil {
			return nil, err
		}
		storages.database = m
		storages.EmployeeRepository = NewEmployeeMongoRepository(m, log)
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, err
		}
		storages.database = db
		storages.EmployeeRepository = NewEmployeePostgresRepository(db, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.Driver)
	}

	return storages, nil
}

// Init prepares the backend schema: indexes and validator for the document
// store, migrations for PostgreSQL.
func (s *Storages) Init(ctx context.Context) error {
	return s.database.Init(ctx)
}

// Ping reports whether the backend is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.database.Ping(ctx)
}

// Close releases the backend connection.
func (s *Storages) Close(ctx context.Context) error {
	return s.database.Close(ctx)
}
