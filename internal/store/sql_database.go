package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-employees/internal/logger"
	"github.com/MKhiriev/go-employees/migrations"
)

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a *sql.DB with the error classifier and logger shared by the
// relational repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Init implements [Database] by running the migrations.
func (db *DB) Init(ctx context.Context) error {
	if err := db.Migrate(); err != nil {
		db.logger.Err(err).Str("func", "*DB.Init").Msg("failed to apply migrations")
		return err
	}
	db.logger.Info().Str("func", "*DB.Init").Msg("migrations applied")
	return nil
}

// Ping implements [Database].
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// Close implements [Database].
func (db *DB) Close(_ context.Context) error {
	return db.DB.Close()
}

// retryable reports whether err was classified as transient.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
