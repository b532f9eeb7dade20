package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-employees/internal/config"
	"github.com/MKhiriev/go-employees/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo holds a connected document store client and the employees
// collection it serves.
type Mongo struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewConnectMongo connects to the document store described by cfg and pings
// the primary before returning.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during document store connection")
		return nil, fmt.Errorf("error occured during document store connection: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting document store (ping)")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error connecting document store: %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").
		Str("database", cfg.Database).
		Str("collection", cfg.Collection).
		Msg("connected to document store successfully")

	return &Mongo{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		logger:     log,
	}, nil
}

// Ping checks that the primary is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
