package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-employees/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// employeeIndexes are the indexes the employees collection must carry.
func employeeIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "joining_date", Value: 1}}},
		{Keys: bson.D{{Key: "skills", Value: 1}}},
	}
}

// employeeValidator is the $jsonSchema every new or modified document must
// satisfy.
func employeeValidator() bson.D {
	return bson.D{{Key: "$jsonSchema", Value: bson.D{
		{Key: "bsonType", Value: "object"},
		{Key: "required", Value: bson.A{"employee_id", "name", "department", "salary", "joining_date", "skills"}},
		{Key: "properties", Value: bson.D{
			{Key: "employee_id", Value: bson.D{{Key: "bsonType", Value: "string"}}},
			{Key: "name", Value: bson.D{{Key: "bsonType", Value: "string"}}},
			{Key: "department", Value: bson.D{{Key: "bsonType", Value: "string"}}},
			{Key: "salary", Value: bson.D{
				{Key: "bsonType", Value: bson.A{"int", "long"}},
				{Key: "minimum", Value: 0},
			}},
			{Key: "joining_date", Value: bson.D{{Key: "bsonType", Value: "date"}}},
			{Key: "skills", Value: bson.D{
				{Key: "bsonType", Value: "array"},
				{Key: "items", Value: bson.D{{Key: "bsonType", Value: "string"}}},
			}},
		}},
	}}}
}

// Init creates the employee indexes and then attaches the schema validator.
// Index creation failures are returned. Attaching the validator is best
// effort: a failure is logged as a warning and startup continues.
func (m *Mongo) Init(ctx context.Context) error {
	return initEmployeeCollection(ctx, m.collection, m.logger)
}

func initEmployeeCollection(ctx context.Context, collection *mongo.Collection, log *logger.Logger) error {
	names, err := collection.Indexes().CreateMany(ctx, employeeIndexes())
	if err != nil {
		log.Err(err).Str("func", "initEmployeeCollection").Msg("failed to create indexes")
		return fmt.Errorf("%w: %w", ErrCreatingIndexes, err)
	}
	log.Debug().Strs("indexes", names).Msg("employee indexes are in place")

	cmd := bson.D{
		{Key: "collMod", Value: collection.Name()},
		{Key: "validator", Value: employeeValidator()},
		{Key: "validationLevel", Value: "moderate"},
	}
	if err = collection.Database().RunCommand(ctx, cmd).Err(); err != nil {
		log.Warn().Err(err).Str("func", "initEmployeeCollection").Msg("schema validator was not attached")
		return nil
	}
	log.Info().Str("collection", collection.Name()).Msg("schema validator attached")

	return nil
}
