// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

// legacyEnv holds the unprefixed variable names older deployments use.
type legacyEnv struct {
	MongoURI string `env:"MONGODB_URI"`
	DBName   string `env:"DB_NAME"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// parseLegacyEnv maps MONGODB_URI and DB_NAME onto the mongo storage config.
func parseLegacyEnv() (*StructuredConfig, error) {
	legacy, err := env.ParseAs[legacyEnv]()
	if err != nil {
		return nil, fmt.Errorf("error getting legacy env configs: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			Mongo: Mongo{
				URI:      legacy.MongoURI,
				Database: legacy.DBName,
			},
		},
	}, nil
}

// loadDotEnv exports the variables of a .env file into the process
// environment. Variables that are already set are not overridden.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s file: %w", path, err)
	}

	return nil
}
