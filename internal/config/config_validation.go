// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverMongo:
		if cfg.Storage.Mongo.URI == "" || cfg.Storage.Mongo.Database == "" || cfg.Storage.Mongo.Collection == "" {
			return fmt.Errorf("%w: mongo uri, database and collection are required", ErrInvalidStorageConfigs)
		}
	case DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: postgres DSN is required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.App.AuthEnabled {
		if cfg.App.TokenSignKey == "" {
			return fmt.Errorf("%w: token sign key is required", ErrInvalidAuthConfigs)
		}
		if len(cfg.App.Users) == 0 {
			return fmt.Errorf("%w: at least one user is required", ErrInvalidAuthConfigs)
		}
		for username, hash := range cfg.App.Users {
			// an unquoted hash in .env loses its "$2a$..." prefix to variable expansion
			if _, err := bcrypt.Cost([]byte(hash)); err != nil {
				return fmt.Errorf("%w: password hash of user %q is not a bcrypt hash (quote it in .env): %w",
					ErrInvalidAuthConfigs, username, err)
			}
		}
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogLevel, err)
	}

	return nil
}
