package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown storage driver or a
	// missing connection string for the selected driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates that authentication is enabled but no
	// token sign key or no users are configured.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogLevel indicates a log level zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
