package config

import "time"

const (
	defaultHTTPAddress         = "0.0.0.0:8000"
	defaultMongoURI            = "mongodb://localhost:27017"
	defaultMongoDatabase       = "assessment_db"
	defaultMongoCollection     = "employees"
	defaultTokenIssuer         = "go-employees"
	defaultTokenDuration       = 60 * time.Minute
	defaultHealthCheckInterval = 30 * time.Second
	defaultLogLevel            = "info"
)

// defaultConfig returns the values used for every field no source has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			LogLevel:      defaultLogLevel,
		},
		Storage: Storage{
			Driver: DriverMongo,
			Mongo: Mongo{
				URI:        defaultMongoURI,
				Database:   defaultMongoDatabase,
				Collection: defaultMongoCollection,
			},
		},
		Server: Server{
			HTTPAddress: defaultHTTPAddress,
		},
		Workers: Workers{
			HealthCheckInterval: defaultHealthCheckInterval,
		},
	}
}
