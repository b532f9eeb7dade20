package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-driver storage driver ("mongo" or "postgres")
//	-mongo-uri MongoDB connection string
//	-mongo-db MongoDB database name
//	-mongo-collection MongoDB collection name
//	-d database DSN
//	-c/-config json file path with configs
//	-auth enable bearer-token authentication
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-health-interval store health probe interval (e.g., "30s")
//	-log-level minimum log level (e.g., "debug", "warn")
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var driver string
	var mongoURI, mongoDatabase, mongoCollection string
	var databaseDSN string
	var jsonConfigPath string
	var authEnabled bool
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var healthInterval time.Duration
	var logLevel string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&driver, "driver", "", "Storage driver (mongo, postgres)")
	flag.StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection string")
	flag.StringVar(&mongoDatabase, "mongo-db", "", "MongoDB database name")
	flag.StringVar(&mongoCollection, "mongo-collection", "", "MongoDB collection name")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.BoolVar(&authEnabled, "auth", false, "Enable bearer-token authentication")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&healthInterval, "health-interval", 0, "Store health probe interval (e.g., 30s)")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AuthEnabled:   authEnabled,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			Driver: driver,
			Mongo: Mongo{
				URI:        mongoURI,
				Database:   mongoDatabase,
				Collection: mongoCollection,
			},
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			HealthCheckInterval: healthInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
