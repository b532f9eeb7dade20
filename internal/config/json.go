package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations are accepted as strings ("30s") or as nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		AuthEnabled   bool              `json:"auth_enabled"`
		TokenSignKey  string            `json:"token_sign_key"`
		TokenIssuer   string            `json:"token_issuer"`
		TokenDuration Duration          `json:"token_duration"`
		Users         map[string]string `json:"users"`
		Version       string            `json:"version"`
		LogLevel      string            `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver"`

		Mongo struct {
			URI        string `json:"uri"`
			Database   string `json:"database"`
			Collection string `json:"collection"`
		} `json:"mongo,omitempty"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		HealthCheckInterval Duration `json:"health_check_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AuthEnabled:   jsonCfg.App.AuthEnabled,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Users:         jsonCfg.App.Users,
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			Mongo: Mongo{
				URI:        jsonCfg.Storage.Mongo.URI,
				Database:   jsonCfg.Storage.Mongo.Database,
				Collection: jsonCfg.Storage.Mongo.Collection,
			},
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			HealthCheckInterval: time.Duration(jsonCfg.Workers.HealthCheckInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
