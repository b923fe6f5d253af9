package config

import (
	"fmt"
	"time"
)

// ServerApp holds server-side application settings derived from the shared
// structured config.
type ServerApp struct {
	// TokenSignKey is the secret used to sign JWT tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// TokenDuration is the validity window of issued tokens.
	TokenDuration time.Duration
	// Version is the application version string.
	Version string
}

// ServerHTTP holds inbound transport settings.
type ServerHTTP struct {
	// HTTPAddress is the listen address in "host:port" form.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
}

// ServerDB contains database connection settings for the server.
type ServerDB struct {
	// DSN is the PostgreSQL connection string.
	DSN string
}

// ServerStorage groups server storage backend settings.
type ServerStorage struct {
	// DB holds database settings.
	DB ServerDB
}

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains token and version settings.
	App ServerApp
	// Server contains inbound transport settings.
	Server ServerHTTP
	// Storage contains database settings.
	Storage ServerStorage
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerStorage{
			DB: ServerDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}

	return serverCfg, serverCfg.validate()
}
