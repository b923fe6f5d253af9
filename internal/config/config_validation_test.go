package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{ReminderOffsetDays: 30},
		Adapter: ClientAdapter{
			HTTPAddress:    "https://api.example.com/api",
			RequestTimeout: 15 * time.Second,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: "warranties.db"}},
		Workers: ClientWorkers{SyncInterval: 5 * time.Minute},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	require.NoError(t, validClientConfig().validate())

	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{
			name:    "empty dsn",
			mutate:  func(c *ClientConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing remote address",
			mutate:  func(c *ClientConfig) { c.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero sync interval",
			mutate:  func(c *ClientConfig) { c.Workers.SyncInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "negative reminder offset",
			mutate:  func(c *ClientConfig) { c.App.ReminderOffsetDays = -1 },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() *ServerConfig {
		return &ServerConfig{
			App: ServerApp{
				TokenSignKey:  "secret",
				TokenIssuer:   "warranty-keeper",
				TokenDuration: 24 * time.Hour,
			},
			Server:  ServerHTTP{HTTPAddress: "localhost:8080"},
			Storage: ServerStorage{DB: ServerDB{DSN: "postgres://localhost/warranties"}},
		}
	}

	require.NoError(t, valid().validate())

	cfg := valid()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)

	cfg = valid()
	cfg.App.TokenSignKey = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}
