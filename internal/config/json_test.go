package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"token_sign_key": "secret",
			"token_issuer": "warranty-keeper",
			"token_duration": "24h",
			"reminders_enabled": true,
			"reminder_offset_days": 30
		},
		"storage": {"db": {"dsn": "warranties.db"}},
		"server": {"http_address": "localhost:8080", "request_timeout": "30s"},
		"adapter": {"address": "https://api.example.com/api", "request_timeout": "15s"},
		"workers": {"sync_interval": "5m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "warranty-keeper", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.True(t, cfg.App.RemindersEnabled)
	assert.Equal(t, 30, cfg.App.ReminderOffsetDays)
	assert.Equal(t, "warranties.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://api.example.com/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	require.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := writeTempJSON(t, `{"app": {`)
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "string form", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}

	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}
