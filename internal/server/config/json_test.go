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

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	t.Run("loads all fields", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"endpoint_addr_http":      "127.0.0.1:9000",
			"storage_mode":            "postgres",
			"database_dsn":            "postgres://x",
			"secret_key":              "my_secret_key",
			"token_validity_duration": "90m",
			"password_hash_cost":      11,
			"log_level":               "warn",
		})
		os.Args = []string{"server", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "127.0.0.1:9000", cfg.EndpointAddrHTTP)
		assert.Equal(t, StoragePostgres, cfg.StorageMode)
		assert.Equal(t, "postgres://x", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 90*time.Minute, cfg.TokenValidityDuration)
		assert.Equal(t, 11, cfg.PasswordHashCost)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("partial file keeps other fields", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"secret_key": "k2"})
		os.Args = []string{"server", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "k2", cfg.SecretKey)
		assert.Equal(t, ":5000", cfg.EndpointAddrHTTP)
		assert.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
	})

	t.Run("no config flag, no changes", func(t *testing.T) {
		os.Args = []string{"server"}

		cfg := &Config{SecretKey: "key"}
		parseJson(cfg)

		assert.Equal(t, "key", cfg.SecretKey)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		os.Args = []string{"server", "-c", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"server", "-c", filepath.Join(t.TempDir(), "nope.json")}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
