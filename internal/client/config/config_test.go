package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = args
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:5000", c.ServerURL)
	assert.Equal(t, ".feelflow", c.TokenDir)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestLoadConfig_JSONThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	b, err := json.Marshal(map[string]any{
		"server_url":      "http://api.example:8080",
		"token_dir":       "/tmp/ff",
		"request_timeout": "3s",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	withArgs(t, "client", "-c", path, "-u", "http://override:9000", "login")

	c := LoadConfig()

	want := &Config{
		ServerURL:      "http://override:9000",
		TokenDir:       "/tmp/ff",
		RequestTimeout: 3 * time.Second,
	}
	assert.Empty(t, cmp.Diff(want, c))
}

func TestParseFlags_Panics(t *testing.T) {
	withArgs(t, "client", "-r", "soon")
	require.Panics(t, func() { parseFlags(&Config{}) })
}

func TestParseJson_InvalidPanics(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	withArgs(t, "client", "-config", bad)

	require.Panics(t, func() { parseJson(&Config{}) })
}
