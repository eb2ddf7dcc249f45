package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/feelflow/internal/flagx"
	"github.com/dmitrijs2005/feelflow/internal/timex"
)

type JsonConfig struct {
	ServerURL      *string         `json:"server_url"`
	TokenDir       *string         `json:"token_dir"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
}

// parseJson overlays the file named by -c/-config. Unreadable or invalid
// files panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerURL != nil {
		cfg.ServerURL = *c.ServerURL
	}
	if c.TokenDir != nil {
		cfg.TokenDir = *c.TokenDir
	}
	if c.RequestTimeout != nil {
		cfg.RequestTimeout = c.RequestTimeout.Duration
	}
}
