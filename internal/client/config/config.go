// Package config holds the CLI client's settings: defaults, an optional
// JSON file and command-line flags, applied in that order.
package config

import "time"

// Config holds runtime settings for the feelflow CLI.
//
//   - ServerURL: base URL of the API, without the /api suffix.
//   - TokenDir: directory holding the saved session token.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ServerURL      string
	TokenDir       string
	RequestTimeout time.Duration
}

func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.TokenDir = ".feelflow"
	c.RequestTimeout = 10 * time.Second
}

func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
