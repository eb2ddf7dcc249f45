package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/feelflow/internal/flagx"
	"github.com/dmitrijs2005/feelflow/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations use timex.Duration
// so both "24h" and integer nanoseconds are accepted. Pointer fields tell
// "absent" apart from zero values.
type JsonConfig struct {
	EndpointAddrHTTP      *string         `json:"endpoint_addr_http"`
	StorageMode           *string         `json:"storage_mode"`
	DatabaseDSN           *string         `json:"database_dsn"`
	SecretKey             *string         `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	PasswordHashCost      *int            `json:"password_hash_cost"`
	LogLevel              *string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config, if any, and copies the
// fields it sets into config. Unreadable or invalid files panic.
func parseJson(config *Config) {
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

	if c.EndpointAddrHTTP != nil {
		config.EndpointAddrHTTP = *c.EndpointAddrHTTP
	}
	if c.StorageMode != nil {
		config.StorageMode = *c.StorageMode
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.PasswordHashCost != nil {
		config.PasswordHashCost = *c.PasswordHashCost
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
}
