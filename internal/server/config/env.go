package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays variables that are set in the environment; unset ones
// keep whatever the earlier stages produced. A malformed value panics, the
// same way a broken JSON file or flag does.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
