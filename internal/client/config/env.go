package config

import (
	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name, e.g. TENANTLINE_SERVER_ADDR.
const EnvPrefix = "TENANTLINE_"

// parseEnv overlays Config with TENANTLINE_* variables. Unset variables
// leave the current value untouched. Malformed values panic, like the other
// loaders.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
