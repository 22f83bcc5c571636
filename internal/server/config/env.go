package config

import "github.com/caarlos0/env/v11"

// EnvPrefix is prepended to every variable name, e.g. TENANTLINE_DATABASE_DSN.
const EnvPrefix = "TENANTLINE_"

func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
