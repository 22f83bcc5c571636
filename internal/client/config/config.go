package config

import "time"

// Config holds runtime settings for the tenantline CLI.
type Config struct {
	ServerEndpointAddr  string        `env:"SERVER_ADDR"`
	OnlineCheckInterval time.Duration `env:"ONLINE_CHECK_INTERVAL"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT"`
	// DatabasePath is the SQLite DSN of the local store.
	DatabasePath string `env:"DATABASE_PATH"`
	// DecodeWorkers bounds parallel envelope decoding on history load.
	DecodeWorkers int    `env:"DECODE_WORKERS"`
	LogLevel      string `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 12 * time.Second
	c.DatabasePath = "tenantline.db"
	c.DecodeWorkers = 4
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
