package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tenantline/internal/flagx"
	"github.com/dmitrijs2005/tenantline/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations use
// timex.Duration, so both "1m" and integer nanoseconds are accepted. Absent
// keys leave the running value alone.
type JsonConfig struct {
	EndpointAddrGRPC             *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  *string         `json:"database_dsn"`
	SecretKey                    *string         `json:"secret_key"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration"`
	DefaultPlan                  *string         `json:"default_plan"`
	LogLevel                     *string         `json:"log_level"`
}

// parseJson loads configuration values from the file named by -c or -config.
// If neither flag is present nothing is loaded. Read or decode errors panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != nil {
		config.EndpointAddrGRPC = *c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration != nil {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.DefaultPlan != nil {
		config.DefaultPlan = *c.DefaultPlan
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
}
