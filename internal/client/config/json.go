package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tenantline/internal/flagx"
	"github.com/dmitrijs2005/tenantline/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so they can be written as "3s" or as integer nanoseconds.
// Pointer fields distinguish "absent" from zero.
type JsonConfig struct {
	ServerEndpointAddr  *string         `json:"server_endpoint_addr"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	DatabasePath        *string         `json:"database_path"`
	DecodeWorkers       *int            `json:"decode_workers"`
	LogLevel            *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Without either flag nothing happens. Read and unmarshal errors
// panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.DecodeWorkers != nil {
		cfg.DecodeWorkers = *jc.DecodeWorkers
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
