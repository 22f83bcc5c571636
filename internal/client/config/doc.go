// Package config loads runtime configuration for the tenantline CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults ((*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. TENANTLINE_* environment variables.
//  4. Command-line flags.
//
// JSON durations use timex.Duration, so both "3s" and integer nanoseconds
// are accepted:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "request_timeout": "12s",
//	  "database_path": "tenantline.db",
//	  "decode_workers": 4,
//	  "log_level": "info"
//	}
package config
