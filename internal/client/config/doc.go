// Package config loads runtime configuration for the userdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the API (default http://localhost:5000/api)
//	-d string   path of the local SQLite database
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Empty or missing keys leave the previous value in place:
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "database_path": "data/userdesk.db",
//	  "log_level": "info"
//	}
package config
