// Package config provides centralized configuration management for the SPC
// analytics service. It handles loading configuration from multiple sources,
// validation, and a type-safe API for accessing configuration values.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. An optional YAML configuration file
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern SPC_* for namespacing:
//
//	SPC_SERVER_PORT=8080
//	SPC_LOGGING_LEVEL=info
//	SPC_ANALYSIS_DEFAULT_SAMPLE_SIZE=5
//	SPC_PATHS_REPORTS_DIR=data/reports
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
