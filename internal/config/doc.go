// Package config handles configuration loading for taskdeck.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	auth:
//	  jwt_secret: "${TASKDECK_JWT_SECRET}"
//
// Syntax: ${VAR_NAME}
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: "0.0.0.0:8080"
//
// Database:
//
//	database:
//	  path: "/var/lib/taskdeck/taskdeck.db"
//
// Authentication:
//
//	auth:
//	  jwt_secret: "${TASKDECK_JWT_SECRET}"  # required, at least 32 bytes
//	  token_ttl: "24h"                      # Go duration syntax, default 24h
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Validation
//
// Load() validates:
//
//   - HTTP address presence
//   - Database path presence
//   - JWT secret minimum length (32 bytes)
//   - Duration format validity
package config
