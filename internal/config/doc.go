// Package config defines the configuration structure for the tutorials-service.
//
// Configuration is organized into logical sections (Server, Database, Auth)
// and uses code generation via optgen to create functional option helpers.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Database       - Datasource settings
//	├── Auth           - Bearer-token authentication
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────────┬─────────┬────────────────────────────────────────┐
//	│ Field        │ Default │ Description                            │
//	├──────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode   │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort     │ 8080    │ HTTP server listen port                │
//	└──────────────┴─────────┴────────────────────────────────────────┘
//
// Server modes:
//   - prod: gin release mode
//   - dev: gin debug mode with verbose routing output
//
// # Database Configuration
//
//	┌────────────────┬──────────────────────────────┬───────────────────────────────────┐
//	│ Field          │ Default                      │ Description                       │
//	├────────────────┼──────────────────────────────┼───────────────────────────────────┤
//	│ Driver         │ "pgx"                        │ Driver: "pgx" or "sqlite"         │
//	│ URL            │ postgres://localhost:5432/.. │ Datasource URL without creds      │
//	│ Username       │ "postgres"                   │ Database user                     │
//	│ Password       │ ""                           │ Database password                 │
//	│ ConnectRetries │ 10                           │ Max attempts in the readiness gate│
//	└────────────────┴──────────────────────────────┴───────────────────────────────────┘
//
// # Authentication Configuration
//
//	┌───────────┬─────────┬────────────────────────────────────────┐
//	│ Field     │ Default │ Description                            │
//	├───────────┼─────────┼────────────────────────────────────────┤
//	│ Enabled   │ false   │ Require a bearer token on /api routes  │
//	│ JWTSecret │ ""      │ HMAC secret for token validation       │
//	└───────────┴─────────┴────────────────────────────────────────┘
//
// # Code Generation
//
// The package uses optgen to generate functional option helpers:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Database Authentication
//
// Generated helpers include:
//
//   - NewConfigurationWithOptions(...ConfigurationOption) - Create with options
//   - NewConfigurationWithOptionsAndDefaults(...ConfigurationOption) - Create with defaults + options
//   - WithServer(Server), WithDatabase(Database), etc. - Set nested structs
//   - DebugMap() - Returns map for debug logging (respects debugmap tags)
//
// # Value Flow
//
// Values are defined once as flags on the root command, synced with the
// environment (prefix TUTORIALS_, dashes become underscores), and read back
// into the struct by Load:
//
//	--db-url  ⇔  TUTORIALS_DB_URL
//
// # Debug Logging
//
// Fields are tagged with `debugmap:"visible"` or `debugmap:"sensitive"` so the
// full configuration can be logged safely at startup:
//
//	log.Infow("configuration loaded", "config", cfg.DebugMap())
//
// Sensitive values (database password, JWT secret) are redacted in the map.
package config
