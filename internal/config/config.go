package config

import "fmt"

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Database Authentication

// Driver selects the database/sql driver backing the store.
type Driver string

const (
	DriverPostgres Driver = "pgx"
	DriverSQLite   Driver = "sqlite"
)

const (
	ServerModeDev  = "dev"
	ServerModeProd = "prod"
)

// Configuration holds all settings for the tutorials-service.
type Configuration struct {
	Server    Server         `debugmap:"visible"`
	Database  Database       `debugmap:"visible"`
	Auth      Authentication `debugmap:"visible"`
	LogLevel  string         `default:"info" debugmap:"visible"`
	LogFormat string         `default:"json" debugmap:"visible"`
}

// Server configures the HTTP listener.
type Server struct {
	ServerMode string `default:"dev" debugmap:"visible"`
	HTTPPort   int    `default:"8080" debugmap:"visible"`
}

// Database configures the datasource. URL carries host, port and database
// name; credentials are supplied separately so they can come from the
// environment.
type Database struct {
	Driver         Driver `default:"pgx" debugmap:"visible"`
	URL            string `default:"postgres://localhost:5432/tutorials?sslmode=disable" debugmap:"visible"`
	Username       string `default:"postgres" debugmap:"visible"`
	Password       string `debugmap:"sensitive"`
	ConnectRetries uint   `default:"10" debugmap:"visible"`
}

// Authentication configures the optional bearer-token check on the API.
type Authentication struct {
	Enabled   bool   `default:"false" debugmap:"visible"`
	JWTSecret string `debugmap:"sensitive"`
}

// Validate rejects configurations the service cannot run with.
func (c *Configuration) Validate() error {
	switch c.Server.ServerMode {
	case ServerModeDev, ServerModeProd:
	default:
		return fmt.Errorf("invalid server mode %q, expected %q or %q", c.Server.ServerMode, ServerModeDev, ServerModeProd)
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("invalid database driver %q, expected %q or %q", c.Database.Driver, DriverPostgres, DriverSQLite)
	}

	if c.Database.URL == "" {
		return fmt.Errorf("database URL must be set")
	}

	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return fmt.Errorf("authentication is enabled but no JWT secret is configured")
	}

	return nil
}
