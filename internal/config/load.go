package config

import "github.com/spf13/pflag"

// Load builds a Configuration from a flag set that has already been synced
// with the environment. Defaults are carried by the flag definitions, so
// every value is read unconditionally.
func Load(flags *pflag.FlagSet) (*Configuration, error) {
	serverMode, err := flags.GetString("server-mode")
	if err != nil {
		return nil, err
	}
	httpPort, err := flags.GetInt("http-port")
	if err != nil {
		return nil, err
	}
	dbDriver, err := flags.GetString("db-driver")
	if err != nil {
		return nil, err
	}
	dbURL, err := flags.GetString("db-url")
	if err != nil {
		return nil, err
	}
	dbUsername, err := flags.GetString("db-username")
	if err != nil {
		return nil, err
	}
	dbPassword, err := flags.GetString("db-password")
	if err != nil {
		return nil, err
	}
	dbConnectRetries, err := flags.GetUint("db-connect-retries")
	if err != nil {
		return nil, err
	}
	authEnabled, err := flags.GetBool("auth-enabled")
	if err != nil {
		return nil, err
	}
	authJWTSecret, err := flags.GetString("auth-jwt-secret")
	if err != nil {
		return nil, err
	}
	logLevel, err := flags.GetString("log-level")
	if err != nil {
		return nil, err
	}
	logFormat, err := flags.GetString("log-format")
	if err != nil {
		return nil, err
	}

	return NewConfigurationWithOptions(
		WithServer(Server{
			ServerMode: serverMode,
			HTTPPort:   httpPort,
		}),
		WithDatabase(Database{
			Driver:         Driver(dbDriver),
			URL:            dbURL,
			Username:       dbUsername,
			Password:       dbPassword,
			ConnectRetries: dbConnectRetries,
		}),
		WithAuth(Authentication{
			Enabled:   authEnabled,
			JWTSecret: authJWTSecret,
		}),
		WithLogLevel(logLevel),
		WithLogFormat(logFormat),
	), nil
}
