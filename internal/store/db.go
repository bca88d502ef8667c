package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/jackc/pgx/v4/stdlib"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/tutorialhub/tutorials-service/internal/config"
)

// NewDB opens the database described by cfg and waits for it to become
// reachable. The initial ping is retried with exponential backoff for a
// bounded number of attempts, so the service can come up while the database
// container is still starting.
func NewDB(ctx context.Context, cfg config.Database) (*sql.DB, error) {
	dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(string(cfg.Driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.Driver == config.DriverSQLite && strings.Contains(cfg.URL, ":memory:") {
		// a second connection to an in-memory sqlite database sees an empty schema
		db.SetMaxOpenConns(1)
	}

	log := zap.S().Named("store")
	ping := func() (struct{}, error) {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			log.Debugw("database not ready", "driver", cfg.Driver, "error", err)
			return struct{}{}, err
		}
		return struct{}{}, nil
	}

	if _, err := backoff.Retry(ctx, ping,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(cfg.ConnectRetries),
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("database did not become ready: %w", err)
	}

	log.Infow("database connected", "driver", cfg.Driver)
	return db, nil
}

// buildDSN merges the configured credentials into the datasource URL.
// SQLite datasources are passed through untouched.
func buildDSN(cfg config.Database) (string, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return cfg.URL, nil
	case config.DriverPostgres:
		u, err := url.Parse(cfg.URL)
		if err != nil {
			return "", fmt.Errorf("invalid datasource URL: %w", err)
		}
		if cfg.Username != "" {
			if cfg.Password != "" {
				u.User = url.UserPassword(cfg.Username, cfg.Password)
			} else {
				u.User = url.User(cfg.Username)
			}
		}
		return u.String(), nil
	default:
		return "", fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}
