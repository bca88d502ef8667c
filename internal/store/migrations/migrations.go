package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/tutorialhub/tutorials-service/internal/config"
)

type migration struct {
	name string
	up   map[config.Driver]string
}

// Schema statements are IF NOT EXISTS so reruns at startup are safe.
var all = []migration{
	{
		name: "001_create_tutorials",
		up: map[config.Driver]string{
			config.DriverPostgres: `
				CREATE TABLE IF NOT EXISTS tutorials (
					id          BIGSERIAL PRIMARY KEY,
					title       TEXT NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					published   BOOLEAN NOT NULL DEFAULT FALSE
				)`,
			config.DriverSQLite: `
				CREATE TABLE IF NOT EXISTS tutorials (
					id          INTEGER PRIMARY KEY AUTOINCREMENT,
					title       TEXT NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					published   BOOLEAN NOT NULL DEFAULT FALSE
				)`,
		},
	},
}

// Run applies all migrations in order, each in its own transaction.
func Run(ctx context.Context, db *sql.DB, driver config.Driver) error {
	log := zap.S().Named("migrations")

	for _, m := range all {
		stmt, ok := m.up[driver]
		if !ok {
			return fmt.Errorf("migration %s: no statement for driver %q", m.name, driver)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}

		log.Debugw("applied migration", "name", m.name)
	}

	return nil
}
