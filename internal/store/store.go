package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/tutorialhub/tutorials-service/internal/config"
)

// Store provides access to all storage repositories.
type Store struct {
	db        *sql.DB
	tutorials *TutorialStore
}

func NewStore(db *sql.DB, driver config.Driver) *Store {
	sb := sq.StatementBuilder.PlaceholderFormat(placeholderFormat(driver))
	return &Store{
		db:        db,
		tutorials: NewTutorialStore(db, sb),
	}
}

func (s *Store) Tutorials() *TutorialStore {
	return s.tutorials
}

// placeholderFormat picks the parameter style the driver expects:
// $1 for Postgres, ? for SQLite.
func placeholderFormat(driver config.Driver) sq.PlaceholderFormat {
	if driver == config.DriverPostgres {
		return sq.Dollar
	}
	return sq.Question
}
