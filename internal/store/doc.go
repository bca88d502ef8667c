// Package store implements persistence for tutorial records on database/sql.
//
// Production deployments use Postgres through the pgx stdlib driver; local
// development and tests can run on an embedded sqlite database instead. The
// driver is selected by configuration and the SQL placeholder style follows
// it ($1 for Postgres, ? for sqlite).
//
// Queries are built with squirrel. List filters are expressed as functional
// ListOption values so callers compose only the predicates they need:
//
//	tutorials, err := st.Tutorials().List(ctx, store.ByPublished(true))
//
// NewDB implements the startup readiness gate: the first ping is retried
// with exponential backoff for a bounded number of attempts, so the service
// tolerates a database container that is still starting.
//
// Schema management lives in the migrations subpackage and runs at startup.
package store
