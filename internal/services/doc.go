// Package services implements the business layer between HTTP handlers and
// the data store.
//
//	Handlers (HTTP endpoints)
//	    │
//	    ▼
//	TutorialService ──► Store
//
// TutorialService is a thin pass-through: it shapes list parameters (the
// published filter) into store options and otherwise delegates directly.
// There is intentionally no validation, pagination, ordering, or caching
// here; the CRUD surface is exactly what the store provides.
package services
