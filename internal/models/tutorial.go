package models

// Tutorial represents one tutorial record stored in the database.
//
// The identifier is assigned by the database at creation time and never
// changes afterwards.
type Tutorial struct {
	ID          int64
	Title       string
	Description string
	Published   bool
}
