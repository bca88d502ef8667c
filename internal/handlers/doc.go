// Package handlers exposes the tutorial CRUD resource over HTTP.
//
// Routes (mounted under /api by the server):
//
//	GET    /tutorials            list all records
//	GET    /tutorials/published  list records with published=true
//	GET    /tutorials/{id}       fetch one record, 404 when missing
//	POST   /tutorials            create, server assigns the identifier
//	PUT    /tutorials/{id}       replace mutable fields, 404 when missing
//	DELETE /tutorials/{id}       delete one record, 204 or 404
//	DELETE /tutorials            delete every record, 204
//
// Error mapping: not-found errors from the service become 404, validation
// errors and malformed payloads become 400, everything else is logged and
// becomes 500. All error bodies use the {"error": "..."} envelope.
package handlers
