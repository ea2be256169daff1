// Package seeding exposes seeding runs to the CLI and the HTTP server.
//
// The Service owns a loaded plan and an engine. InsertData runs the plan once,
// keeps the resulting audit log as the last run and optionally uploads it as
// JSON to the storage bucket under reports/<run id>.json. Runs never overlap.
//
// # HTTP Endpoints
//
//   - POST /seed/run : Runs the plan and returns the audit log.
//   - GET /seed/report : Returns the last run (404 before any run).
//   - GET /seed/report/table : Returns the last run as a plain-text table (supports ?light=true).
//   - GET /seed/check : Dry-runs the plan: schemas, sources, table columns and reference ordering.
package seeding
