// Package integrity provides system health checks.
//
// # Checks Provided
//
//   - Catalog: Validates the active catalog and warns about attach bones that
//     only resolve through the substring heuristics.
//   - Assets: Verifies that the mesh of every catalog item exists in the
//     storage bucket.
//   - Server: Validates that the 'equipment_sessions' table matches its GORM
//     model (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/catalog : Runs the catalog check.
//   - GET /integrity/assets : Runs the asset check.
//   - GET /integrity/server : Runs the server schema check.
package integrity
