// Package integrity provides health checks for the ship registry's infrastructure.
//
// Unlike the 'fleet' package, which reconciles the content of a snapshot,
// this package validates that the snapshot and the export database are
// where the registry expects them.
//
// # Checks Provided
//
//   - Structure: Checks if the folders holding the snapshot exist in the storage bucket.
//   - Snapshot: Verifies the presence of every snapshot export; the picture book and roster are required.
//   - Server: Validates that the export database schema matches the store models (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks concurrently (Service.CheckAll).
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/snapshot : Runs snapshot check.
//   - GET /integrity/server : Runs server schema check.
package integrity
