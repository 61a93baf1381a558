// Package fleet serves the reconciled ship collection over HTTP.
//
// The Service loads a snapshot through snapshot.Loader, assembles it with
// assemble.Builder and caches the result per snapshot key for the configured
// TTL. Concurrent requests arriving while a build is running share that build.
//
// Routes:
//   - GET /ships: ship summaries, optionally filtered by ?type=
//   - GET /ships/:name: ship detail by base or display name, with next stage cost and upgrade plans
//   - GET /mods: every stage record
//   - GET /coverage: per-source coverage and skipped records
//   - POST /refresh: drop the cache and rebuild
//
// Duplicate records, invariant violations, unknown stage suffixes and malformed
// exports are reported as 422; an unknown ship as 404.
package fleet
