// Package store exports a built collection to the configured database.
//
// The export is two tables, ships and ship_mods, replaced as a whole by Save
// inside one transaction. They hold a flattened view for reporting; the
// collection itself is always rebuilt from a snapshot.
package store
