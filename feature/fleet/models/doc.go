// Package models contains the data model of the ship registry.
//
// It defines the records each source publishes (picture book, roster, marriage
// list, wiki tables, blueprints) and the reconciled hierarchy built from them:
// a Ship owns its ShipMods, one per upgrade stage.
//
// All types are plain values. Records are built once per snapshot and never
// updated in place; a new snapshot produces new values.
package models
