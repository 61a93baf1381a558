// Package decode turns raw snapshot objects into typed records.
//
// Picture book, roster, blueprint and wiki exports are JSON arrays; the
// marriage list is CSV. Every display name is normalized with Name so the
// same ship is spelled identically across sources. Records failing shape
// checks are reported as *RecordError.
package decode
