// Package assemble reconciles the sources of one snapshot into a Collection.
//
// A build runs in three steps:
//
//  1. Stage records: picture-book entries are split per stage, then every
//     source is merged by display name. A source may contribute one record
//     per name; both wiki tables count as one source.
//  2. Ships: blueprints are attached by base name and stage records are
//     grouped under the base name the names package resolves.
//  3. Validation: stages are sorted and must strictly increase, and every
//     record must resolve to its ship.
//
// Failures are returned as *reconcile.DuplicateError, *InvariantError or
// *names.UnrecognizedStageSuffixError. WithSkipInvalid turns them into Issues
// of the build Report: duplicates and invalid stage records are dropped,
// ships failing validation are dropped whole.
package assemble
