// Package names resolves ship display names.
//
// A display name is a base identity followed by an optional upgrade-stage
// suffix that starts with the Marker glyph ("吹雪改二" is stage 2 of "吹雪").
// A dozen ships are renamed rather than suffixed at later stages; those are
// listed in a fixed table together with the stage the new name starts at.
//
// BaseName is total and idempotent. Stage fails with an
// *UnrecognizedStageSuffixError for any suffix it does not know, rather than
// falling back to stage 0.
package names
