// Package snapshot reads the raw exports of one data snapshot.
//
// A snapshot is a set of objects under a common prefix, named by a Layout.
// They are read through a Source: BucketSource for the object storage
// configured in core/storage, DirSource for a local directory. Loader fetches
// every object concurrently and decodes it into assemble.Sources.
//
// The picture book and roster are required; the marriage list, both wiki
// tables and blueprints are optional and decode as empty when missing.
package snapshot
