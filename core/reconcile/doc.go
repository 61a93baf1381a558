// Package reconcile provides the generic building blocks for merging records
// that several independent sources publish about the same entities.
//
// # Index
//
// Index is a keyed merge substrate: every source may fill its slot for a key at most
// once. A second record from the same source for the same key is reported as a
// *DuplicateError instead of silently overwriting the first one.
//
// Once all sources are consumed, Results describes, for every key, which sources
// contributed (a coverage report), and Summarize aggregates the missing counts.
//
// # Cache
//
// Cache is a TTL-based cache with stampede protection (singleflight). It is used to
// keep the result of an expensive build, such as a reconciled collection, per snapshot key.
// A Cache is an ordinary value; two owners never share entries.
//
// # Usage Example
//
//	ix := reconcile.NewIndex(func(key string) *Record { return &Record{Name: key} })
//	if err := ix.Put("Fubuki", "roster", func(r *Record) { r.Roster = entry }); err != nil {
//	    return err // *reconcile.DuplicateError
//	}
//	summary := reconcile.Summarize(ix.Results("roster", "wiki"), "roster", "wiki")
package reconcile
