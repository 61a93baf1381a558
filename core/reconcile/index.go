package reconcile

import "sort"

// Index merges records from several sources into one item per key.
// Each (key, source) slot may be filled at most once.
type Index[T any] struct {
	newItem func(key string) *T
	items   map[string]*T
	filled  map[string]map[Source]struct{}
}

// NewIndex creates an empty index. newItem builds the item for a key seen for the first time.
func NewIndex[T any](newItem func(key string) *T) *Index[T] {
	return &Index[T]{
		newItem: newItem,
		items:   make(map[string]*T),
		filled:  make(map[string]map[Source]struct{}),
	}
}

// Put fills the slot of src for key by calling fill on the (possibly new) item.
// Filling an already filled slot returns a *DuplicateError and leaves the item untouched.
func (ix *Index[T]) Put(key string, src Source, fill func(item *T)) error {
	slots, ok := ix.filled[key]
	if !ok {
		slots = make(map[Source]struct{})
		ix.filled[key] = slots
	}
	if _, dup := slots[src]; dup {
		return &DuplicateError{Source: src, Key: key}
	}

	item, ok := ix.items[key]
	if !ok {
		item = ix.newItem(key)
		ix.items[key] = item
	}

	fill(item)
	slots[src] = struct{}{}
	return nil
}

// Get returns the item stored under key.
func (ix *Index[T]) Get(key string) (*T, bool) {
	item, ok := ix.items[key]
	return item, ok
}

// Has reports whether src filled its slot for key.
func (ix *Index[T]) Has(key string, src Source) bool {
	_, ok := ix.filled[key][src]
	return ok
}

// Len returns the number of keys.
func (ix *Index[T]) Len() int {
	return len(ix.items)
}

// Keys returns all keys in ascending order.
func (ix *Index[T]) Keys() []string {
	keys := make([]string, 0, len(ix.items))
	for key := range ix.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Results builds one Result per key describing which of sources contributed.
// Results are sorted by key for deterministic output.
func (ix *Index[T]) Results(sources ...Source) []Result {
	keys := ix.Keys()
	results := make([]Result, 0, len(keys))
	for _, key := range keys {
		result := Result{
			ID:      key,
			Present: make(map[Source]bool, len(sources)),
			Missing: []Source{},
		}
		for _, src := range sources {
			present := ix.Has(key, src)
			result.Present[src] = present
			if !present {
				result.Missing = append(result.Missing, src)
			}
		}
		results = append(results, result)
	}
	return results
}

// Summarize aggregates results into per-source missing counts.
func Summarize(results []Result, sources ...Source) Summary {
	summary := Summary{
		TotalItems: len(results),
		Missing:    make(map[Source]int, len(sources)),
	}
	for _, src := range sources {
		summary.Missing[src] = 0
	}
	for _, r := range results {
		if r.Complete() {
			summary.Complete++
		}
		for _, src := range r.Missing {
			summary.Missing[src]++
		}
	}
	return summary
}
