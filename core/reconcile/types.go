package reconcile

import (
	"errors"
	"fmt"
)

// Source identifies one origin of records taking part in a reconciliation
// (e.g. "picturebook", "roster", "wiki").
type Source string

// Result represents the reconciliation output for a single key.
// It records which of the requested sources contributed a record.
type Result struct {
	// ID is the key the records were merged under.
	ID string `json:"id"`

	// Present maps every requested source to whether it contributed.
	Present map[Source]bool `json:"present"`

	// Missing lists the requested sources that did not contribute, in request order.
	Missing []Source `json:"missing"`
}

// Complete reports whether every requested source contributed.
func (r Result) Complete() bool {
	return len(r.Missing) == 0
}

// Summary provides aggregate statistics over a set of results.
type Summary struct {
	// TotalItems is the total number of unique keys.
	TotalItems int `json:"total_items"`

	// Complete counts keys every source contributed to.
	Complete int `json:"complete"`

	// Missing counts, per source, the keys that source did not contribute to.
	Missing map[Source]int `json:"missing"`
}

// ErrDuplicate is matched by every *DuplicateError.
var ErrDuplicate = errors.New("duplicate record")

// DuplicateError reports a source contributing a second record for a key
// whose slot it already filled.
type DuplicateError struct {
	Source Source
	Key    string
}

// Error implements the error interface
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s record for %q", e.Source, e.Key)
}

// Is implements errors.Is support
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}
