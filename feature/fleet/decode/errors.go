package decode

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord is matched by every *RecordError.
var ErrInvalidRecord = errors.New("invalid record")

// RecordError reports a source record failing shape validation.
type RecordError struct {
	Source string
	// Index is the zero-based position of the record in its source.
	Index  int
	Reason string
}

// Error implements the error interface
func (e *RecordError) Error() string {
	return fmt.Sprintf("%s record %d: %s", e.Source, e.Index, e.Reason)
}

// Is implements errors.Is support
func (e *RecordError) Is(target error) bool {
	return target == ErrInvalidRecord
}
