package assemble

import (
	"errors"
	"fmt"
)

// ErrInvariant is matched by every *InvariantError.
var ErrInvariant = errors.New("invariant violation")

// InvariantError reports a ship or stage record breaking a structural rule.
type InvariantError struct {
	// Ship is the base name of the offending ship.
	Ship string
	// Mod is the display name of the offending stage record, if any.
	Mod    string
	Reason string
}

// Error implements the error interface
func (e *InvariantError) Error() string {
	if e.Mod == "" {
		return fmt.Sprintf("ship %q: %s", e.Ship, e.Reason)
	}
	return fmt.Sprintf("ship %q, mod %q: %s", e.Ship, e.Mod, e.Reason)
}

// Is implements errors.Is support
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

// Issue is a record skipped during a build run WithSkipInvalid.
type Issue struct {
	// Name is the display or base name the issue was raised for.
	Name   string `json:"name"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

func newIssue(name string, err error) Issue {
	return Issue{Name: name, Reason: err.Error(), Err: err}
}
