package pipeline

import (
	"errors"
	"fmt"
)

// ErrContentTypeMismatch is returned when a loader hands back an object whose
// content type differs from the one it declares.
var ErrContentTypeMismatch = errors.New("content type mismatch")

// Error is returned by a run that aborted. State is the last state reached
// before the failure; Manifest and Entry identify the source, when known.
type Error struct {
	State    State
	Manifest string
	Entry    string
	Err      error
}

func (e *Error) Error() string {
	switch {
	case e.Manifest != "" && e.Entry != "":
		return fmt.Sprintf("pipeline %s: manifest %q entry %q: %v", e.State, e.Manifest, e.Entry, e.Err)
	case e.Manifest != "":
		return fmt.Sprintf("pipeline %s: manifest %q: %v", e.State, e.Manifest, e.Err)
	default:
		return fmt.Sprintf("pipeline %s: %v", e.State, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// MismatchError details an ErrContentTypeMismatch.
type MismatchError struct {
	Loader   string
	Declared string
	Actual   string
	ID       string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("loader %q declares %s but produced %s %q", e.Loader, e.Declared, e.Actual, e.ID)
}

func (e *MismatchError) Unwrap() error { return ErrContentTypeMismatch }
