package content

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is returned by Add when the (type, id) pair is already present.
	ErrDuplicateID = errors.New("duplicate content id")
	// ErrMissingID is returned by Add when the object has an empty id.
	ErrMissingID = errors.New("content object has no id")
	// ErrNotRegistered is returned when a type partition was never populated.
	ErrNotRegistered = errors.New("content type not registered")
	// ErrNotFound is returned when a populated type has no object with the id.
	ErrNotFound = errors.New("content not found")
)

// DuplicateIDError reports a rejected insertion. The entry already in the
// collection is left untouched.
type DuplicateIDError struct {
	Type Type
	ID   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("content %s/%s: %v", e.Type, e.ID, ErrDuplicateID)
}

func (e *DuplicateIDError) Unwrap() error { return ErrDuplicateID }

// LookupError reports a failed query. Err is ErrNotRegistered or ErrNotFound.
type LookupError struct {
	Type Type
	ID   string
	Err  error
}

func (e *LookupError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("content %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("content %s/%s: %v", e.Type, e.ID, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }
