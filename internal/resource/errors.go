package resource

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceLoad marks any failure to fetch or decode a resource.
	ErrResourceLoad = errors.New("resource load failed")
	// ErrNotExist is the cause when no file matches a resource name.
	ErrNotExist = errors.New("resource does not exist")
)

// LoadError reports a resource that could not be read or decoded.
type LoadError struct {
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading resource %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() []error { return []error{ErrResourceLoad, e.Err} }
