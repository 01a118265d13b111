package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrLoaderNotFound is returned when no registration matches an identifier.
	ErrLoaderNotFound = errors.New("loader not found")
	// ErrUnsupportedLoaderContract is returned when a registration does not
	// produce a content loader.
	ErrUnsupportedLoaderContract = errors.New("unsupported loader contract")
	// ErrNoObject is wrapped in the *resource.LoadError of a loader that
	// reported success without an object.
	ErrNoObject = errors.New("loader returned no object")
)

// NotFoundError reports an identifier with no usable registration.
type NotFoundError struct {
	Identifier string
	Reason     string // optional detail, e.g. an unsatisfied version constraint
}

func (e *NotFoundError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("loader %q: %v (%s)", e.Identifier, ErrLoaderNotFound, e.Reason)
	}
	return fmt.Sprintf("loader %q: %v", e.Identifier, ErrLoaderNotFound)
}

func (e *NotFoundError) Unwrap() error { return ErrLoaderNotFound }

// UnsupportedContractError reports a registration whose value is not a
// content loader, or declares no content type anywhere along its chain.
type UnsupportedContractError struct {
	Identifier string
	Value      any
}

func (e *UnsupportedContractError) Error() string {
	return fmt.Sprintf("loader %q: %v: %T does not load content", e.Identifier, ErrUnsupportedLoaderContract, e.Value)
}

func (e *UnsupportedContractError) Unwrap() error { return ErrUnsupportedLoaderContract }
