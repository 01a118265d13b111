package manifest

import (
	"errors"
	"fmt"
)

// ErrManifestParse marks a manifest that could not be parsed or failed schema
// validation.
var ErrManifestParse = errors.New("manifest parse failed")

// ParseError reports a manifest source that could not be used. Issues is set
// when the text parsed but did not satisfy the manifest schema.
type ParseError struct {
	Source string
	Err    error
	Issues []ValidationIssue
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parsing manifest %s: %v", e.Source, e.Err)
	if len(e.Issues) > 0 {
		first := e.Issues[0]
		msg += fmt.Sprintf(": %s %s", first.Path, first.Message)
		if n := len(e.Issues) - 1; n > 0 {
			msg += fmt.Sprintf(" (and %d more)", n)
		}
	}
	return msg
}

func (e *ParseError) Unwrap() []error { return []error{ErrManifestParse, e.Err} }

// errSchema is the cause of a ParseError carrying validation issues.
var errSchema = errors.New("schema validation failed")
