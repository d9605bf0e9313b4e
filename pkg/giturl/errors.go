package giturl

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrEmptyInput indicates the input URL was empty or whitespace-only
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidShorthand indicates an SCP-style shorthand with no usable repository path
	ErrInvalidShorthand = errors.New("invalid ssh shorthand")

	// ErrInvalidURL indicates the normalized URL was rejected by generic URL parsing
	ErrInvalidURL = errors.New("invalid URL")

	// ErrInvalidPort indicates the port is not a valid 16-bit unsigned integer
	ErrInvalidPort = errors.New("invalid port")

	// ErrMissingRepositoryName indicates the path has no segments left to name a repository
	ErrMissingRepositoryName = errors.New("missing repository name")
)

// ParseError wraps a sentinel error with the offending input URL
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError creates a ParseError for the given input
func newParseError(url string, err error) *ParseError {
	return &ParseError{URL: url, Err: err}
}
