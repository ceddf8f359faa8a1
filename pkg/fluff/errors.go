package fluff

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is raised when a required callback, comparer or
	// source is nil
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned when a search finds no matching element
	ErrNotFound = errors.New("not found")
	// ErrFormat is returned for malformed composite format strings
	ErrFormat = errors.New("invalid format")
)

// InvalidArgument returns ErrInvalidArgument annotated with the argument name
func InvalidArgument(name string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s must not be nil", name)
}

// NotFound returns ErrNotFound annotated with a description of the search
func NotFound(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

// MustNotBeNil panics with an InvalidArgument error when v is nil.
// Passing nil where a callback will be invoked is a programming error, so it
// is reported at the call site before any element is consumed.
func MustNotBeNil(name string, v interface{}) {
	if IsNil(v) {
		panic(InvalidArgument(name))
	}
}
