package sfa

import (
	"errors"
	"fmt"
)

// Errors

var (
	// ErrBadMagic means the stream does not start with the SFA magic.
	ErrBadMagic = errors.New("sfa: bad magic")

	// ErrTruncated means the stream ended before a declared field or
	// entry was fully read.
	ErrTruncated = errors.New("sfa: truncated stream")

	// ErrCorrupt means a field violates the format in a way other than
	// ending early, such as an implausible length prefix or a name that
	// is not valid UTF-8.
	ErrCorrupt = errors.New("sfa: corrupt stream")

	// ErrEmptyName is returned by Encode for an entry with no name.
	ErrEmptyName = errors.New("sfa: empty entry name")

	// ErrInvalidName is returned by Encode for a name the format cannot
	// carry: longer than the name-length bound, or not valid UTF-8.
	ErrInvalidName = errors.New("sfa: invalid entry name")
)

// DuplicateNameError is returned by Encode when two entries share a
// name. It reports the first repeated name in input order.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("sfa: duplicate entry name %q", e.Name)
}

// EntryError attributes a failure to a single named entry: an input
// that the normalizer cannot decode, or an embedded payload that is
// not valid PNG.
type EntryError struct {
	Name string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("sfa: entry %q: %v", e.Name, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }
