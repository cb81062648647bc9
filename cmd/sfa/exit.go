package main

import (
	"errors"

	"github.com/xcodz-dot/sfa"
)

// Exit codes, one per error kind.
const (
	exitFailure   = 1 // I/O and other unclassified failures
	exitFormat    = 2 // magic/version mismatch
	exitCorrupt   = 3 // truncated or corrupt stream
	exitImage     = 4 // an entry's image bytes failed to decode
	exitDuplicate = 5 // duplicate entry name at pack time
)

// exitCode maps an error to its process exit status.
func exitCode(err error) int {
	var (
		dupErr   *sfa.DuplicateNameError
		entryErr *sfa.EntryError
	)
	switch {
	case errors.Is(err, sfa.ErrBadMagic):
		return exitFormat
	case errors.Is(err, sfa.ErrTruncated), errors.Is(err, sfa.ErrCorrupt):
		return exitCorrupt
	case errors.As(err, &dupErr):
		return exitDuplicate
	case errors.As(err, &entryErr):
		return exitImage
	}
	return exitFailure
}
