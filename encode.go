package sfa

import (
	"bufio"
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Encode normalizes each entry and writes a complete SFA container to
// w, in input order. Names must be non-empty valid UTF-8, at most
// 64 KiB long, and unique within the call; the first repeated name
// aborts the encode with a *DuplicateNameError, and an entry the
// normalizer cannot decode aborts it with an *EntryError.
//
// On failure w may hold a partial, invalid stream. Callers that need
// atomicity should write to a temporary location and rename on
// success.
func Encode(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(magic); err != nil {
		return errors.Wrap(err, "sfa: write magic")
	}
	if err := binary.Write(bw, binary.BigEndian, uint32(len(entries))); err != nil {
		return errors.Wrap(err, "sfa: write entry count")
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return ErrEmptyName
		}
		// Mirror the decoder's name constraints so every container this
		// encoder produces is one the decoder accepts.
		if len(e.Name) > maxNameLen {
			return errors.Wrapf(ErrInvalidName, "name length %d exceeds %d", len(e.Name), maxNameLen)
		}
		if !utf8.ValidString(e.Name) {
			return errors.Wrap(ErrInvalidName, "name is not valid UTF-8")
		}
		if _, dup := seen[e.Name]; dup {
			return &DuplicateNameError{Name: e.Name}
		}
		seen[e.Name] = struct{}{}

		canonical, err := Normalize(e.Data)
		if err != nil {
			return &EntryError{Name: e.Name, Err: err}
		}

		if err := writeField(bw, []byte(e.Name)); err != nil {
			return errors.Wrapf(err, "sfa: write name for %q", e.Name)
		}
		if err := writeField(bw, canonical); err != nil {
			return errors.Wrapf(err, "sfa: write image data for %q", e.Name)
		}
	}

	return errors.Wrap(bw.Flush(), "sfa: flush")
}
