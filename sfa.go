// SFA (Single File Assets) is a container format that bundles multiple
// raster images into one self-describing file, indexed by name. Every
// image is normalized to PNG on the way in, so the container preserves
// pixel data but not the original file bytes or compressed format.
//
// The wire layout is a 4-byte magic, a big-endian uint32 entry count,
// then per entry a length-prefixed UTF-8 name followed by a
// length-prefixed canonical PNG payload.

package sfa

import (
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	magic = "SFA1"

	// maxNameLen bounds a name field; anything larger is treated as a
	// corrupt length prefix rather than an allocation request.
	maxNameLen = 1 << 16

	// maxCountHint caps the declared entry count's influence on result
	// map pre-allocation; the count itself is still honored entry by
	// entry.
	maxCountHint = 1 << 10
)

// Entry is one named image handed to Encode. Data holds the raw bytes
// of the source image in any supported format; Encode normalizes them
// to PNG before writing.
type Entry struct {
	Name string
	Data []byte
}

// writeField writes a big-endian uint32 length prefix followed by b.
func writeField(w io.Writer, b []byte) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// readField reads a big-endian uint32 length prefix and exactly that
// many bytes. A stream that ends mid-field maps to ErrTruncated.
func readField(r io.Reader, what string) ([]byte, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, truncated(err, what+" length")
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, truncated(err, what)
	}
	return b, nil
}

// readName reads a name field and validates it.
func readName(r io.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", truncated(err, "name length")
	}
	if n == 0 || n > maxNameLen {
		return "", errors.Wrapf(ErrCorrupt, "name length %d", n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", truncated(err, "name")
	}
	if !utf8.Valid(b) {
		return "", errors.Wrap(ErrCorrupt, "name is not valid UTF-8")
	}
	return string(b), nil
}

// truncated maps an end-of-stream condition to ErrTruncated and leaves
// genuine I/O failures wrapped as-is.
func truncated(err error, what string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrapf(ErrTruncated, "reading %s", what)
	}
	return errors.Wrapf(err, "sfa: reading %s", what)
}
