package sfa

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Decode opens the container at path and returns the name-to-image
// mapping. It is a convenience wrapper over DecodeFrom.
func Decode(path string) (map[string]image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "sfa: open container")
	}
	defer f.Close()

	// The file is ours to the end, so buffered read-ahead is safe here.
	return DecodeFrom(bufio.NewReader(f))
}

// DecodeFrom reads a container from any sequential byte source and
// returns the fully materialized name-to-image mapping. Decode is
// all-or-nothing: on any failure the partial mapping is discarded and
// only the error is returned.
//
// Bytes following the final entry are left unread, so r may carry
// unrelated data after the container. Every read is exactly
// field-sized, so DecodeFrom never consumes past the container's end.
func DecodeFrom(r io.Reader) (map[string]image.Image, error) {
	var hdr [len(magic)]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, truncated(err, "magic")
	}
	if string(hdr[:]) != magic {
		return nil, ErrBadMagic
	}

	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, truncated(err, "entry count")
	}

	// count is untrusted wire data; it drives the loop, but only a
	// capped hint reaches the allocator.
	hint := count
	if hint > maxCountHint {
		hint = maxCountHint
	}
	images := make(map[string]image.Image, hint)
	for i := uint32(0); i < count; i++ {
		name, err := readName(r)
		if err != nil {
			return nil, err
		}
		data, err := readField(r, "image data")
		if err != nil {
			return nil, err
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, &EntryError{Name: name, Err: err}
		}
		images[name] = img
	}

	return images, nil
}
