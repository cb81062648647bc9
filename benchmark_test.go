package sfa

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/xfmoulet/qoi"
)

// Comparative benchmark: the SFA container (canonical PNG payloads)
// against per-image QOI and zstd-compressed raw pixels. Size lines are
// printed under -v, outside the timed sections.
func BenchmarkContainer(b *testing.B) {
	frames := make([]Entry, 8)
	for i := range frames {
		img := makeGradientImage(128, 96)
		frames[i] = Entry{Name: fmt.Sprintf("frame-%02d.png", i), Data: pngBytes(b, img)}
	}

	b.Run("SFA/encode", func(b *testing.B) {
		var buf bytes.Buffer
		if testing.Verbose() {
			buf.Reset()
			if err := Encode(&buf, frames); err != nil {
				b.Fatalf("encode failed: %v", err)
			}
			b.Logf("container size=%d bytes for %d frames", buf.Len(), len(frames))
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			buf.Reset()
			if err := Encode(&buf, frames); err != nil {
				b.Fatalf("encode failed: %v", err)
			}
		}
	})

	b.Run("SFA/decode", func(b *testing.B) {
		var buf bytes.Buffer
		if err := Encode(&buf, frames); err != nil {
			b.Fatalf("encode failed: %v", err)
		}
		data := buf.Bytes()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := DecodeFrom(bytes.NewReader(data)); err != nil {
				b.Fatalf("decode failed: %v", err)
			}
		}
	})

	b.Run("QOI/per-image", func(b *testing.B) {
		img := makeGradientImage(128, 96)
		var buf bytes.Buffer
		var r bytes.Reader
		if testing.Verbose() {
			buf.Reset()
			if err := qoi.Encode(&buf, img); err != nil {
				b.Fatalf("qoi encode failed: %v", err)
			}
			b.Logf("qoi size=%d bytes per frame", buf.Len())
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			buf.Reset()
			if err := qoi.Encode(&buf, img); err != nil {
				b.Fatalf("qoi encode failed: %v", err)
			}
			r.Reset(buf.Bytes())
			if _, err := qoi.Decode(&r); err != nil {
				b.Fatalf("qoi decode failed: %v", err)
			}
		}
	})

	b.Run("zstd/raw-pixels", func(b *testing.B) {
		img := makeGradientImage(128, 96)
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			b.Fatalf("zstd writer: %v", err)
		}
		defer enc.Close()
		dec, err := zstd.NewReader(nil)
		if err != nil {
			b.Fatalf("zstd reader: %v", err)
		}
		defer dec.Close()

		if testing.Verbose() {
			compressed := enc.EncodeAll(img.Pix, nil)
			b.Logf("zstd size=%d bytes per frame (raw %d)", len(compressed), len(img.Pix))
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			compressed := enc.EncodeAll(img.Pix, nil)
			if _, err := dec.DecodeAll(compressed, nil); err != nil {
				b.Fatalf("zstd decode failed: %v", err)
			}
		}
	})
}

func BenchmarkNormalize(b *testing.B) {
	raw := pngBytes(b, makeGradientImage(256, 256))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Normalize(raw); err != nil {
			b.Fatalf("normalize failed: %v", err)
		}
	}
}
