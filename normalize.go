package sfa

import (
	"bytes"
	"image"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"github.com/xfmoulet/qoi"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func init() {
	// The stdlib and x/image decoders self-register; webp and qoi are
	// registered here.
	image.RegisterFormat("webp", "RIFF????WEBP", webp.Decode, webp.DecodeConfig)
	image.RegisterFormat("qoi", "qoif", qoi.Decode, qoi.DecodeConfig)
}

// Normalize decodes raw bytes of any registered image format (PNG,
// JPEG, GIF, BMP, TIFF, WebP, QOI) and re-encodes the pixel grid as
// PNG. Dimensions and per-pixel values are preserved exactly; the
// original bytes, compression and metadata are not.
func Normalize(raw []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "decode source image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "encode canonical png")
	}
	return buf.Bytes(), nil
}
