package main

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/xcodz-dot/sfa"
)

var (
	unpackDir string

	unpackCmd = &cobra.Command{
		Use:   "unpack -o DIRECTORY CONTAINER",
		Short: "Extract all images from an SFA container",
		Long: `Unpack decodes a container and writes every entry into the output
directory under its original name. The on-disk format follows the
entry's file extension; names without a recognized extension are
written as PNG.`,
		Args: cobra.ExactArgs(1),
		RunE: runUnpack,
	}
)

func init() {
	unpackCmd.Flags().StringVarP(&unpackDir, "out", "o", ".", "output directory")
}

func runUnpack(cmd *cobra.Command, args []string) error {
	images, err := sfa.Decode(args[0])
	if err != nil {
		return err
	}

	if err := os.MkdirAll(unpackDir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	for name, img := range images {
		// Entry names come from untrusted input; strip any path parts.
		target := filepath.Join(unpackDir, filepath.Base(name))
		if err := saveImage(target, img); err != nil {
			return errors.Wrapf(err, "write %s", target)
		}
		log.Debug("extracted", "entry", name, "to", target)
	}

	log.Info("unpacked", "entries", len(images), "dir", unpackDir)
	return nil
}

// saveImage encodes img to path in the format implied by the path's
// extension, defaulting to PNG.
func saveImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = encodeByExt(f, filepath.Ext(path), img)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

func encodeByExt(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, nil)
	case ".gif":
		return gif.Encode(w, img, nil)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, nil)
	default:
		return png.Encode(w, img)
	}
}
