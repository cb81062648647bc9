package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xcodz-dot/sfa"
)

var (
	packOut string

	packCmd = &cobra.Command{
		Use:   "pack -o OUTPUT IMAGE...",
		Short: "Create an SFA container from image files",
		Long: `Pack reads each input image, converts it to PNG and writes all of
them into one container. Entry names are the base names of the input
files, so two inputs with the same base name are rejected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runPack,
	}
)

func init() {
	packCmd.Flags().StringVarP(&packOut, "out", "o", "", "output container path (or $SFA_OUTPUT)")
}

func runPack(cmd *cobra.Command, args []string) error {
	out := packOut
	if out == "" {
		out = cfg.Output
	}
	if out == "" {
		return errors.New("no output path: pass --out or set SFA_OUTPUT")
	}

	entries := make([]sfa.Entry, 0, len(args))
	for _, path := range args {
		raw, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "read %s", path)
		}
		log.Debug("adding entry", "file", path, "bytes", len(raw))
		entries = append(entries, sfa.Entry{Name: filepath.Base(path), Data: raw})
	}

	// Write to a temporary file and rename, so a failed pack never
	// leaves a half-written container at the target path.
	tmp, err := os.CreateTemp(filepath.Dir(out), ".sfa-pack-*")
	if err != nil {
		return errors.Wrap(err, "create temporary file")
	}
	defer os.Remove(tmp.Name())

	if err := sfa.Encode(tmp, entries); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temporary file")
	}
	if err := os.Rename(tmp.Name(), out); err != nil {
		return errors.Wrap(err, "rename into place")
	}

	log.Info("packed", "entries", len(entries), "out", out)
	return nil
}
