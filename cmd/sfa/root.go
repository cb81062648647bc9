package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"

	verbose bool

	cfg config

	rootCmd = &cobra.Command{
		Use:   "sfa",
		Short: "Bundle raster images into Single File Asset containers",
		Long: `sfa bundles multiple images into one self-describing container file,
indexed by the original file names. Every image is converted to PNG on
the way in, so pixel data survives but the original bytes do not.

Examples:
  sfa pack -o sprites.sfa sp1.png sp2.jpg sp3.webp
  sfa unpack -o frames/ sprites.sfa`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")

	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(unpackCmd)
}

func initConfig() {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}

// Execute runs the root command and maps failures to the per-kind
// process exit codes.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(exitCode(err))
	}
}
