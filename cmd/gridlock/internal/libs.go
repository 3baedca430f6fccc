package internal

import (
	"github.com/spf13/cobra"

	"github.com/presencekit/gridlock/internal/env"
	"github.com/presencekit/gridlock/internal/matrix"
)

var libsIntent matrix.Intent

var libsCmd = &cobra.Command{
	Use:   "libs",
	Short: "Build every library variant for this platform",
	RunE:  runLibs,
}

func init() {
	libsCmd.Flags().BoolVar(&libsIntent.Clean, "clean", false, "Remove the builds directory first")
	libsCmd.Flags().BoolVar(&libsIntent.Static, "static", false, "Build static library variants")
	libsCmd.Flags().BoolVar(&libsIntent.Shared, "shared", false, "Build shared library variants")
	libsCmd.Flags().BoolVar(&libsIntent.SkipFormatter, "skip_formatter", false, "Disable the source formatting step")
	libsCmd.Flags().BoolVar(&libsIntent.JustRelease, "just_release", false, "Skip Debug configurations")
	rootCmd.AddCommand(libsCmd)
}

func runLibs(cmd *cobra.Command, args []string) error {
	cfg, err := env.Load()
	if err != nil {
		return err
	}
	return buildLibs(cfg, libsIntent)
}
