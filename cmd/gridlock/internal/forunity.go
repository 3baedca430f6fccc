package internal

import (
	"github.com/spf13/cobra"

	"github.com/presencekit/gridlock/internal/env"
	"github.com/presencekit/gridlock/internal/matrix"
)

// embedIntent is the preset for builds consumed by another engine's
// build process: shared libraries only, Release only, no formatting.
var embedIntent = matrix.Intent{
	Shared:        true,
	SkipFormatter: true,
	JustRelease:   true,
}

var forUnityCmd = &cobra.Command{
	Use:   "for_unity",
	Short: "Build just the shared libraries for use in a Unity project",
	RunE:  runForUnity,
}

func init() {
	rootCmd.AddCommand(forUnityCmd)
}

func runForUnity(cmd *cobra.Command, args []string) error {
	cfg, err := env.Load()
	if err != nil {
		return err
	}
	return buildLibs(cfg, embedIntent)
}
