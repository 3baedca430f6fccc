package internal

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/presencekit/gridlock/internal/archive"
	"github.com/presencekit/gridlock/internal/builder"
	"github.com/presencekit/gridlock/internal/env"
	"github.com/presencekit/gridlock/internal/fsutil"
	"github.com/presencekit/gridlock/internal/matrix"
	"github.com/presencekit/gridlock/internal/sign"
)

var rootClean bool

var rootCmd = &cobra.Command{
	Use:   "gridlock",
	Short: "gridlock builds, signs, and archives every variant of " + env.Project,
	Long: `gridlock drives the full release pipeline for ` + env.Project + `: it expands
the platform's build matrix, builds and installs every variant, signs the
artifacts on unattended builds, and packages the install tree into a zip.`,
	RunE: runDefault,
}

func init() {
	rootCmd.Flags().BoolVar(&rootClean, "clean", false, "Remove the builds directory before building")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}

func runDefault(cmd *cobra.Command, args []string) error {
	cfg, err := env.Load()
	if err != nil {
		return err
	}
	if err := buildLibs(cfg, matrix.Intent{Clean: rootClean}); err != nil {
		return err
	}
	if cfg.Unattended {
		if err := sign.Run(cfg, cfg.InstallRoot()); err != nil {
			return err
		}
	}
	return archive.Create(cfg.InstallRoot(), cfg.ArchivePath(), env.Project)
}

// buildLibs expands the matrix for the host platform and builds every
// variant in order. Shared by the root pipeline and the libs, for_unity,
// and unreal commands.
func buildLibs(cfg env.Config, in matrix.Intent) error {
	if in.Clean {
		if err := os.RemoveAll(cfg.BuildsDir()); err != nil {
			return err
		}
	}
	if err := fsutil.MkdirP(cfg.BuildsDir()); err != nil {
		return err
	}
	in = matrix.Normalize(in, cfg.Unattended)
	return builder.BuildAll(cfg, matrix.Expand(in, cfg.Platform))
}
