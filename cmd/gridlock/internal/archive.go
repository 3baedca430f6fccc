package internal

import (
	"github.com/spf13/cobra"

	"github.com/presencekit/gridlock/internal/archive"
	"github.com/presencekit/gridlock/internal/env"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Package the install tree into a zip",
	RunE:  runArchive,
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}

func runArchive(cmd *cobra.Command, args []string) error {
	cfg, err := env.Load()
	if err != nil {
		return err
	}
	return archive.Create(cfg.InstallRoot(), cfg.ArchivePath(), env.Project)
}
