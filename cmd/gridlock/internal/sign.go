package internal

import (
	"github.com/spf13/cobra"

	"github.com/presencekit/gridlock/internal/env"
	"github.com/presencekit/gridlock/internal/sign"
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Code-sign the artifacts in the install tree",
	RunE:  runSign,
}

func init() {
	rootCmd.AddCommand(signCmd)
}

func runSign(cmd *cobra.Command, args []string) error {
	cfg, err := env.Load()
	if err != nil {
		return err
	}
	return sign.Run(cfg, cfg.InstallRoot())
}
