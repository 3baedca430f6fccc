package internal

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/presencekit/gridlock/internal/env"
	"github.com/presencekit/gridlock/internal/fsutil"
)

var unrealCmd = &cobra.Command{
	Use:   "unreal",
	Short: "Build the shared libraries and copy them into the Unreal example project",
	RunE:  runUnreal,
}

func init() {
	rootCmd.AddCommand(unrealCmd)
}

func runUnreal(cmd *cobra.Command, args []string) error {
	cfg, err := env.Load()
	if err != nil {
		return err
	}
	if err := buildLibs(cfg, embedIntent); err != nil {
		return err
	}

	fmt.Println("--- Copying libs and header into unreal example")

	projectDir := filepath.Join(cfg.Root, "examples", "unrealstatus", "plugins", "presencerpc")
	releaseDir := filepath.Join(cfg.BuildsDir(), "win64-dynamic", "src", "Release")

	copies := []struct {
		src string
		dst string
	}{
		{
			src: filepath.Join(releaseDir, env.Project+".dll"),
			dst: filepath.Join(projectDir, "Binaries", "ThirdParty", "presencerpcLibrary", "Win64"),
		},
		{
			src: filepath.Join(cfg.Root, "include", env.Project+".h"),
			dst: filepath.Join(projectDir, "Source", "ThirdParty", "presencerpcLibrary", "Include"),
		},
		{
			src: filepath.Join(releaseDir, env.Project+".lib"),
			dst: filepath.Join(projectDir, "Source", "ThirdParty", "presencerpcLibrary", "x64", "Release"),
		},
	}
	for _, c := range copies {
		if err := fsutil.MkdirP(c.dst); err != nil {
			return err
		}
		dst := filepath.Join(c.dst, filepath.Base(c.src))
		if err := fsutil.CopyFile(c.src, dst); err != nil {
			return fmt.Errorf("copy %s: %w", c.src, err)
		}
	}
	return nil
}
