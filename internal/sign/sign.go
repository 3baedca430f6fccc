// Package sign code-signs built artifacts in place across the whole
// install tree. It must only run once every variant has installed.
package sign

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/fatih/color"

	"github.com/presencekit/gridlock/internal/env"
	"github.com/presencekit/gridlock/internal/platform"
	"github.com/presencekit/gridlock/internal/shell"
)

const (
	winIdentity  = "Presence Labs Inc."
	winTimestamp = "http://timestamp.digicert.com/rfc3161"
	macIdentity  = "Developer ID Application: Presence Labs Inc. (4J9R7T2WQB)"
)

// baseCommand builds the signing invocation without the target file.
// Only Windows and macOS have a signing story; the argument shapes
// differ but both sign in place.
func baseCommand(p platform.Platform) (shell.Cmd, error) {
	tool, err := platform.SignTool(p)
	if err != nil {
		return shell.Cmd{}, err
	}
	switch p {
	case platform.Windows:
		return shell.Cmd{
			Path: tool,
			Args: []string{
				"sign",
				"/n", winIdentity,
				"/a",
				"/tr", winTimestamp,
				"/as",
				"/td", "sha256",
				"/fd", "sha256",
			},
		}, nil
	case platform.MacOS:
		home, err := os.UserHomeDir()
		if err != nil {
			return shell.Cmd{}, err
		}
		return shell.Cmd{
			Path: tool,
			Args: []string{
				"--keychain", filepath.Join(home, "Library", "Keychains", "login.keychain"),
				"-vvvv",
				"--deep",
				"--force",
				"--sign", macIdentity,
			},
		}, nil
	}
	return shell.Cmd{}, fmt.Errorf("no signing tool for platform %s", p)
}

// collect returns every file under root whose extension is in exts.
func collect(root string, exts []string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if slices.Contains(exts, filepath.Ext(path)) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Run signs every signable file under installRoot. Platforms with no
// signing tool log a notice and succeed. The first failed signing
// invocation aborts the run; remaining files are left unsigned.
func Run(cfg env.Config, installRoot string) error {
	exts := platform.SignableExts(cfg.Platform)
	if len(exts) == 0 {
		color.Red("Not signing things on this platform yet")
		return nil
	}

	base, err := baseCommand(cfg.Platform)
	if err != nil {
		return err
	}
	targets, err := collect(installRoot, exts)
	if err != nil {
		return err
	}

	fmt.Println("--- Signing")
	for _, target := range targets {
		fmt.Println("Sign " + target)
		cmd := base
		cmd.Args = append(slices.Clone(base.Args), target)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("sign %s: %w", target, err)
		}
	}
	return nil
}
