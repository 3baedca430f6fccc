// Package env resolves the process environment into an explicit
// configuration value, once, at startup. Deeper pipeline components
// never read ambient environment state themselves.
package env

import (
	"os"
	"path/filepath"

	"github.com/presencekit/gridlock/internal/platform"
)

// Project names the library being built. It is the archive's top-level
// folder, part of the archive file name, and the base name of the
// artifacts the unreal command copies.
const Project = "presence-rpc"

// Config is the environment-derived state for one orchestration run.
type Config struct {
	// Root is the project source tree; every relative path in the
	// pipeline resolves against it.
	Root string

	Platform platform.Platform

	// Unattended is true on automated builds. Buildkite sets CI=true
	// by default.
	Unattended bool
}

// Load resolves the host platform, project root, and CI signal.
func Load() (Config, error) {
	p, err := platform.Resolve()
	if err != nil {
		return Config{}, err
	}
	root, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Root:       root,
		Platform:   p,
		Unattended: os.Getenv("CI") == "true",
	}, nil
}

// BuildsDir is the scratch root holding every variant's build directory.
func (c Config) BuildsDir() string {
	return filepath.Join(c.Root, "builds")
}

// InstallRoot is the shared install tree all variants install under.
func (c Config) InstallRoot() string {
	return filepath.Join(c.BuildsDir(), "install")
}

// ArchivePath is where the final zip is written.
func (c Config) ArchivePath() string {
	return filepath.Join(c.BuildsDir(), Project+"-"+c.Platform.String()+".zip")
}
