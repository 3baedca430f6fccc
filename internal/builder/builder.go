// Package builder executes the build for one variant: isolated build
// and install directories, a configure step carrying the variant's
// options, and build+install for each requested configuration.
package builder

import (
	"fmt"
	"path/filepath"

	"github.com/presencekit/gridlock/internal/env"
	"github.com/presencekit/gridlock/internal/fsutil"
	"github.com/presencekit/gridlock/internal/matrix"
	"github.com/presencekit/gridlock/x/cmake"
)

// step is one build+install invocation of the underlying build system.
type step struct {
	config string
	args   []string
}

// steps returns the configurations to build. Release always installs;
// Debug is built first unless the variant is release-only.
func steps(justRelease bool) []step {
	var out []step
	if !justRelease {
		out = append(out, step{config: "Debug"})
	}
	return append(out, step{config: "Release", args: []string{"--target", "install"}})
}

// Build runs the full lifecycle for one variant. Any failure of the
// underlying build system aborts the run.
func Build(cfg env.Config, v matrix.Variant) error {
	buildDir := filepath.Join(cfg.BuildsDir(), v.Name)
	installDir := filepath.Join(cfg.InstallRoot(), v.Name)
	if err := fsutil.MkdirP(installDir); err != nil {
		return err
	}

	fmt.Println("--- Building " + v.Name)

	c := cmake.New(cfg.Root, buildDir, installDir)
	if v.Generator != "" {
		c.Generator(v.Generator)
	}
	for key, val := range v.Options {
		c.Define(key, val.Render())
	}
	if err := c.Configure(); err != nil {
		return fmt.Errorf("configure %s: %w", v.Name, err)
	}
	for _, s := range steps(v.JustRelease) {
		if err := c.Build(s.config, s.args...); err != nil {
			return fmt.Errorf("build %s (%s): %w", v.Name, s.config, err)
		}
	}
	return nil
}

// BuildAll builds every variant, in matrix order, stopping at the
// first failure.
func BuildAll(cfg env.Config, variants []matrix.Variant) error {
	for _, v := range variants {
		if err := Build(cfg, v); err != nil {
			return err
		}
	}
	return nil
}
