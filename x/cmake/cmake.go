// Package cmake wraps the cmake configure/build/install workflow for
// multi-config generators: one configure, then one build per
// configuration with an optional target.
package cmake

import (
	"sort"

	"github.com/presencekit/gridlock/internal/fsutil"
	"github.com/presencekit/gridlock/internal/shell"
)

// CMake drives one build directory.
type CMake struct {
	sourceDir  string
	buildDir   string
	installDir string
	generator  string
	defines    map[string]string
}

// New returns a ready-to-use CMake.
func New(sourceDir, buildDir, installDir string) *CMake {
	return &CMake{
		sourceDir:  sourceDir,
		buildDir:   buildDir,
		installDir: installDir,
		defines:    make(map[string]string),
	}
}

// Generator sets the cmake generator (e.g. "Visual Studio 14 2015").
func (c *CMake) Generator(name string) { c.generator = name }

// Define adds a -D<key>=<value> cache definition. Values arrive
// already rendered; booleans are the caller's ON/OFF tokens.
func (c *CMake) Define(key, value string) { c.defines[key] = value }

// Configure creates the build directory and runs the configure step
// with every accumulated definition.
func (c *CMake) Configure() error {
	if err := fsutil.MkdirP(c.buildDir); err != nil {
		return err
	}
	return shell.Cmd{Path: "cmake", Args: c.configureArgs()}.Run()
}

// Build runs "cmake --build" for one configuration. Extra args are
// appended, e.g. "--target", "install".
func (c *CMake) Build(config string, args ...string) error {
	return shell.Cmd{Path: "cmake", Args: c.buildArgs(config, args...)}.Run()
}

func (c *CMake) configureArgs() []string {
	args := []string{"-S", c.sourceDir, "-B", c.buildDir}
	if c.generator != "" {
		args = append(args, "-G", c.generator)
	}
	args = append(args, "-DCMAKE_INSTALL_PREFIX="+c.installDir)
	args = append(args, c.definesArgs()...)
	return args
}

func (c *CMake) buildArgs(config string, args ...string) []string {
	out := []string{"--build", c.buildDir, "--config", config}
	return append(out, args...)
}

func (c *CMake) definesArgs() []string {
	if len(c.defines) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.defines))
	for k := range c.defines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]string, 0, len(keys))
	for _, k := range keys {
		args = append(args, "-D"+k+"="+c.defines[k])
	}
	return args
}
