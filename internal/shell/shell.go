// Package shell runs external commands with inherited output streams.
package shell

import (
	"fmt"
	"os"
	"os/exec"
)

// Cmd is one external invocation: the executable, its arguments, and
// an optional working directory.
type Cmd struct {
	Path string
	Args []string
	Dir  string
}

// Run executes the command, streaming stdout/stderr through. A
// non-zero exit is returned as an error naming the executable.
func (c Cmd) Run() error {
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", c.Path, err)
	}
	return nil
}
