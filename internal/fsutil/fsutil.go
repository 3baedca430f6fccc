// Package fsutil has small filesystem helpers shared by the pipeline.
package fsutil

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// MkdirP creates path and any missing parents. Pre-existing
// directories are not an error and produce no output.
func MkdirP(path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil
	}
	color.Yellow("Making %s", path)
	return os.MkdirAll(path, 0o755)
}

// CopyFile copies src to dst, preserving the source file mode.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
