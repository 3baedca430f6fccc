// Package archive packages the install tree into a single zip whose
// entries all live under one fixed top-level folder, so archives look
// the same regardless of the platform that produced them.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/klauspost/compress/flate"
)

// Create writes every file under installRoot into a Deflate zip at
// outPath, remapped to prefix/<relative path>. A pre-existing archive
// is overwritten.
func Create(installRoot, outPath, prefix string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := zip.NewWriter(f)
	w.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	fmt.Println("--- Archiving")
	err = filepath.Walk(installRoot, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(installRoot, p)
		if err != nil {
			return err
		}
		return addFile(w, p, info, path.Join(prefix, filepath.ToSlash(rel)))
	})
	if err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return f.Close()
}

func addFile(w *zip.Writer, srcPath string, info os.FileInfo, name string) error {
	fmt.Println("Adding " + name)

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	dst, err := w.CreateHeader(header)
	if err != nil {
		return err
	}
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(dst, src)
	return err
}
