package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCreateRoundTrip(t *testing.T) {
	installRoot := t.TempDir()
	files := map[string]string{
		"linux-static/lib/libpresence-rpc.a":   "static archive bytes",
		"linux-static/include/presence-rpc.h":  "header bytes",
		"linux-dynamic/lib/libpresence-rpc.so": "shared object bytes",
		"linux-dynamic/include/presence-rpc.h": "header bytes",
		"linux-dynamic/lib/cmake/config.cmake": "",
	}
	writeTree(t, installRoot, files)

	out := filepath.Join(t.TempDir(), "presence-rpc-linux.zip")
	if err := Create(installRoot, out, "presence-rpc"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	r, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()

	if len(r.File) != len(files) {
		t.Errorf("archive has %d entries, want %d", len(r.File), len(files))
	}

	got := map[string]string{}
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		got[f.Name] = string(data)
	}

	for name, content := range files {
		want := "presence-rpc/" + name
		gotContent, ok := got[want]
		if !ok {
			t.Errorf("archive missing entry %q", want)
			continue
		}
		if gotContent != content {
			t.Errorf("entry %q = %q, want %q", want, gotContent, content)
		}
	}
}

func TestCreateOverwrites(t *testing.T) {
	installRoot := t.TempDir()
	writeTree(t, installRoot, map[string]string{"lib/a.txt": "a"})

	out := filepath.Join(t.TempDir(), "out.zip")
	if err := os.WriteFile(out, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Create(installRoot, out, "presence-rpc"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	r, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("archive was not overwritten with a valid zip: %v", err)
	}
	defer r.Close()
	if len(r.File) != 1 || r.File[0].Name != "presence-rpc/lib/a.txt" {
		t.Errorf("unexpected entries: %v", r.File)
	}
}

func TestCreateEmptyTree(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.zip")
	if err := Create(t.TempDir(), out, "presence-rpc"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	r, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()
	if len(r.File) != 0 {
		t.Errorf("empty tree produced %d entries", len(r.File))
	}
}
