package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-docx2pdf/internal/fileutil"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file", path: file, want: true},
		{name: "directory is not a file", path: dir, want: false},
		{name: "missing path", path: filepath.Join(dir, "absent"), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	if !fileutil.DirExists(dir) {
		t.Errorf("DirExists(%q) = false, want true", dir)
	}
	if fileutil.DirExists(file) {
		t.Errorf("DirExists(%q) = true, want false", file)
	}
	if fileutil.DirExists(filepath.Join(dir, "absent")) {
		t.Error("DirExists(absent) = true, want false")
	}
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := fileutil.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	if !fileutil.DirExists(dir) {
		t.Errorf("EnsureDir() did not create %q", dir)
	}

	// Idempotent on existing directories.
	if err := fileutil.EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir() on existing dir error = %v", err)
	}
}
