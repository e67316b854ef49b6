package container

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeContainer builds a zip file with the given entries in dir and
// returns its path.
func writeContainer(t *testing.T, dir string, entries map[string][]byte) string {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, data := range entries {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("creating entry %q: %v", name, err)
		}
		if _, err := f.Write(data); err != nil {
			t.Fatalf("writing entry %q: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing zip writer: %v", err)
	}

	path := filepath.Join(dir, "sample.docx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing container: %v", err)
	}
	return path
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("valid archive", func(t *testing.T) {
		t.Parallel()

		path := writeContainer(t, t.TempDir(), map[string][]byte{
			DocumentPath: []byte("<w:document/>"),
		})

		p, err := Open(path)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer p.Close()

		if p.Path() != path {
			t.Errorf("Path() = %q, want %q", p.Path(), path)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Open(filepath.Join(t.TempDir(), "absent.docx"))
		if !errors.Is(err, ErrContainerUnreadable) {
			t.Errorf("Open() error = %v, want ErrContainerUnreadable", err)
		}
	})

	t.Run("not a zip archive", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "garbage.docx")
		if err := os.WriteFile(path, []byte("not a zip"), 0o644); err != nil {
			t.Fatalf("writing file: %v", err)
		}

		_, err := Open(path)
		if !errors.Is(err, ErrContainerUnreadable) {
			t.Errorf("Open() error = %v, want ErrContainerUnreadable", err)
		}
	})
}

func TestPackage_ReadEntry(t *testing.T) {
	t.Parallel()

	path := writeContainer(t, t.TempDir(), map[string][]byte{
		DocumentPath: []byte("<w:document/>"),
	})

	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { p.Close() })

	t.Run("existing entry", func(t *testing.T) {
		t.Parallel()

		got, err := p.ReadEntry(DocumentPath)
		if err != nil {
			t.Fatalf("ReadEntry() error = %v", err)
		}
		if string(got) != "<w:document/>" {
			t.Errorf("ReadEntry() = %q, want %q", got, "<w:document/>")
		}
	})

	t.Run("missing entry", func(t *testing.T) {
		t.Parallel()

		_, err := p.ReadEntry("word/styles.xml")
		if !errors.Is(err, ErrEntryNotFound) {
			t.Errorf("ReadEntry() error = %v, want ErrEntryNotFound", err)
		}
	})

	t.Run("name matching is exact", func(t *testing.T) {
		t.Parallel()

		_, err := p.ReadEntry("word/Document.xml")
		if !errors.Is(err, ErrEntryNotFound) {
			t.Errorf("ReadEntry() error = %v, want ErrEntryNotFound", err)
		}
	})
}

func TestPackage_Media(t *testing.T) {
	t.Parallel()

	path := writeContainer(t, t.TempDir(), map[string][]byte{
		"word/media/image1.png": {0x89, 0x50, 0x4E, 0x47},
	})

	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { p.Close() })

	tests := []struct {
		name    string
		media   string
		wantErr error
	}{
		{name: "exact lowercase name", media: "image1"},
		{name: "mixed case is lowered", media: "Image1"},
		{name: "missing media", media: "image2", wantErr: ErrEntryNotFound},
		{name: "empty name", media: "", wantErr: ErrInvalidEntryName},
		{name: "name with separator", media: "../document", wantErr: ErrInvalidEntryName},
		{name: "name with extension", media: "image1.png", wantErr: ErrInvalidEntryName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := p.Media(tt.media)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Media(%q) error = %v, want %v", tt.media, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Media(%q) error = %v", tt.media, err)
			}
			if len(got) == 0 {
				t.Errorf("Media(%q) returned empty data", tt.media)
			}
		})
	}
}

func TestReadEntry_OneShot(t *testing.T) {
	t.Parallel()

	path := writeContainer(t, t.TempDir(), map[string][]byte{
		DocumentPath: []byte("<w:document/>"),
	})

	got, err := ReadEntry(path, DocumentPath)
	if err != nil {
		t.Fatalf("ReadEntry() error = %v", err)
	}
	if string(got) != "<w:document/>" {
		t.Errorf("ReadEntry() = %q, want %q", got, "<w:document/>")
	}

	// The handle must be released even when the entry is absent.
	_, err = ReadEntry(path, "word/missing.xml")
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("ReadEntry() error = %v, want ErrEntryNotFound", err)
	}
}

func TestPackage_ReadEntry_SizeGuard(t *testing.T) {
	// Not parallel: mutates the package-level MaxEntrySize.
	old := MaxEntrySize
	MaxEntrySize = 8
	defer func() { MaxEntrySize = old }()

	path := writeContainer(t, t.TempDir(), map[string][]byte{
		DocumentPath: []byte("well over eight bytes of content"),
	})

	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer p.Close()

	_, err = p.ReadEntry(DocumentPath)
	if !errors.Is(err, ErrEntryTooLarge) {
		t.Errorf("ReadEntry() error = %v, want ErrEntryTooLarge", err)
	}
}
