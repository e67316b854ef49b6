package main

import (
	"errors"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("rels action with input", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags([]string{"docx2pdf", "--rels", "report.docx"})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if !f.listRels {
			t.Error("listRels = false, want true")
		}
		if f.input != "report.docx" {
			t.Errorf("input = %q, want %q", f.input, "report.docx")
		}
	})

	t.Run("rels without input fails", func(t *testing.T) {
		t.Parallel()

		_, err := parseFlags([]string{"docx2pdf", "--rels"})
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("parseFlags() error = %v, want ErrNoInput", err)
		}
	})

	t.Run("no action fails", func(t *testing.T) {
		t.Parallel()

		_, err := parseFlags([]string{"docx2pdf", "report.docx"})
		if !errors.Is(err, ErrNoAction) {
			t.Errorf("parseFlags() error = %v, want ErrNoAction", err)
		}
	})

	t.Run("color needs no input", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags([]string{"docx2pdf", "--color", "#fff"})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if f.color != "#fff" {
			t.Errorf("color = %q, want %q", f.color, "#fff")
		}
	})

	t.Run("font needs no input", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags([]string{"docx2pdf", "--font", "Arial", "--fonts-dir", "/tmp/fonts"})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if f.font != "Arial" || f.fontsDir != "/tmp/fonts" {
			t.Errorf("font = %q, fontsDir = %q", f.font, f.fontsDir)
		}
	})

	t.Run("version short-circuits validation", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags([]string{"docx2pdf", "--version"})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if !f.version {
			t.Error("version = false, want true")
		}
	})

	t.Run("out short flag", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags([]string{"docx2pdf", "--image", "image1", "-o", "media", "report.docx"})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if f.outDir != "media" {
			t.Errorf("outDir = %q, want %q", f.outDir, "media")
		}
	})

	t.Run("unknown flag fails", func(t *testing.T) {
		t.Parallel()

		if _, err := parseFlags([]string{"docx2pdf", "--bogus"}); err == nil {
			t.Error("parseFlags() accepted unknown flag, want error")
		}
	})
}
