package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	docx2pdf "github.com/alnah/go-docx2pdf"
	"github.com/alnah/go-docx2pdf/internal/fileutil"
)

// stderrDiagnostics routes degradation warnings to the error stream.
type stderrDiagnostics struct {
	w io.Writer
}

func (d stderrDiagnostics) Warnf(format string, args ...any) {
	fmt.Fprintf(d.w, "warning: "+format+"\n", args...)
}

// nopDiagnostics discards warnings under --quiet.
type nopDiagnostics struct{}

func (nopDiagnostics) Warnf(string, ...any) {}

// run executes the requested inspection actions, writing results to out
// and warnings to errOut.
func run(flags *cliFlags, out, errOut io.Writer) error {
	if flags.version {
		fmt.Fprintf(out, "docx2pdf %s\n", Version)
		return nil
	}
	if flags.help {
		return nil
	}

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}

	// Flags override config.
	fontsDir := cfg.Fonts.Dir
	if flags.fontsDir != "" {
		fontsDir = flags.fontsDir
	}
	outDir := cfg.Media.OutputDir
	if flags.outDir != "." || outDir == "" {
		outDir = flags.outDir
	}

	var diag docx2pdf.Diagnostics = stderrDiagnostics{w: errOut}
	if flags.quiet {
		diag = nopDiagnostics{}
	}

	// Container-independent actions first; they work without an input file.
	if flags.color != "" {
		rgb, err := docx2pdf.ParseColor(flags.color)
		if err != nil {
			return fmt.Errorf("unrecognized color %q", flags.color)
		}
		fmt.Fprintf(out, "%s → rgb(%d, %d, %d)\n", flags.color, rgb.R, rgb.G, rgb.B)
	}

	if flags.font != "" && flags.input == "" {
		if err := checkFont(out, diag, flags.font, fontsDir); err != nil {
			return err
		}
	}

	if flags.input == "" {
		return nil
	}

	doc, err := docx2pdf.Open(flags.input,
		docx2pdf.WithFontsDir(fontsDir),
		docx2pdf.WithDiagnostics(diag),
	)
	if err != nil {
		return err
	}
	defer doc.Close()

	if flags.showBody {
		body, err := doc.Body()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(body))
	}

	if flags.listRels {
		all, err := doc.Relationships()
		if err != nil {
			return err
		}
		for _, r := range all {
			fmt.Fprintf(out, "%s\t%s\t%s\n", r.ID, shortType(r.Type), r.Target)
		}
	}

	if flags.hyperlink != "" {
		target, err := doc.Hyperlink(flags.hyperlink)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s → %s\n", flags.hyperlink, target)
	}

	if flags.image != "" {
		if err := extractImage(out, doc, flags.image, outDir); err != nil {
			return err
		}
	}

	if flags.font != "" {
		font, err := doc.Font(flags.font)
		if err != nil {
			return err
		}
		printFont(out, flags.font, font)
	}

	return nil
}

func checkFont(out io.Writer, diag docx2pdf.Diagnostics, name, fontsDir string) error {
	font, err := docx2pdf.LoadFont(name, fontsDir)
	if err != nil {
		return err
	}
	if font.Fallback {
		diag.Warnf("font %q not usable, substituting %s", name, font.Name)
	}
	printFont(out, name, font)
	return nil
}

func printFont(out io.Writer, requested string, font *docx2pdf.Font) {
	tier := "primary"
	if font.Fallback {
		tier = "fallback"
	}
	fmt.Fprintf(out, "%s → %s (%s, %d bytes)\n", requested, font.Name, tier, len(font.Data))
}

func extractImage(out io.Writer, doc *docx2pdf.Document, name, outDir string) error {
	data, err := doc.Image(name)
	if err != nil {
		return err
	}
	if err := fileutil.EnsureDir(outDir); err != nil {
		return err
	}
	path := filepath.Join(outDir, strings.ToLower(name)+".png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(out, "extracted %s (%d bytes)\n", path, len(data))
	return nil
}

// shortType trims the schema namespace off a relationship type for
// readable listings.
func shortType(t string) string {
	if i := strings.LastIndex(t, "/"); i >= 0 {
		return t[i+1:]
	}
	return t
}
