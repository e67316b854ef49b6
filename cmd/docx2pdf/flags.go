package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for flag parsing.
var (
	ErrNoInput  = errors.New("no input file specified")
	ErrNoAction = errors.New("no action specified")
)

// cliFlags holds all parsed command-line state.
type cliFlags struct {
	// input
	input string

	// actions; at least one must be requested
	listRels  bool
	hyperlink string
	image     string
	font      string
	color     string
	showBody  bool

	// configuration
	config   string
	fontsDir string
	outDir   string

	// behavior
	quiet   bool
	verbose bool
	version bool
	help    bool
}

// hasAction reports whether any inspection action was requested.
func (f *cliFlags) hasAction() bool {
	return f.listRels || f.showBody ||
		f.hyperlink != "" || f.image != "" || f.font != "" || f.color != ""
}

// parseFlags parses args (including the program name at args[0]).
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() { printUsage(os.Stderr, fs) }

	fs.BoolVar(&f.listRels, "rels", false, "list the document's relationships")
	fs.BoolVar(&f.showBody, "body", false, "print the document body XML")
	fs.StringVar(&f.hyperlink, "hyperlink", "", "resolve a relationship id to its target")
	fs.StringVar(&f.image, "image", "", "extract an embedded image by base name")
	fs.StringVar(&f.font, "font", "", "resolve a font name through the fallback chain")
	fs.StringVar(&f.color, "color", "", "parse a color token to RGB")

	fs.StringVar(&f.config, "config", "", "path to a YAML config file")
	fs.StringVar(&f.fontsDir, "fonts-dir", "", "directory searched for {name}.ttf files")
	fs.StringVarP(&f.outDir, "out", "o", ".", "directory extracted images are written to")

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress degradation warnings")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	if f.help {
		printUsage(os.Stdout, fs)
		return f, nil
	}
	if f.version {
		return f, nil
	}

	// --color and --font are self-contained; everything else needs a file.
	needsInput := f.listRels || f.showBody || f.hyperlink != "" || f.image != ""
	rest := fs.Args()
	if len(rest) > 0 {
		f.input = rest[0]
	}
	if needsInput && f.input == "" {
		return nil, fmt.Errorf("%w: usage: %s [flags] <document.docx>", ErrNoInput, args[0])
	}
	if !f.hasAction() {
		return nil, fmt.Errorf("%w: pass --rels, --body, --hyperlink, --image, --font, or --color", ErrNoAction)
	}

	return f, nil
}

// printUsage prints the usage message with the flag table appended.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: docx2pdf [flags] <document.docx>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Inspect the resources of a WordprocessingML document:")
	fmt.Fprintln(w, "relationships, embedded media, fonts, and color tokens.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
