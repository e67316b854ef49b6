// Package docx2pdf resolves the resources of a WordprocessingML document:
// container entries, relationship targets, fonts, and color tokens.
//
// # Quick Start
//
// Open a document, resolve what the body references, and close when done:
//
//	doc, err := docx2pdf.Open("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer doc.Close()
//
//	body, err := doc.Body()                // word/document.xml
//	target, err := doc.Hyperlink("rId4")   // relationship id → URL
//	img, err := doc.Image("image1")        // word/media/image1.png
//	font, err := doc.Font("Arial")         // fonts dir, built-in fallback
//	rgb, err := docx2pdf.ParseColor("#FF0000")
//
// # Resolution Model
//
// The document body references resources indirectly: hyperlinks and media
// through opaque relationship ids recorded in the relationship part, fonts
// and colors through free-form style values. This package turns those
// references into usable values and leaves layout and rendering to the
// caller.
//
// The relationship table is parsed once, on first use, and is read-only
// afterwards; it is safe for concurrent reads. Font resolution tries the
// configured directory first and degrades to a built-in face, reporting
// the substitution through Font.Fallback and the optional Diagnostics
// collaborator. Color parsing is pure.
//
// # Configuration
//
// Use functional options to customize a document:
//
//	doc, err := docx2pdf.Open("report.docx",
//	    docx2pdf.WithFontsDir("/usr/share/fonts/truetype"),
//	    docx2pdf.WithDiagnostics(myCollector),
//	)
//
// # Errors
//
// All failures are typed sentinel errors (ErrEntryNotFound,
// ErrRelationshipNotFound, ErrFontLoad, ErrInvalidColorFormat, ...) so
// callers can decide per element whether a missing resource is fatal or
// skippable. Nothing in this package panics on malformed input.
package docx2pdf
