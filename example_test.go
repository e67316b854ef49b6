package docx2pdf_test

import (
	"fmt"
	"log"

	docx2pdf "github.com/alnah/go-docx2pdf"
)

func ExampleParseColor() {
	rgb, err := docx2pdf.ParseColor("#000080")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("r=%d g=%d b=%d\n", rgb.R, rgb.G, rgb.B)

	rgb, _ = docx2pdf.ParseColor("auto")
	fmt.Printf("r=%d g=%d b=%d\n", rgb.R, rgb.G, rgb.B)
	// Output:
	// r=0 g=0 b=128
	// r=0 g=0 b=0
}

func ExampleOpen() {
	doc, err := docx2pdf.Open("report.docx",
		docx2pdf.WithFontsDir("/usr/share/fonts/truetype"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer doc.Close()

	target, err := doc.Hyperlink("rId4")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(target)
}
