// Package merge composites the QR overlay onto the label-sheet template.
package merge

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
)

// Letter page box the imported pages are stamped into, in inches.
const (
	pageWidth  = 8.5
	pageHeight = 11.0
)

// Merge stamps each of the pageCount overlay pages onto a fresh copy of
// the FIRST page of the template at templatePath. The result has
// exactly pageCount pages no matter how many pages the template has.
// A missing, unreadable or malformed template is a hard error; the
// caller decides whether to skip merging entirely, never this function.
func Merge(overlay []byte, pageCount int, templatePath string) (out []byte, err error) {
	if pageCount < 1 {
		return nil, fmt.Errorf("overlay has no pages")
	}
	if _, statErr := os.Stat(templatePath); statErr != nil {
		return nil, fmt.Errorf("template %s: %w", templatePath, statErr)
	}

	// gofpdi panics on malformed PDFs; surface that as an error so the
	// run aborts with a message instead of a stack trace.
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("failed to merge with template %s: %v", templatePath, r)
		}
	}()

	pdf := gofpdf.New("P", "in", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	imp := gofpdi.NewImporter()
	tpl := imp.ImportPage(pdf, templatePath, 1, "/MediaBox")

	var rs io.ReadSeeker = bytes.NewReader(overlay)
	for p := 1; p <= pageCount; p++ {
		pdf.AddPage()
		imp.UseImportedTemplate(pdf, tpl, 0, 0, pageWidth, pageHeight)

		ovl := imp.ImportPageFromStream(pdf, &rs, p, "/MediaBox")
		imp.UseImportedTemplate(pdf, ovl, 0, 0, pageWidth, pageHeight)
	}

	var buf bytes.Buffer
	if outErr := pdf.Output(&buf); outErr != nil {
		return nil, fmt.Errorf("failed to write merged document: %w", outErr)
	}
	return buf.Bytes(), nil
}
