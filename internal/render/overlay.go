// Package render builds the QR overlay document and the raster proof
// sheet for a label batch.
package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/kegtrack/labelgen/internal/layout"
	"github.com/kegtrack/labelgen/pkg/labelspec"
)

// Caption styling, shared by the PDF overlay and the proof sheet.
const (
	captionFont = "Helvetica"
	captionPt   = 8
)

// Options controls overlay rendering.
type Options struct {
	QRScale int // pixels per module; ScaleStandard when zero
}

// Overlay renders the batch onto a fresh multi-page letter document:
// one page per full grid of slots, each slot holding the QR image for
// its payload and the identifier as a centered caption below it.
// Returns the sealed PDF. The template artwork is not drawn here; see
// the merge package.
func Overlay(b *labelspec.Batch, g layout.Grid, opts Options) ([]byte, error) {
	scale := opts.QRScale
	if scale == 0 {
		scale = ScaleStandard
	}

	pdf := gofpdf.New("P", "in", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}

	for i := 0; i < b.Count; i++ {
		if i%g.SlotsPerPage() == 0 {
			pdf.AddPage()
			pdf.SetFont(captionFont, "", captionPt)
		}

		slot := g.Slot(i)
		id := b.Identifier(i)

		png, err := EncodeQR(b.Payload(i), scale)
		if err != nil {
			return nil, err
		}

		name := fmt.Sprintf("qr-%04d", i)
		pdf.RegisterImageOptionsReader(name, imgOpts, bytes.NewReader(png))
		pdf.ImageOptions(name, slot.QR.X, slot.QR.Y, slot.QR.W, slot.QR.H, false, imgOpts, 0, "")

		pdf.Text(slot.Caption.X-pdf.GetStringWidth(id)/2, slot.Caption.Y, id)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to build overlay: %w", err)
	}
	return buf.Bytes(), nil
}
