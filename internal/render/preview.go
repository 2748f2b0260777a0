package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/kegtrack/labelgen/internal/layout"
	"github.com/kegtrack/labelgen/pkg/labelspec"
)

const previewDPI = 300

// Preview renders the first sheet of the batch as a raster proof image
// so alignment can be checked on screen without printing. Cell
// boundaries are drawn as light outlines; they do not appear in the PDF
// output. A positive width downscales the result to that pixel width.
func Preview(b *labelspec.Batch, g layout.Grid, width int) (image.Image, error) {
	pxW := int(g.PageWidth * previewDPI)
	pxH := int(g.PageHeight * previewDPI)

	dc := gg.NewContext(pxW, pxH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	face, err := captionFace()
	if err != nil {
		return nil, err
	}

	n := b.Count
	if spp := g.SlotsPerPage(); n > spp {
		n = spp
	}

	for i := 0; i < n; i++ {
		slot := g.Slot(i)

		dc.SetLineWidth(1)
		dc.SetColor(color.RGBA{R: 210, G: 210, B: 210, A: 255})
		dc.DrawRectangle(slot.Cell.X*previewDPI, slot.Cell.Y*previewDPI, slot.Cell.W*previewDPI, slot.Cell.H*previewDPI)
		dc.Stroke()

		code, err := qr.Encode(b.Payload(i), qr.L, qr.Auto)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %q: %w", b.Payload(i), err)
		}
		size := int(slot.QR.W * previewDPI)
		scaled, err := barcode.Scale(code, size, size)
		if err != nil {
			return nil, fmt.Errorf("failed to scale QR for %q: %w", b.Identifier(i), err)
		}
		dc.DrawImage(scaled, int(slot.QR.X*previewDPI), int(slot.QR.Y*previewDPI))

		dc.SetColor(color.Black)
		dc.SetFontFace(face)
		dc.DrawStringAnchored(b.Identifier(i), slot.Caption.X*previewDPI, slot.Caption.Y*previewDPI, 0.5, 0)
	}

	img := dc.Image()
	if width > 0 && width < pxW {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}
	return img, nil
}

// WritePreview renders the proof sheet and saves it to path. The format
// follows the file extension; PNG is the expected choice.
func WritePreview(b *labelspec.Batch, g layout.Grid, path string, width int) error {
	img, err := Preview(b, g, width)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save preview: %w", err)
	}
	return nil
}

func captionFace() (font.Face, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse caption font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    captionPt,
		DPI:     previewDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build caption face: %w", err)
	}
	return face, nil
}
