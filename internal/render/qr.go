package render

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QR module-scale presets, in pixels per module. Standard keeps the
// output small; Sharp quadruples the raster resolution for crisper
// print at the same physical size. The encoded content is identical.
const (
	ScaleStandard = 10
	ScaleSharp    = 40
)

// EncodeQR encodes payload as a black-on-white QR PNG at error
// correction level L with the given module scale.
func EncodeQR(payload string, scale int) ([]byte, error) {
	q, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %q: %w", payload, err)
	}
	// Negative size selects pixels-per-module rendering.
	png, err := q.PNG(-scale)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize %q: %w", payload, err)
	}
	return png, nil
}
