// Package layout maps flat label indexes to positions on SL655 label
// sheets. All dimensions are inches with a top-left origin, y increasing
// downward, matching the PDF renderer's coordinate system.
package layout

import "fmt"

// Letter page dimensions in inches.
const (
	pageWidth  = 8.5
	pageHeight = 11.0
)

// Grid describes one label-sheet layout.
type Grid struct {
	Name        string
	PageWidth   float64
	PageHeight  float64
	Cols        int
	Rows        int
	CellWidth   float64
	CellHeight  float64
	LeftMargin  float64
	TopMargin   float64
	HGap        float64 // gap between adjacent columns
	VGap        float64 // gap between adjacent rows
	QRSize      float64 // side of the QR bounding box
	QRRaise     float64 // upward nudge of the QR within its cell
	CaptionDrop float64 // distance from QR bottom to caption baseline
}

// Rect is an axis-aligned box.
type Rect struct {
	X, Y, W, H float64
}

// Point is a position on the page. For captions X is the horizontal
// center of the text and Y its baseline.
type Point struct {
	X, Y float64
}

// Slot is the resolved placement for one label index.
type Slot struct {
	Page    int // 0-based sheet number
	Col     int
	Row     int
	Cell    Rect
	QR      Rect
	Caption Point
}

// SL655 is the canonical layout: the Sheet Labels SL655 datasheet
// constants with a fixed 0.2in vertical gap. 1.5in square labels,
// 4 columns by 6 rows on a letter page.
func SL655() Grid {
	return Grid{
		Name:        "sl655",
		PageWidth:   pageWidth,
		PageHeight:  pageHeight,
		Cols:        4,
		Rows:        6,
		CellWidth:   1.5,
		CellHeight:  1.5,
		LeftMargin:  0.78125,
		TopMargin:   0.5,
		HGap:        0.3125,
		VGap:        0.2,
		QRSize:      1.2,
		QRRaise:     0.05,
		CaptionDrop: 0.1,
	}
}

// SL655Filled is the page-filling variant: instead of a fixed vertical
// gap it distributes the height left over between the top and bottom
// margins evenly across the row gaps, so the six rows span the usable
// vertical extent exactly. Not interchangeable with SL655; the two
// place rows differently against the same physical sheet.
func SL655Filled() Grid {
	g := SL655()
	g.Name = "filled"
	g.TopMargin = 0.4
	bottomMargin := 0.4
	usable := g.PageHeight - g.TopMargin - bottomMargin
	g.VGap = (usable - float64(g.Rows)*g.CellHeight) / float64(g.Rows-1)
	return g
}

// ByName resolves a layout name from the CLI.
func ByName(name string) (Grid, error) {
	switch name {
	case "sl655":
		return SL655(), nil
	case "filled":
		return SL655Filled(), nil
	}
	return Grid{}, fmt.Errorf("unknown layout %q (valid: sl655, filled)", name)
}

// SlotsPerPage returns how many labels fit on one sheet.
func (g Grid) SlotsPerPage() int {
	return g.Cols * g.Rows
}

// Pages returns how many sheets count labels occupy.
func (g Grid) Pages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + g.SlotsPerPage() - 1) / g.SlotsPerPage()
}

// Slot computes the placement of the 0-based label index i.
func (g Grid) Slot(i int) Slot {
	spp := g.SlotsPerPage()
	pageIndex := i % spp
	col := pageIndex % g.Cols
	row := pageIndex / g.Cols

	cell := Rect{
		X: g.LeftMargin + float64(col)*(g.CellWidth+g.HGap),
		Y: g.TopMargin + float64(row)*(g.CellHeight+g.VGap),
		W: g.CellWidth,
		H: g.CellHeight,
	}

	// QR centered horizontally and vertically, then nudged up to leave
	// room for the caption underneath.
	qr := Rect{
		X: cell.X + (g.CellWidth-g.QRSize)/2,
		Y: cell.Y + (g.CellHeight-g.QRSize)/2 - g.QRRaise,
		W: g.QRSize,
		H: g.QRSize,
	}

	return Slot{
		Page: i / spp,
		Col:  col,
		Row:  row,
		Cell: cell,
		QR:   qr,
		Caption: Point{
			X: qr.X + qr.W/2,
			Y: qr.Y + qr.H + g.CaptionDrop,
		},
	}
}
