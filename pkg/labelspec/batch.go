// Package labelspec defines a label batch and the identifier/payload
// contract shared by the overlay renderer and the CLI.
package labelspec

import "fmt"

// padWidth is the minimum digit width of the numeric part of an
// identifier. Numbers wider than this render in full, never truncated.
const padWidth = 4

// Batch describes one generation run.
type Batch struct {
	Start   int    // first sequence number
	Count   int    // total labels to generate
	BaseURL string // prepended verbatim to each identifier to form the QR payload
	Prefix  string // identifier prefix, e.g. "KEG-"
}

// Identifier returns the identifier for the 0-based label index i,
// e.g. Prefix "KEG-", Start 5, i 0 -> "KEG-0005".
func (b *Batch) Identifier(i int) string {
	return fmt.Sprintf("%s%0*d", b.Prefix, padWidth, b.Start+i)
}

// Payload returns the QR payload for label index i. The identifier is
// concatenated onto BaseURL verbatim; Validate restricts Prefix to
// URL-safe characters so no escaping is ever applied here.
func (b *Batch) Payload(i int) string {
	return b.BaseURL + b.Identifier(i)
}

// Sheets returns how many sheets the batch occupies at perSheet labels
// per sheet.
func (b *Batch) Sheets(perSheet int) int {
	return (b.Count + perSheet - 1) / perSheet
}
