package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kegtrack/labelgen/internal/layout"
	"github.com/kegtrack/labelgen/internal/merge"
	"github.com/kegtrack/labelgen/internal/render"
	"github.com/kegtrack/labelgen/pkg/labelspec"
)

const (
	defaultOutput   = "output/labels.pdf"
	defaultTemplate = "templates/SL655.pdf"
)

func main() {
	var (
		start        = flag.Int("start", 1, "First sequence number")
		count        = flag.Int("count", 0, "Number of labels to generate (required)")
		output       = flag.String("output", defaultOutput, "Output PDF path")
		template     = flag.String("template", defaultTemplate, "Label sheet template PDF")
		baseURL      = flag.String("base-url", "", "Base URL prepended to each identifier (required)")
		prefix       = flag.String("prefix", "ITEM-", "Identifier prefix")
		noTemplate   = flag.Bool("no-template", false, "Skip the template merge and write the overlay directly")
		layoutName   = flag.String("layout", "sl655", "Sheet layout: sl655 or filled")
		sharp        = flag.Bool("sharp", false, "Render QR codes at 40px per module instead of 10")
		preview      = flag.String("preview", "", "Also write a PNG proof of the first sheet to this path")
		previewWidth = flag.Int("preview-width", 1275, "Pixel width of the preview image (0 keeps full 300dpi)")
	)
	flag.Usage = printUsage
	flag.Parse()

	batch := &labelspec.Batch{
		Start:   *start,
		Count:   *count,
		BaseURL: *baseURL,
		Prefix:  *prefix,
	}
	if err := batch.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printUsage()
		os.Exit(2)
	}

	grid, err := layout.ByName(*layoutName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printUsage()
		os.Exit(2)
	}

	if dir := filepath.Dir(*output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fatalf("failed to create output directory: %v", err)
		}
	}

	sheets := batch.Sheets(grid.SlotsPerPage())

	fmt.Printf("Generating %d labels starting from %s...\n", batch.Count, batch.Identifier(0))

	opts := render.Options{}
	if *sharp {
		opts.QRScale = render.ScaleSharp
	}
	overlay, err := render.Overlay(batch, grid, opts)
	if err != nil {
		fatalf("%v", err)
	}

	doc := overlay
	if *noTemplate {
		fmt.Println("Skipping template merge (--no-template)")
	} else {
		fmt.Printf("Merging with template: %s\n", *template)
		doc, err = merge.Merge(overlay, sheets, *template)
		if err != nil {
			fatalf("%v", err)
		}
	}

	if err := os.WriteFile(*output, doc, 0644); err != nil {
		fatalf("failed to write %s: %v", *output, err)
	}

	if *preview != "" {
		if err := render.WritePreview(batch, grid, *preview, *previewWidth); err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("Preview sheet: %s\n", *preview)
	}

	fmt.Printf("✓ Successfully created %s\n", *output)
	fmt.Printf("  Labels: %s through %s\n", batch.Identifier(0), batch.Identifier(batch.Count-1))
	fmt.Printf("  Total sheets: %d\n", sheets)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Keg Label Generator

Generates sheets of sequentially numbered QR labels aligned to SL655
label stock (letter page, 4x6 grid, 24 labels per sheet) and merges
them onto the sheet template for printing.

Usage:
  labelgen --count <n> --base-url <url> [flags]

Flags:
  --start <n>          First sequence number (default 1)
  --count <n>          Number of labels to generate (required)
  --output <path>      Output PDF path (default %s)
  --template <path>    Template PDF to merge onto (default %s)
  --base-url <url>     Base URL prepended to each identifier (required)
  --prefix <s>         Identifier prefix (default ITEM-)
  --no-template        Skip the template merge, write the overlay directly
  --layout <name>      Sheet layout: sl655 or filled (default sl655)
  --sharp              Render QR codes at 40px per module instead of 10
  --preview <path>     Also write a PNG proof of the first sheet
  --preview-width <n>  Pixel width of the preview image (default 1275)

Examples:
  labelgen --count 48 --base-url https://example.com/kegs/ --prefix KEG-
  labelgen --count 10 --base-url https://example.com/item/ --no-template --output output/overlay.pdf
`, defaultOutput, defaultTemplate)
}
