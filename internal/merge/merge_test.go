package merge

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/kegtrack/labelgen/internal/layout"
	"github.com/kegtrack/labelgen/internal/render"
	"github.com/kegtrack/labelgen/pkg/labelspec"
)

// writeTemplate writes a synthetic label-sheet template with the given
// number of pages. Page guides are drawn as rectangles so the file has
// real content to import.
func writeTemplate(t *testing.T, path string, pages int) {
	t.Helper()

	pdf := gofpdf.New("P", "in", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	for p := 0; p < pages; p++ {
		pdf.AddPage()
		pdf.SetLineWidth(0.01)
		pdf.Rect(0.5, 0.5, 7.5, 10.0, "D")
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("Failed to write template: %v", err)
	}
}

func buildOverlay(t *testing.T, count int) ([]byte, int) {
	t.Helper()

	b := &labelspec.Batch{Start: 1, Count: count, BaseURL: "https://example.com/item/", Prefix: "ITEM-"}
	g := layout.SL655()
	buf, err := render.Overlay(b, g, render.Options{})
	if err != nil {
		t.Fatalf("Failed to build overlay: %v", err)
	}
	return buf, g.Pages(count)
}

func TestMerge_PageCountFollowsOverlay(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "template.pdf")
	writeTemplate(t, tpl, 1)

	overlay, pages := buildOverlay(t, 25)

	out, err := Merge(overlay, pages, tpl)
	if err != nil {
		t.Fatalf("Failed to merge: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Error("Expected PDF header")
	}
	if !bytes.Contains(out, []byte("/Count 2")) {
		t.Error("Expected merged document to have 2 pages")
	}
}

func TestMerge_OnlyFirstTemplatePageUsed(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "template.pdf")
	writeTemplate(t, tpl, 3)

	overlay, pages := buildOverlay(t, 24)

	out, err := Merge(overlay, pages, tpl)
	if err != nil {
		t.Fatalf("Failed to merge: %v", err)
	}
	// Page count tracks the overlay, not the template.
	if !bytes.Contains(out, []byte("/Count 1")) {
		t.Error("Expected merged document to have 1 page despite a 3-page template")
	}
}

func TestMerge_MissingTemplate(t *testing.T) {
	overlay, pages := buildOverlay(t, 1)

	if _, err := Merge(overlay, pages, filepath.Join(t.TempDir(), "absent.pdf")); err == nil {
		t.Error("Expected error for missing template")
	}
}

func TestMerge_MalformedTemplate(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "garbage.pdf")
	if err := os.WriteFile(tpl, []byte("not a pdf at all"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	overlay, pages := buildOverlay(t, 1)

	if _, err := Merge(overlay, pages, tpl); err == nil {
		t.Error("Expected error for malformed template")
	}
}

func TestMerge_EmptyOverlay(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "template.pdf")
	writeTemplate(t, tpl, 1)

	if _, err := Merge(nil, 0, tpl); err == nil {
		t.Error("Expected error for an overlay with no pages")
	}
}
