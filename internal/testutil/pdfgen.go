// Package testutil writes small PDF files for tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BuildPDF returns a minimal PDF 1.4 document with the given number of blank
// Letter-sized pages and a correct cross-reference table.
func BuildPDF(pages int) []byte {
	var buf bytes.Buffer
	var offsets []int

	// Objects: 1 catalog, 2 page tree, 3..3+pages-1 pages.
	startObj := func() {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n", len(offsets))
	}

	buf.WriteString("%PDF-1.4\n")

	startObj()
	buf.WriteString("<</Type/Catalog/Pages 2 0 R>>\nendobj\n")

	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	startObj()
	fmt.Fprintf(&buf, "<</Type/Pages/Kids[%s]/Count %d>>\nendobj\n", strings.Join(kids, " "), pages)

	for i := 0; i < pages; i++ {
		startObj()
		buf.WriteString("<</Type/Page/MediaBox[0 0 612 792]/Parent 2 0 R/Resources<<>>>>\nendobj\n")
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	fmt.Fprintf(&buf, "%010d %05d f\r\n", 0, 65535)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d %05d n\r\n", off, 0)
	}

	fmt.Fprintf(&buf, "trailer\n<</Size %d/Root 1 0 R>>\n", len(offsets)+1)
	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF\n", xrefOffset)

	return buf.Bytes()
}

// WritePDF writes a blank PDF with the given page count, creating parent directories.
func WritePDF(path string, pages int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return os.WriteFile(path, BuildPDF(pages), 0644)
}

// WriteCorrupt writes a file with a .pdf name that is not a PDF.
func WriteCorrupt(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return os.WriteFile(path, []byte("this is not a pdf document\n"), 0644)
}
