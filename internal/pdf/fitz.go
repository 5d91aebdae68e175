package pdf

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// FitzCounter counts pages with MuPDF.
type FitzCounter struct{}

func NewFitzCounter() *FitzCounter {
	return &FitzCounter{}
}

func (c *FitzCounter) Name() string {
	return BackendFitz
}

func (c *FitzCounter) PageCount(path string) (int, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	return doc.NumPage(), nil
}
