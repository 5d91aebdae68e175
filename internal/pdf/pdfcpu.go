package pdf

import (
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

var disableConfigDir sync.Once

type PDFCPUCounter struct{}

// NewPDFCPUCounter keeps pdfcpu from creating its config directory under the user's home.
func NewPDFCPUCounter() *PDFCPUCounter {
	disableConfigDir.Do(api.DisableConfigDir)
	return &PDFCPUCounter{}
}

func (c *PDFCPUCounter) Name() string {
	return BackendPDFCPU
}

func (c *PDFCPUCounter) PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read PDF: %w", err)
	}
	return n, nil
}
