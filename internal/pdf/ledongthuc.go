package pdf

import (
	"fmt"

	ledpdf "github.com/ledongthuc/pdf"
)

type LedongthucCounter struct{}

func NewLedongthucCounter() *LedongthucCounter {
	return &LedongthucCounter{}
}

func (c *LedongthucCounter) Name() string {
	return BackendLedongthuc
}

// PageCount converts the panics the reader raises on malformed page trees into errors.
func (c *LedongthucCounter) PageCount(path string) (n int, err error) {
	f, r, err := ledpdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	defer func() {
		if p := recover(); p != nil {
			n, err = 0, fmt.Errorf("malformed PDF: %v", p)
		}
	}()

	return r.NumPage(), nil
}
