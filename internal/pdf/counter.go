package pdf

import (
	"errors"
	"fmt"
	"sort"
)

const (
	BackendPDFCPU     = "pdfcpu"
	BackendFitz       = "fitz"
	BackendLedongthuc = "ledongthuc"

	DefaultBackend = BackendPDFCPU
)

var ErrUnknownBackend = errors.New("unknown PDF backend")

var backends = map[string]func() PageCounter{
	BackendPDFCPU:     func() PageCounter { return NewPDFCPUCounter() },
	BackendFitz:       func() PageCounter { return NewFitzCounter() },
	BackendLedongthuc: func() PageCounter { return NewLedongthucCounter() },
}

// NewCounter returns the backend registered under name. An empty name selects DefaultBackend.
func NewCounter(name string) (PageCounter, error) {
	if name == "" {
		name = DefaultBackend
	}
	newFn, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownBackend, name, Backends())
	}
	return newFn(), nil
}

func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
