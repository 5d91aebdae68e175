package pdf

// PageCounter reports the number of pages of a PDF file on disk.
type PageCounter interface {
	Name() string
	PageCount(path string) (int, error)
}
