package checker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kpauljoseph/pagecheck/internal/pdf"
	"github.com/kpauljoseph/pagecheck/internal/report"
	"github.com/kpauljoseph/pagecheck/internal/scanner"
	"github.com/kpauljoseph/pagecheck/pkg/logger"
	"github.com/kpauljoseph/pagecheck/pkg/models"
)

type Checker struct {
	counter     pdf.PageCounter
	scanner     *scanner.Scanner
	printer     *report.Printer
	logger      *logger.Logger
	fixturePath string
	outputGlob  string
}

func New(
	counter pdf.PageCounter,
	printer *report.Printer,
	fixturePath string,
	outputGlob string,
	logger *logger.Logger,
) *Checker {
	return &Checker{
		counter:     counter,
		scanner:     scanner.New(logger),
		printer:     printer,
		logger:      logger,
		fixturePath: fixturePath,
		outputGlob:  outputGlob,
	}
}

// CheckPageCount never fails: every error, including a backend panic, ends up in the result.
func (c *Checker) CheckPageCount(path string) (result models.CheckResult) {
	result.File = filepath.Base(path)

	defer func() {
		if p := recover(); p != nil {
			c.logger.Debug("Recovered from %s backend panic on %s: %v", c.counter.Name(), path, p)
			result.PageCount = 0
			result.Error = fmt.Sprintf("%v", p)
		}
	}()

	n, err := c.counter.PageCount(path)
	if err != nil {
		result.Error = err.Error()
		if result.Error == "" {
			result.Error = "unknown error"
		}
		return result
	}

	result.PageCount = n
	return result
}

// Run checks every candidate path in order and prints the summary.
// Missing files are reported and skipped; they produce no result.
func (c *Checker) Run(ctx context.Context) ([]models.CheckResult, error) {
	paths, err := c.scanner.Candidates(ctx, c.fixturePath, c.outputGlob)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Checking %d candidate files with %s", len(paths), c.counter.Name())

	results := make([]models.CheckResult, 0, len(paths))
	for _, path := range paths {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		if !exists(path) {
			c.printer.NotFound(path)
			continue
		}

		c.printer.Checking(path)
		result := c.CheckPageCount(path)
		results = append(results, result)
		c.printer.Result(result)
	}

	c.printer.Summary(results)
	return results, nil
}

// exists reports false for any stat failure, not only a missing path.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
