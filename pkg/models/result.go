package models

import (
	"fmt"
)

// CheckResult is the outcome of counting the pages of one file.
// A failed result carries a non-empty Error and a zero PageCount.
type CheckResult struct {
	File      string
	PageCount int
	Error     string
}

func (r CheckResult) Failed() bool {
	return r.Error != ""
}

// String renders the inline form printed right after the progress line.
func (r CheckResult) String() string {
	if r.Failed() {
		return fmt.Sprintf("{file: %s, error: %s}", r.File, r.Error)
	}
	return fmt.Sprintf("{file: %s, page_count: %d}", r.File, r.PageCount)
}

func (r CheckResult) SummaryLine() string {
	if r.Failed() {
		return fmt.Sprintf("%s: ERROR - %s", r.File, r.Error)
	}
	return fmt.Sprintf("%s: %d pages", r.File, r.PageCount)
}

// PartRange is one part the splitter is expected to produce. Pages are 1-based and inclusive.
type PartRange struct {
	Index      int
	StartPage  int
	EndPage    int
	PageCount  int
	IntroStart int
	IntroEnd   int
	WithIntro  bool
}

// ExpectedPages is the page count of the written part, intro pages included.
func (p PartRange) ExpectedPages() int {
	if !p.WithIntro {
		return p.PageCount
	}
	return p.PageCount + p.IntroEnd - p.IntroStart + 1
}

type PartVerification struct {
	File     string
	Expected int
	Actual   int
	Error    string
}

func (v PartVerification) OK() bool {
	return v.Error == "" && v.Expected == v.Actual
}

func (v PartVerification) SummaryLine() string {
	switch {
	case v.Error != "":
		return fmt.Sprintf("%s: ERROR - %s", v.File, v.Error)
	case v.Expected != v.Actual:
		return fmt.Sprintf("%s: MISMATCH - expected %d, got %d", v.File, v.Expected, v.Actual)
	default:
		return fmt.Sprintf("%s: OK (%d pages)", v.File, v.Actual)
	}
}
