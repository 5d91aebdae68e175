// Package report renders the human-readable checker output.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/kpauljoseph/pagecheck/pkg/models"
)

type Printer struct {
	out    io.Writer
	ok     *color.Color
	warn   *color.Color
	failed *color.Color
	header *color.Color
}

// New returns a Printer writing to out. With useColor false the output is plain text.
func New(out io.Writer, useColor bool) *Printer {
	p := &Printer{
		out:    out,
		ok:     color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
		failed: color.New(color.FgRed),
		header: color.New(color.Bold),
	}

	for _, c := range []*color.Color{p.ok, p.warn, p.failed, p.header} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p *Printer) NotFound(path string) {
	p.warn.Fprintf(p.out, "File not found: %s\n", path)
}

func (p *Printer) Checking(path string) {
	fmt.Fprintf(p.out, "Checking %s...\n", path)
}

func (p *Printer) Result(r models.CheckResult) {
	fmt.Fprint(p.out, "  ")
	p.resultColor(r).Fprintln(p.out, r.String())
}

func (p *Printer) Summary(results []models.CheckResult) {
	fmt.Fprintln(p.out)
	p.header.Fprintln(p.out, "Summary:")
	for _, r := range results {
		p.resultColor(r).Fprintln(p.out, r.SummaryLine())
	}
}

func (p *Printer) Verification(vs []models.PartVerification) {
	fmt.Fprintln(p.out)
	p.header.Fprintln(p.out, "Verification:")
	for _, v := range vs {
		c := p.ok
		if !v.OK() {
			c = p.failed
		}
		c.Fprintln(p.out, v.SummaryLine())
	}
}

func (p *Printer) resultColor(r models.CheckResult) *color.Color {
	if r.Failed() {
		return p.failed
	}
	return p.ok
}
