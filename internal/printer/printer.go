// Package printer writes styled, human readable command output.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/lightbox/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines to an output stream.
type Printer struct {
	out io.Writer
}

// New returns a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// WithPrinter returns a context carrying p.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) line(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

// Printf writes a plain line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.SuccessStyle.Render("✔") + " " + fmt.Sprintf(format, args...))
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.TextMutedStyle.Render("•") + " " + fmt.Sprintf(format, args...))
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.WarningStyle.Render("!") + " " + fmt.Sprintf(format, args...))
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ErrorStyle.Render("✘") + " " + fmt.Sprintf(format, args...))
}

// Section writes a header followed by a divider.
func (p *Printer) Section(title string) {
	p.line(styles.CommandHeaderStyle.Render(title))
	p.line(styles.DividerStyle.Render(dividerFor(title)))
}

func dividerFor(title string) string {
	n := max(len([]rune(title)), 3)
	out := make([]rune, n)
	for i := range out {
		out[i] = '─'
	}
	return string(out)
}
