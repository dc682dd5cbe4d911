package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
	ansiReset  = "\033[0m"
)

// Printer writes diagnostics in file:line:col form, colorized when the
// destination is a terminal.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter builds a printer for w, detecting terminal capability when w is
// an *os.File.
func NewPrinter(w io.Writer) *Printer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Printer{w: w, color: color}
}

// WithColor overrides terminal detection.
func (p *Printer) WithColor(on bool) *Printer {
	p.color = on
	return p
}

func (p *Printer) severityLabel(s Severity) string {
	if !p.color {
		return s.String()
	}
	switch s {
	case Error:
		return ansiRed + s.String() + ansiReset
	case Warning:
		return ansiYellow + s.String() + ansiReset
	default:
		return ansiCyan + s.String() + ansiReset
	}
}

// Print writes one diagnostic.
func (p *Printer) Print(d Diagnostic) {
	fmt.Fprintf(p.w, "%s: %s: %s [%s]\n", d.Pos, p.severityLabel(d.Severity), d.Message, d.Code)
}

// PrintAll writes every diagnostic in order and returns how many were
// errors.
func (p *Printer) PrintAll(l List) int {
	for _, d := range l {
		p.Print(d)
	}
	return l.Count(Error)
}
