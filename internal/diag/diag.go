// Package diag carries diagnostics as data. Readers and passes never panic
// or abort on malformed input; they record a Diagnostic and keep going, and
// the surrounding tool decides how to present the accumulated list.
package diag

import (
	"fmt"

	"github.com/funvibe/syntree/internal/token"
)

// Severity ranks a diagnostic.
type Severity uint8

const (
	Error Severity = iota
	Warning
	Info
)

var severityNames = map[Severity]string{
	Error: "error", Warning: "warning", Info: "info",
}

func (s Severity) String() string { return severityNames[s] }

// Diagnostic is one finding, tied to a source position. Code is a short
// stable identifier such as "read/unclosed".
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Pos      token.Position
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s [%s]", d.Pos, d.Severity, d.Message, d.Code)
}

// Errorf builds an error diagnostic.
func Errorf(pos token.Position, code, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
	}
}

// Warningf builds a warning diagnostic.
func Warningf(pos token.Position, code, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: Warning,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
	}
}

// List is an ordered collection of diagnostics.
type List []Diagnostic

// HasErrors reports whether any diagnostic is an error.
func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Count returns how many diagnostics have the given severity.
func (l List) Count(s Severity) int {
	n := 0
	for _, d := range l {
		if d.Severity == s {
			n++
		}
	}
	return n
}
