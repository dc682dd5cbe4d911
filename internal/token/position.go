package token

import "fmt"

// Position is a point in a source file.
// Line and Column are 1-based, Offset is a 0-based byte offset.
type Position struct {
	File   string
	Line   int
	Column int
	Offset int
}

// IsValid reports whether the position has been set.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String returns the position in file:line:column form.
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Before reports whether p occurs before q in the same file.
func (p Position) Before(q Position) bool {
	return p.Offset < q.Offset
}

// Span is a half-open source range [Start, End).
type Span struct {
	Start Position
	End   Position
}

// IsValid reports whether both endpoints are set.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

// Contains reports whether the byte offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}
