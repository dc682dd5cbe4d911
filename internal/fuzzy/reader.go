package fuzzy

import (
	"github.com/funvibe/syntree/internal/diag"
	"github.com/funvibe/syntree/internal/token"
)

var closerFor = map[token.Type]token.Type{
	token.LPAREN:   token.RPAREN,
	token.LBRACKET: token.RBRACKET,
	token.LBRACE:   token.RBRACE,
	token.LANGLE:   token.RANGLE,
}

func isCloser(t token.Type) bool {
	switch t {
	case token.RPAREN, token.RBRACKET, token.RBRACE, token.RANGLE:
		return true
	}
	return false
}

type reader struct {
	lex   *Lexer
	tok   token.Token
	diags diag.List
}

func (r *reader) next() { r.tok = r.lex.NextToken() }

// Read scans src into a forest of bracket trees. Malformed input never
// aborts: a stray closer is dropped with a diagnostic, a group left open at
// end of input is closed implicitly with a diagnostic, and reading always
// returns whatever shape was recoverable.
func Read(file, src string) ([]Tree, diag.List) {
	r := &reader{lex: NewLexer(file, src)}
	r.next()
	trees := r.readSeq(token.EOF)
	return trees, r.diags
}

// readSeq reads trees until end of input or until the wanted closer is the
// current token, which the caller consumes.
func (r *reader) readSeq(until token.Type) []Tree {
	var out []Tree
	for r.tok.Type != token.EOF {
		if r.tok.Type == until {
			return out
		}
		if isCloser(r.tok.Type) {
			if until != token.EOF {
				// Mismatched closer: end this group here and let an
				// outer group claim the token.
				return out
			}
			r.diags = append(r.diags, diag.Errorf(r.tok.Pos, "read/stray",
				"unexpected %q", r.tok.Lexeme))
			r.next()
			continue
		}
		out = append(out, r.readTree())
	}
	return out
}

func (r *reader) readTree() Tree {
	open := r.tok
	want, isOpen := closerFor[open.Type]
	if !isOpen {
		if open.Type == token.ILLEGAL {
			r.diags = append(r.diags, diag.Warningf(open.Pos, "read/illegal",
				"unreadable input %q", open.Lexeme))
		}
		r.next()
		return &Leaf{Tok: open}
	}

	r.next()
	children := r.readSeq(want)
	var closeTok token.Token
	switch {
	case r.tok.Type == want:
		closeTok = r.tok
		r.next()
	case r.tok.Type == token.EOF:
		r.diags = append(r.diags, diag.Errorf(open.Pos, "read/unclosed",
			"%q has no matching closer", open.Lexeme))
	default:
		// A different closer ended the group (see readSeq); report the
		// mismatch against the opener.
		r.diags = append(r.diags, diag.Errorf(r.tok.Pos, "read/mismatch",
			"%q closed by %q", open.Lexeme, r.tok.Lexeme))
	}

	switch open.Type {
	case token.LPAREN:
		return &Parens{Open: open, Children: children, Close: closeTok}
	case token.LBRACKET:
		return &Brackets{Open: open, Children: children, Close: closeTok}
	case token.LBRACE:
		return &Braces{Open: open, Children: children, Close: closeTok}
	default:
		return &Angles{Open: open, Children: children, Close: closeTok}
	}
}
