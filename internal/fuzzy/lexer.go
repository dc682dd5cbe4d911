package fuzzy

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/syntree/internal/token"
)

// Lexer scans dump text into tokens: atoms, numbers, strings, characters,
// the four bracket pairs, and raw punctuation runs. ';' starts a comment to
// end of line.
type Lexer struct {
	file         string
	input        string
	position     int  // byte offset of ch
	readPosition int  // byte offset one past ch
	ch           rune // rune being examined
	line         int
	column       int
}

// NewLexer builds a lexer over src, attributing positions to file.
func NewLexer(file, src string) *Lexer {
	l := &Lexer{file: file, input: src, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) pos() token.Position {
	return token.Position{File: l.file, Line: l.line, Column: l.column, Offset: l.position}
}

func (l *Lexer) skipSpaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		if l.ch != ';' {
			return
		}
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
	}
}

var bracketTypes = map[rune]token.Type{
	'(': token.LPAREN, ')': token.RPAREN,
	'[': token.LBRACKET, ']': token.RBRACKET,
	'{': token.LBRACE, '}': token.RBRACE,
	'<': token.LANGLE, '>': token.RANGLE,
}

func isAtomStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isAtomChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '.'
}

func isPunctChar(ch rune) bool {
	if ch == 0 || ch == '"' || ch == '\'' || ch == ';' {
		return false
	}
	if _, bracket := bracketTypes[ch]; bracket {
		return false
	}
	return !unicode.IsSpace(ch) && !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_'
}

// NextToken returns the next token, token.EOF at end of input.
func (l *Lexer) NextToken() token.Token {
	l.skipSpaceAndComments()

	pos := l.pos()

	switch l.ch {
	case 0:
		return token.Token{Type: token.EOF, Pos: pos}
	case '(', ')', '[', ']', '{', '}', '<', '>':
		typ := bracketTypes[l.ch]
		lex := string(l.ch)
		l.readChar()
		return token.New(typ, lex, pos)
	case '"':
		return l.readString(pos)
	case '\'':
		return l.readCharLit(pos)
	}

	switch {
	case unicode.IsDigit(l.ch), l.ch == '-' && unicode.IsDigit(l.peekChar()):
		return l.readNumber(pos)
	case isAtomStart(l.ch):
		return l.readAtom(pos)
	case isPunctChar(l.ch):
		return l.readPunct(pos)
	default:
		lex := string(l.ch)
		l.readChar()
		return token.New(token.ILLEGAL, lex, pos)
	}
}

func (l *Lexer) readAtom(pos token.Position) token.Token {
	start := l.position
	for isAtomChar(l.ch) {
		l.readChar()
	}
	return token.New(token.IDENT, l.input[start:l.position], pos)
}

func (l *Lexer) readPunct(pos token.Position) token.Token {
	start := l.position
	for isPunctChar(l.ch) {
		l.readChar()
	}
	return token.New(token.PUNCT, l.input[start:l.position], pos)
}

func (l *Lexer) readNumber(pos token.Position) token.Token {
	start := l.position
	if l.ch == '-' {
		l.readChar()
	}
	isFloat := false
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar()
		l.readChar()
		for unicode.IsDigit(l.ch) || ('a' <= l.ch && l.ch <= 'f') || ('A' <= l.ch && l.ch <= 'F') {
			l.readChar()
		}
		return token.New(token.INT, l.input[start:l.position], pos)
	}
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && unicode.IsDigit(l.peekChar()) {
		isFloat = true
		l.readChar()
		for unicode.IsDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if unicode.IsDigit(next) || next == '+' || next == '-' {
			isFloat = true
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for unicode.IsDigit(l.ch) {
				l.readChar()
			}
		}
	}
	typ := token.INT
	if isFloat {
		typ = token.FLOAT
	}
	return token.New(typ, l.input[start:l.position], pos)
}

func (l *Lexer) readString(pos token.Position) token.Token {
	var b strings.Builder
	l.readChar() // opening quote
	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			return token.New(token.ILLEGAL, b.String(), pos)
		}
		if l.ch == '\\' {
			l.readChar()
			b.WriteRune(unescape(l.ch))
		} else {
			b.WriteRune(l.ch)
		}
		l.readChar()
	}
	l.readChar() // closing quote
	return token.New(token.STRING, b.String(), pos)
}

func (l *Lexer) readCharLit(pos token.Position) token.Token {
	l.readChar() // opening quote
	var value rune
	if l.ch == '\\' {
		l.readChar()
		value = unescape(l.ch)
	} else if l.ch == 0 || l.ch == '\'' {
		return token.New(token.ILLEGAL, "", pos)
	} else {
		value = l.ch
	}
	l.readChar()
	if l.ch != '\'' {
		return token.New(token.ILLEGAL, string(value), pos)
	}
	l.readChar() // closing quote
	return token.New(token.CHAR, string(value), pos)
}

func unescape(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return ch
	}
}
