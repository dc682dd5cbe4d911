// Package token defines the lexical token model shared by every tree in this
// repository: the typed syntax trees, the generic bracket trees, and the dump
// reader all carry these tokens at their leaves.
package token

// Type classifies a token.
type Type int

const (
	EOF Type = iota
	ILLEGAL

	IDENT  // foo, operator+, a::b is several of these
	INT    // 123, 0x7f
	FLOAT  // 1.5, 2e10
	CHAR   // 'a'
	STRING // "hello"

	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
	LBRACE   // {
	RBRACE   // }
	LANGLE   // <
	RANGLE   // >

	PUNCT // any other operator or punctuation lexeme, classified by Lexeme
)

var typeNames = map[Type]string{
	EOF:      "EOF",
	ILLEGAL:  "ILLEGAL",
	IDENT:    "IDENT",
	INT:      "INT",
	FLOAT:    "FLOAT",
	CHAR:     "CHAR",
	STRING:   "STRING",
	LPAREN:   "(",
	RPAREN:   ")",
	LBRACKET: "[",
	RBRACKET: "]",
	LBRACE:   "{",
	RBRACE:   "}",
	LANGLE:   "<",
	RANGLE:   ">",
	PUNCT:    "PUNCT",
}

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "TOKEN(?)"
}

// Expansion records that a token was synthesized by macro expansion rather
// than read from the literal source text. Origin is the position of the macro
// use in the literal source; Marks is scratch space owned by downstream
// rewriting tools and never interpreted here.
type Expansion struct {
	Origin Position
	Marks  []string
}

// Token is a single lexeme with its source position.
//
// A nil Exp means the token is original source text. The Exp slot is written
// at most once, by whatever pass synthesizes the token, before the token is
// shared; traversal and readers treat it as immutable. No locking.
type Token struct {
	Type   Type
	Lexeme string
	Pos    Position
	Exp    *Expansion
}

// New builds an original-source token.
func New(typ Type, lexeme string, pos Position) Token {
	return Token{Type: typ, Lexeme: lexeme, Pos: pos}
}

// Expanded builds a macro-expanded token whose literal source position is
// origin.
func Expanded(typ Type, lexeme string, pos, origin Position) Token {
	return Token{Type: typ, Lexeme: lexeme, Pos: pos, Exp: &Expansion{Origin: origin}}
}

// IsExpanded reports whether the token came from a macro expansion.
func (t Token) IsExpanded() bool {
	return t.Exp != nil
}

// Origin returns the token's position in the literal source: its own position
// for original tokens, the expansion origin for synthesized ones.
func (t Token) Origin() Position {
	if t.Exp != nil {
		return t.Exp.Origin
	}
	return t.Pos
}

// String returns the lexeme, or the type name when the lexeme is empty.
func (t Token) String() string {
	if t.Lexeme == "" {
		return t.Type.String()
	}
	return t.Lexeme
}
