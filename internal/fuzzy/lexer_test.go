package fuzzy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/syntree/internal/fuzzy"
	"github.com/funvibe/syntree/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `(vec [1 2.5] "s" 'c' -3 0xFF foo.bar ::)
{x} <T> ; trailing comment
done`

	tests := []struct {
		expectedType   token.Type
		expectedLexeme string
	}{
		{token.LPAREN, "("},
		{token.IDENT, "vec"},
		{token.LBRACKET, "["},
		{token.INT, "1"},
		{token.FLOAT, "2.5"},
		{token.RBRACKET, "]"},
		{token.STRING, "s"},
		{token.CHAR, "c"},
		{token.INT, "-3"},
		{token.INT, "0xFF"},
		{token.IDENT, "foo.bar"},
		{token.PUNCT, "::"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "x"},
		{token.RBRACE, "}"},
		{token.LANGLE, "<"},
		{token.IDENT, "T"},
		{token.RANGLE, ">"},
		{token.IDENT, "done"},
		{token.EOF, ""},
	}

	l := fuzzy.NewLexer("dump.sexp", input)
	for i, tt := range tests {
		tok := l.NextToken()
		require.Equal(t, tt.expectedType, tok.Type, "tests[%d] type, lexeme %q", i, tok.Lexeme)
		require.Equal(t, tt.expectedLexeme, tok.Lexeme, "tests[%d] lexeme", i)
	}
}

func TestNumberTokens(t *testing.T) {
	tests := []struct {
		input          string
		expectedType   token.Type
		expectedLexeme string
	}{
		{"1", token.INT, "1"},
		{"-7", token.INT, "-7"},
		{"3.14", token.FLOAT, "3.14"},
		{"-0.5", token.FLOAT, "-0.5"},
		{"1e3", token.FLOAT, "1e3"},
		{"2E-4", token.FLOAT, "2E-4"},
		{"0x1F", token.INT, "0x1F"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := fuzzy.NewLexer("t", tt.input)
			tok := l.NextToken()
			assert.Equal(t, tt.expectedType, tok.Type)
			assert.Equal(t, tt.expectedLexeme, tok.Lexeme)
			assert.Equal(t, token.EOF, l.NextToken().Type)
		})
	}
}

func TestStringTokens(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedType   token.Type
		expectedLexeme string
	}{
		{"plain", `"abc"`, token.STRING, "abc"},
		{"escapes", `"a\nb"`, token.STRING, "a\nb"},
		{"escaped_quote", `"say \"hi\""`, token.STRING, `say "hi"`},
		{"unterminated", `"abc`, token.ILLEGAL, "abc"},
		{"newline_inside", "\"a\nb\"", token.ILLEGAL, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := fuzzy.NewLexer("t", tt.input)
			tok := l.NextToken()
			assert.Equal(t, tt.expectedType, tok.Type)
			assert.Equal(t, tt.expectedLexeme, tok.Lexeme)
		})
	}
}

func TestCharTokens(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedType   token.Type
		expectedLexeme string
	}{
		{"plain", `'x'`, token.CHAR, "x"},
		{"escape", `'\n'`, token.CHAR, "\n"},
		{"escaped_quote", `'\''`, token.CHAR, "'"},
		{"empty", `''`, token.ILLEGAL, ""},
		{"unterminated", `'ab`, token.ILLEGAL, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := fuzzy.NewLexer("t", tt.input)
			tok := l.NextToken()
			assert.Equal(t, tt.expectedType, tok.Type)
			assert.Equal(t, tt.expectedLexeme, tok.Lexeme)
		})
	}
}

func TestAngleCharsAreAlwaysBrackets(t *testing.T) {
	// < and > belong to the angles pair even glued to punct, so operator
	// lexemes like <= or -> never form.
	l := fuzzy.NewLexer("t", "a<=b->c")

	expected := []struct {
		typ    token.Type
		lexeme string
	}{
		{token.IDENT, "a"},
		{token.LANGLE, "<"},
		{token.PUNCT, "="},
		{token.IDENT, "b"},
		{token.PUNCT, "-"},
		{token.RANGLE, ">"},
		{token.IDENT, "c"},
		{token.EOF, ""},
	}
	for i, want := range expected {
		tok := l.NextToken()
		require.Equal(t, want.typ, tok.Type, "tokens[%d]", i)
		require.Equal(t, want.lexeme, tok.Lexeme, "tokens[%d]", i)
	}
}

func TestTokenPositions(t *testing.T) {
	l := fuzzy.NewLexer("d.sexp", "a\n  (b)")

	expected := []struct {
		lexeme string
		line   int
		column int
		offset int
	}{
		{"a", 1, 1, 0},
		{"(", 2, 3, 4},
		{"b", 2, 4, 5},
		{")", 2, 5, 6},
	}

	for _, want := range expected {
		tok := l.NextToken()
		require.Equal(t, want.lexeme, tok.Lexeme)
		assert.Equal(t, "d.sexp", tok.Pos.File)
		assert.Equal(t, want.line, tok.Pos.Line, "line of %q", want.lexeme)
		assert.Equal(t, want.column, tok.Pos.Column, "column of %q", want.lexeme)
		assert.Equal(t, want.offset, tok.Pos.Offset, "offset of %q", want.lexeme)
	}
	assert.Equal(t, token.EOF, l.NextToken().Type)
}
