package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/syntree/internal/token"
)

func TestNameOfWrapsIdentifier(t *testing.T) {
	n := NameOf(id("x"))
	require.NotNil(t, n)
	assert.True(t, IsIdentName(n))
	assert.True(t, IsClassName(n))
	assert.Equal(t, "x", n.String())
	assert.Equal(t, "x", n.GetToken().Lexeme)
	assert.Nil(t, NameOf(nil))
}

func TestExprOfUnqualifiedYieldsIdentifier(t *testing.T) {
	e := ExprOf(NameOf(id("x")))
	leaf, ok := e.(*Identifier)
	require.True(t, ok)
	assert.Equal(t, "x", leaf.Value)
	// The new leaf starts with a fresh resolution slot.
	assert.Equal(t, NotResolved, leaf.Resolved.Kind())
}

func TestExprOfQualifiedYieldsNameExpression(t *testing.T) {
	n := &Name{
		Qualifiers: []Qualifier{&ClassQualifier{Token: identTok("std"), Name: "std"}},
		ID:         &IdentID{Token: identTok("swap"), Name: "swap"},
	}
	e := ExprOf(n)
	ne, ok := e.(*NameExpression)
	require.True(t, ok)
	assert.Same(t, n, ne.Name)
	assert.Equal(t, "std", ne.Token.Lexeme)
}

func TestArgOfWrapsExpression(t *testing.T) {
	a := ArgOf(id("x"))
	ea, ok := a.(*ExprArgument)
	require.True(t, ok)
	assert.Equal(t, "x", ea.GetToken().Lexeme)
	assert.Nil(t, ArgOf(nil))
}

func TestClassNameConvention(t *testing.T) {
	tests := []struct {
		name    string
		id      NameID
		isClass bool
	}{
		{"ident", &IdentID{Token: identTok("Widget"), Name: "Widget"}, true},
		{"template", &TemplateID{Token: identTok("vector"), Name: "vector"}, true},
		{"destructor", &DestructorID{Token: punct("~"), Name: "Widget"}, false},
		{"operator", &OperatorID{Token: identTok("operator"), Op: "+"}, false},
		{"converter", &ConverterID{Token: identTok("operator")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isClass, IsClassName(&Name{ID: tt.id}))
		})
	}
	assert.False(t, IsClassName(nil))
}

func TestIsIdentNameRejectsQualified(t *testing.T) {
	qualified := &Name{
		Qualifiers: []Qualifier{&ClassQualifier{Token: identTok("a"), Name: "a"}},
		ID:         &IdentID{Token: identTok("b"), Name: "b"},
	}
	assert.False(t, IsIdentName(qualified))

	global := punct("::")
	rooted := &Name{Global: &global, ID: &IdentID{Token: identTok("b"), Name: "b"}}
	assert.False(t, IsIdentName(rooted))
}

func TestNameString(t *testing.T) {
	global := punct("::")
	n := &Name{
		Global: &global,
		Qualifiers: []Qualifier{
			&ClassQualifier{Token: identTok("std"), Name: "std"},
			&TemplateQualifier{Token: identTok("vector"), Name: "vector"},
		},
		ID: &DestructorID{Token: punct("~"), Name: "vector"},
	}
	assert.Equal(t, "::std::vector<...>::~vector", n.String())

	op := &Name{ID: &OperatorID{Token: identTok("operator"), Op: "+", OpTok: punct("+")}}
	assert.Equal(t, "operator+", op.String())
}

func TestNameGetTokenPrecedence(t *testing.T) {
	global := token.New(token.PUNCT, "::", token.Position{Line: 2, Column: 1})
	withGlobal := &Name{Global: &global, ID: &IdentID{Token: identTok("x"), Name: "x"}}
	assert.Equal(t, "::", withGlobal.GetToken().Lexeme)

	withQual := &Name{
		Qualifiers: []Qualifier{&ClassQualifier{Token: identTok("a"), Name: "a"}},
		ID:         &IdentID{Token: identTok("b"), Name: "b"},
	}
	assert.Equal(t, "a", withQual.GetToken().Lexeme)

	bare := NameOf(id("c"))
	assert.Equal(t, "c", bare.GetToken().Lexeme)
}

func TestTemplateArgsAreTraversed(t *testing.T) {
	// vector<int, N>: one type argument, one expression argument.
	n := &Name{ID: &TemplateID{
		Token: identTok("vector"),
		Name:  "vector",
		Args: []TemplateArg{
			&TypeArg{T: &BuiltinType{Token: identTok("int"), Kind: Int}},
			&ExprArg{E: id("N")},
		},
	}}
	counts := map[string]int{}
	Walk(countingHooks(counts), AnyName(n))
	assert.Equal(t, 1, counts["name"])
	assert.Equal(t, 1, counts["type"])
	assert.Equal(t, 1, counts["expr"])
}
