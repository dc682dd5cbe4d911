// Package ast defines a language-neutral syntax tree: expression, statement,
// type and declaration families that recurse into each other, qualified
// names, token-carrying leaves, and per-family Todo variants for constructs a
// front end recognizes but does not model. Traversal lives in walk.go and is
// hook-based rather than interface-based, so the nodes carry no Accept
// methods.
package ast

import "github.com/funvibe/syntree/internal/token"

// TokenProvider is satisfied by anything that can point at a source token,
// which is all a diagnostic needs.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the interface every tree node satisfies. GetToken returns the
// node's anchor token, the zero Token when the node has none.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Statement is the marker interface for the statement family.
type Statement interface {
	Node
	statementNode()
}

// Expression is the marker interface for the expression family.
type Expression interface {
	Node
	expressionNode()
}

// Type is the marker interface for the type family.
type Type interface {
	Node
	typeNode()
}

// Declaration is the marker interface for the declaration family, at top
// level or nested inside a namespace, class body or statement.
type Declaration interface {
	Node
	declarationNode()
}

// Constant is a literal leaf. Every constant is also an expression.
type Constant interface {
	Expression
	constantNode()
}

// Argument is one element of a call argument list.
type Argument interface {
	Node
	argumentNode()
}

// CategoryTag names a construct a front end recognized but this tree does not
// model. The text is opaque: nothing here interprets it, it only travels with
// the Todo node so tools can report what was skipped.
type CategoryTag struct {
	Token token.Token // the token that introduced the construct
	Text  string
}

// Program is the root node for one translation unit.
type Program struct {
	File  string // source path as reported by the producer
	Items []DeclItem
}

func (p *Program) TokenLiteral() string { return p.GetToken().Lexeme }
func (p *Program) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	for _, it := range p.Items {
		if tok := it.GetToken(); tok.Lexeme != "" || tok.Pos.IsValid() {
			return tok
		}
	}
	return token.Token{}
}
