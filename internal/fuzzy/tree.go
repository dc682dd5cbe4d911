// Package fuzzy defines a generic bracket tree: leaves are tokens and the
// only structure is the nesting the four bracket pairs induce. It carries no
// semantic labels, so external AST dumps can be ingested before anything
// understands them; the bridge package lifts these trees into typed syntax.
package fuzzy

import "github.com/funvibe/syntree/internal/token"

// Tree is one untyped node: a Leaf or one of the four bracket groups.
type Tree interface {
	GetToken() token.Token
	treeNode()
}

// Leaf is a single token.
type Leaf struct {
	Tok token.Token
}

func (l *Leaf) treeNode() {}
func (l *Leaf) GetToken() token.Token {
	if l == nil {
		return token.Token{}
	}
	return l.Tok
}

// Parens is a ( ... ) group.
type Parens struct {
	Open     token.Token
	Children []Tree
	Close    token.Token
}

func (p *Parens) treeNode() {}
func (p *Parens) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Open
}

// Brackets is a [ ... ] group.
type Brackets struct {
	Open     token.Token
	Children []Tree
	Close    token.Token
}

func (b *Brackets) treeNode() {}
func (b *Brackets) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Open
}

// Braces is a { ... } group.
type Braces struct {
	Open     token.Token
	Children []Tree
	Close    token.Token
}

func (b *Braces) treeNode() {}
func (b *Braces) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Open
}

// Angles is a < ... > group. In dump text the angle characters only ever
// delimit groups; they are never comparison operators.
type Angles struct {
	Open     token.Token
	Children []Tree
	Close    token.Token
}

func (a *Angles) treeNode() {}
func (a *Angles) GetToken() token.Token {
	if a == nil {
		return token.Token{}
	}
	return a.Open
}

// Children returns the sub-trees of a group, nil for a leaf.
func Children(t Tree) []Tree {
	switch n := t.(type) {
	case *Parens:
		return n.Children
	case *Brackets:
		return n.Children
	case *Braces:
		return n.Children
	case *Angles:
		return n.Children
	}
	return nil
}

var _ = []Tree{
	(*Leaf)(nil), (*Parens)(nil), (*Brackets)(nil), (*Braces)(nil), (*Angles)(nil),
}
