package ast

import "github.com/funvibe/syntree/internal/token"

// SeqKind discriminates the payload of a SeqItem.
type SeqKind uint8

const (
	SeqNode SeqKind = iota
	SeqDirective
	SeqConditional
)

// SeqItem interleaves nodes of one family with preprocessor material so a
// sequence reconstructs source order exactly. Exactly the field selected by
// Kind is set.
type SeqItem[T Node] struct {
	Kind SeqKind
	Node T               // SeqNode
	Dir  Directive       // SeqDirective
	Cond *Conditional[T] // SeqConditional
}

// Elem wraps a node as a sequence item.
func Elem[T Node](n T) SeqItem[T] { return SeqItem[T]{Kind: SeqNode, Node: n} }

// DirItem wraps a directive as a sequence item.
func DirItem[T Node](d Directive) SeqItem[T] { return SeqItem[T]{Kind: SeqDirective, Dir: d} }

// CondItem wraps a conditional region as a sequence item.
func CondItem[T Node](c *Conditional[T]) SeqItem[T] {
	return SeqItem[T]{Kind: SeqConditional, Cond: c}
}

func (it SeqItem[T]) GetToken() token.Token {
	switch it.Kind {
	case SeqNode:
		if n := Node(it.Node); n != nil {
			return n.GetToken()
		}
	case SeqDirective:
		if it.Dir != nil {
			return it.Dir.GetToken()
		}
	case SeqConditional:
		if it.Cond != nil {
			return it.Cond.Token
		}
	}
	return token.Token{}
}

// DeclItem is a declaration-sequence item, StmtItem a statement-sequence
// item. Toplevel is what a Program is a list of.
type DeclItem = SeqItem[Declaration]
type StmtItem = SeqItem[Statement]
type Toplevel = DeclItem

// Conditional is one #if/#elif/#else region inside a sequence. Every branch
// keeps its items; no branch is selected, the tree records all of them.
type Conditional[T Node] struct {
	Token    token.Token // the '#if' token
	Branches []Branch[T]
}

// Branch is one arm of a Conditional. Cond holds the raw condition tokens,
// empty for #else.
type Branch[T Node] struct {
	Token token.Token // the '#if'/'#elif'/'#else' token
	Cond  []token.Token
	Items []SeqItem[T]
}

// Directive is non-structural preprocessor material kept in a sequence.
type Directive interface {
	Node
	directiveNode()
}

// IncludeDirective represents #include "path" or #include <path>.
type IncludeDirective struct {
	Token   token.Token // the '#include' token
	Path    string
	PathTok token.Token
	System  bool // <...> form
}

func (d *IncludeDirective) directiveNode()        {}
func (d *IncludeDirective) TokenLiteral() string  { return d.Token.Lexeme }
func (d *IncludeDirective) GetToken() token.Token { return d.Token }

// DefineDirective represents #define. The replacement is kept as raw tokens,
// never parsed here.
type DefineDirective struct {
	Token  token.Token // the '#define' token
	Name   *Identifier
	Params []*Identifier // nil for object-like macros
	Body   []token.Token
}

func (d *DefineDirective) directiveNode()        {}
func (d *DefineDirective) TokenLiteral() string  { return d.Token.Lexeme }
func (d *DefineDirective) GetToken() token.Token { return d.Token }

// PragmaDirective represents #pragma with its raw text.
type PragmaDirective struct {
	Token token.Token // the '#pragma' token
	Text  string
}

func (d *PragmaDirective) directiveNode()        {}
func (d *PragmaDirective) TokenLiteral() string  { return d.Token.Lexeme }
func (d *PragmaDirective) GetToken() token.Token { return d.Token }

// MacroDirective is a macro use standing where a declaration or statement
// would be, e.g. a whole-line FOO(a, b). Arguments are raw tokens.
type MacroDirective struct {
	Token token.Token // the macro name token
	Name  *Identifier
	Args  []token.Token
}

func (d *MacroDirective) directiveNode()        {}
func (d *MacroDirective) TokenLiteral() string  { return d.Token.Lexeme }
func (d *MacroDirective) GetToken() token.Token { return d.Token }

var _ = []Directive{
	(*IncludeDirective)(nil), (*DefineDirective)(nil),
	(*PragmaDirective)(nil), (*MacroDirective)(nil),
}
