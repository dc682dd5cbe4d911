package ast

import "github.com/funvibe/syntree/internal/token"

// Identifier represents a plain name in expression position, e.g. x.
// It doubles as the bare-identifier leaf in binding positions (declarator
// names, parameter names, labels); only expression-position identifiers are
// dispatched by the walker. Resolved is the resolution slot, written at most
// once by a resolution pass.
type Identifier struct {
	Token    token.Token // the identifier token
	Value    string
	Resolved ResolvedName
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// NameExpression represents a qualified name in expression position,
// e.g. std::swap or Widget::~Widget.
type NameExpression struct {
	Token token.Token // first token of the name
	Name  *Name
}

func (ne *NameExpression) expressionNode()       {}
func (ne *NameExpression) TokenLiteral() string  { return ne.Token.Lexeme }
func (ne *NameExpression) GetToken() token.Token { return ne.Token }

// IntConstant represents an integer literal, e.g. 42 or 0x7f.
// The original spelling survives in Token.Lexeme.
type IntConstant struct {
	Token token.Token
	Value int64
}

func (c *IntConstant) expressionNode()       {}
func (c *IntConstant) constantNode()         {}
func (c *IntConstant) TokenLiteral() string  { return c.Token.Lexeme }
func (c *IntConstant) GetToken() token.Token { return c.Token }

// FloatConstant represents a floating-point literal, e.g. 2.5 or 1e10.
type FloatConstant struct {
	Token token.Token
	Value float64
}

func (c *FloatConstant) expressionNode()       {}
func (c *FloatConstant) constantNode()         {}
func (c *FloatConstant) TokenLiteral() string  { return c.Token.Lexeme }
func (c *FloatConstant) GetToken() token.Token { return c.Token }

// CharConstant represents a character literal, e.g. 'a'.
type CharConstant struct {
	Token token.Token
	Value rune
}

func (c *CharConstant) expressionNode()       {}
func (c *CharConstant) constantNode()         {}
func (c *CharConstant) TokenLiteral() string  { return c.Token.Lexeme }
func (c *CharConstant) GetToken() token.Token { return c.Token }

// StringConstant represents a string literal.
type StringConstant struct {
	Token token.Token
	Value string
}

func (c *StringConstant) expressionNode()       {}
func (c *StringConstant) constantNode()         {}
func (c *StringConstant) TokenLiteral() string  { return c.Token.Lexeme }
func (c *StringConstant) GetToken() token.Token { return c.Token }

// BoolConstant represents true or false.
type BoolConstant struct {
	Token token.Token
	Value bool
}

func (c *BoolConstant) expressionNode()       {}
func (c *BoolConstant) constantNode()         {}
func (c *BoolConstant) TokenLiteral() string  { return c.Token.Lexeme }
func (c *BoolConstant) GetToken() token.Token { return c.Token }

// NullConstant represents a null pointer literal (NULL, nullptr, None).
type NullConstant struct {
	Token token.Token
}

func (c *NullConstant) expressionNode()       {}
func (c *NullConstant) constantNode()         {}
func (c *NullConstant) TokenLiteral() string  { return c.Token.Lexeme }
func (c *NullConstant) GetToken() token.Token { return c.Token }

// ParenExpression represents a parenthesized expression, e.g. (x + y).
type ParenExpression struct {
	Token token.Token // the '(' token
	Inner Expression
}

func (pe *ParenExpression) expressionNode()       {}
func (pe *ParenExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *ParenExpression) GetToken() token.Token { return pe.Token }

// CallExpression represents a function call, e.g. f(x, y).
type CallExpression struct {
	Token    token.Token // the '(' token
	Function Expression
	Args     []Argument
}

func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token { return ce.Token }

// ExprArgument is a positional call argument.
type ExprArgument struct {
	E Expression
}

func (a *ExprArgument) argumentNode()        {}
func (a *ExprArgument) TokenLiteral() string { return a.GetToken().Lexeme }
func (a *ExprArgument) GetToken() token.Token {
	if a == nil || a.E == nil {
		return token.Token{}
	}
	return a.E.GetToken()
}

// NamedArgument is a keyword call argument, e.g. f(x=1).
type NamedArgument struct {
	Token token.Token // the name token
	Name  *Identifier
	Value Expression
}

func (a *NamedArgument) argumentNode()         {}
func (a *NamedArgument) TokenLiteral() string  { return a.Token.Lexeme }
func (a *NamedArgument) GetToken() token.Token { return a.Token }

// BinaryExpression represents an infix operation, e.g. a + b.
type BinaryExpression struct {
	Token token.Token // the operator token
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (be *BinaryExpression) expressionNode()       {}
func (be *BinaryExpression) TokenLiteral() string  { return be.Token.Lexeme }
func (be *BinaryExpression) GetToken() token.Token { return be.Token }

// UnaryExpression represents a prefix operation, e.g. -x, *p, ++i.
type UnaryExpression struct {
	Token   token.Token // the operator token
	Op      UnaryOp
	Operand Expression
}

func (ue *UnaryExpression) expressionNode()       {}
func (ue *UnaryExpression) TokenLiteral() string  { return ue.Token.Lexeme }
func (ue *UnaryExpression) GetToken() token.Token { return ue.Token }

// PostfixExpression represents x++ or x--.
type PostfixExpression struct {
	Token   token.Token // the operator token
	Op      PostfixOp
	Operand Expression
}

func (pe *PostfixExpression) expressionNode()       {}
func (pe *PostfixExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *PostfixExpression) GetToken() token.Token { return pe.Token }

// AssignExpression represents an assignment, e.g. x = 5 or x += 1.
type AssignExpression struct {
	Token  token.Token // the operator token
	Op     AssignOp
	Target Expression
	Value  Expression
}

func (ae *AssignExpression) expressionNode()       {}
func (ae *AssignExpression) TokenLiteral() string  { return ae.Token.Lexeme }
func (ae *AssignExpression) GetToken() token.Token { return ae.Token }

// CondExpression represents the ternary c ? a : b. A nil Then is the
// elided-middle form c ?: b.
type CondExpression struct {
	Token token.Token // the '?' token
	Cond  Expression
	Then  Expression
	Else  Expression
}

func (ce *CondExpression) expressionNode()       {}
func (ce *CondExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CondExpression) GetToken() token.Token { return ce.Token }

// SequenceExpression represents the comma operator, e.g. a, b.
type SequenceExpression struct {
	Token token.Token // the ',' token
	Left  Expression
	Right Expression
}

func (se *SequenceExpression) expressionNode()       {}
func (se *SequenceExpression) TokenLiteral() string  { return se.Token.Lexeme }
func (se *SequenceExpression) GetToken() token.Token { return se.Token }

// CastExpression represents (T)x.
type CastExpression struct {
	Token   token.Token // the '(' token
	To      Type
	Operand Expression
}

func (ce *CastExpression) expressionNode()       {}
func (ce *CastExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CastExpression) GetToken() token.Token { return ce.Token }

// IndexExpression represents indexing, e.g. arr[i].
type IndexExpression struct {
	Token  token.Token // the '[' token
	Target Expression
	Index  Expression
}

func (ie *IndexExpression) expressionNode()       {}
func (ie *IndexExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *IndexExpression) GetToken() token.Token { return ie.Token }

// FieldExpression represents member access, e.g. obj.field or p->field.
// The field is a full Name because C++ allows qualified members, template-id
// members and p->~T().
type FieldExpression struct {
	Token  token.Token // the '.' or '->' token
	Arrow  bool
	Target Expression
	Field  *Name
}

func (fe *FieldExpression) expressionNode()       {}
func (fe *FieldExpression) TokenLiteral() string  { return fe.Token.Lexeme }
func (fe *FieldExpression) GetToken() token.Token { return fe.Token }

// SizeofExpression represents sizeof(T) or sizeof e.
// Exactly one of OfType and Operand is set.
type SizeofExpression struct {
	Token   token.Token // the 'sizeof' token
	OfType  Type
	Operand Expression
}

func (se *SizeofExpression) expressionNode()       {}
func (se *SizeofExpression) TokenLiteral() string  { return se.Token.Lexeme }
func (se *SizeofExpression) GetToken() token.Token { return se.Token }

// LambdaExpression represents an anonymous function.
type LambdaExpression struct {
	Token  token.Token // the introducer token
	Params []*Parameter
	Body   *CompoundStatement
}

func (le *LambdaExpression) expressionNode()       {}
func (le *LambdaExpression) TokenLiteral() string  { return le.Token.Lexeme }
func (le *LambdaExpression) GetToken() token.Token { return le.Token }

// TupleExpression represents a tuple display, e.g. (a, b, c).
type TupleExpression struct {
	Token token.Token // the '(' token
	Elems []Expression
}

func (te *TupleExpression) expressionNode()       {}
func (te *TupleExpression) TokenLiteral() string  { return te.Token.Lexeme }
func (te *TupleExpression) GetToken() token.Token { return te.Token }

// ListExpression represents a list or initializer list, e.g. [1, 2] or
// {1, 2}.
type ListExpression struct {
	Token token.Token // the opening bracket token
	Elems []Expression
}

func (le *ListExpression) expressionNode()       {}
func (le *ListExpression) TokenLiteral() string  { return le.Token.Lexeme }
func (le *ListExpression) GetToken() token.Token { return le.Token }

// StmtExpression represents a GNU statement expression, e.g. ({ s1; s2; }).
// This is one of the cross-family edges: an expression that embeds
// statements.
type StmtExpression struct {
	Token token.Token // the '(' token
	Body  *CompoundStatement
}

func (se *StmtExpression) expressionNode()       {}
func (se *StmtExpression) TokenLiteral() string  { return se.Token.Lexeme }
func (se *StmtExpression) GetToken() token.Token { return se.Token }

// TodoExpression is the expression escape hatch: a construct that was
// recognized but not modeled. Recovered children stay ordinary nodes and are
// still traversed.
type TodoExpression struct {
	Tag CategoryTag
	Sub []Any
}

func (te *TodoExpression) expressionNode()       {}
func (te *TodoExpression) TokenLiteral() string  { return te.Tag.Token.Lexeme }
func (te *TodoExpression) GetToken() token.Token { return te.Tag.Token }

var _ = []Expression{
	(*Identifier)(nil), (*NameExpression)(nil),
	(*IntConstant)(nil), (*FloatConstant)(nil), (*CharConstant)(nil),
	(*StringConstant)(nil), (*BoolConstant)(nil), (*NullConstant)(nil),
	(*ParenExpression)(nil), (*CallExpression)(nil), (*BinaryExpression)(nil),
	(*UnaryExpression)(nil), (*PostfixExpression)(nil), (*AssignExpression)(nil),
	(*CondExpression)(nil), (*SequenceExpression)(nil), (*CastExpression)(nil),
	(*IndexExpression)(nil), (*FieldExpression)(nil), (*SizeofExpression)(nil),
	(*LambdaExpression)(nil), (*TupleExpression)(nil), (*ListExpression)(nil),
	(*StmtExpression)(nil), (*TodoExpression)(nil),
}

var _ = []Constant{
	(*IntConstant)(nil), (*FloatConstant)(nil), (*CharConstant)(nil),
	(*StringConstant)(nil), (*BoolConstant)(nil), (*NullConstant)(nil),
}
