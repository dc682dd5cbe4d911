package ast

import (
	"strings"

	"github.com/funvibe/syntree/internal/token"
)

// Name is a possibly-qualified reference: an optional leading global-scope
// marker, qualifier steps read outer to inner, and a terminal id.
// E.g. ::std::vector<int>::size has a global marker, two qualifiers and an
// IdentID terminal.
type Name struct {
	Global     *token.Token // the leading '::' token, nil when absent
	Qualifiers []Qualifier
	ID         NameID
}

func (n *Name) TokenLiteral() string { return n.GetToken().Lexeme }
func (n *Name) GetToken() token.Token {
	if n == nil {
		return token.Token{}
	}
	if n.Global != nil {
		return *n.Global
	}
	if len(n.Qualifiers) > 0 {
		return n.Qualifiers[0].GetToken()
	}
	if n.ID != nil {
		return n.ID.GetToken()
	}
	return token.Token{}
}

// String renders the name for diagnostics, e.g. "a::b<...>::~c".
// It is not source reconstruction: template arguments are elided.
func (n *Name) String() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	if n.Global != nil {
		b.WriteString("::")
	}
	for _, q := range n.Qualifiers {
		switch q := q.(type) {
		case *ClassQualifier:
			b.WriteString(q.Name)
		case *TemplateQualifier:
			b.WriteString(q.Name)
			b.WriteString("<...>")
		}
		b.WriteString("::")
	}
	switch id := n.ID.(type) {
	case *IdentID:
		b.WriteString(id.Name)
	case *TemplateID:
		b.WriteString(id.Name)
		b.WriteString("<...>")
	case *DestructorID:
		b.WriteString("~")
		b.WriteString(id.Name)
	case *OperatorID:
		b.WriteString("operator")
		b.WriteString(id.Op)
	case *ConverterID:
		b.WriteString("operator(type)")
	}
	return b.String()
}

// ClassName is a Name whose terminal is an IdentID or TemplateID and whose
// qualifier steps name classes or namespaces. Go aliases cannot carry that
// restriction structurally, so positions typed ClassName rely on the
// convention; IsClassName checks it.
type ClassName = Name

// IdentName is a Name that is a plain unqualified identifier. Same
// convention as ClassName; IsIdentName checks it.
type IdentName = Name

// IsClassName reports whether the terminal is one a class name permits.
func IsClassName(n *Name) bool {
	if n == nil {
		return false
	}
	switch n.ID.(type) {
	case *IdentID, *TemplateID:
		return true
	}
	return false
}

// IsIdentName reports whether n is a bare unqualified identifier.
func IsIdentName(n *Name) bool {
	if n == nil || n.Global != nil || len(n.Qualifiers) > 0 {
		return false
	}
	_, ok := n.ID.(*IdentID)
	return ok
}

// Qualifier is one qualification step of a Name.
type Qualifier interface {
	GetToken() token.Token
	qualifierNode()
}

// ClassQualifier is a plain class or namespace step, e.g. the "std" in
// std::vector.
type ClassQualifier struct {
	Token token.Token // the name token
	Name  string
}

func (q *ClassQualifier) qualifierNode() {}
func (q *ClassQualifier) GetToken() token.Token {
	if q == nil {
		return token.Token{}
	}
	return q.Token
}

// TemplateQualifier is a template-instantiated step, e.g. the "vector<int>"
// in vector<int>::iterator.
type TemplateQualifier struct {
	Token token.Token // the name token
	Name  string
	Args  []TemplateArg
}

func (q *TemplateQualifier) qualifierNode() {}
func (q *TemplateQualifier) GetToken() token.Token {
	if q == nil {
		return token.Token{}
	}
	return q.Token
}

// NameID is the terminal of a Name.
type NameID interface {
	GetToken() token.Token
	nameIDNode()
}

// IdentID is a plain identifier terminal.
type IdentID struct {
	Token token.Token
	Name  string
}

func (id *IdentID) nameIDNode() {}
func (id *IdentID) GetToken() token.Token {
	if id == nil {
		return token.Token{}
	}
	return id.Token
}

// TemplateID is a template-id terminal, e.g. swap<T>.
type TemplateID struct {
	Token token.Token // the name token
	Name  string
	Args  []TemplateArg
}

func (id *TemplateID) nameIDNode() {}
func (id *TemplateID) GetToken() token.Token {
	if id == nil {
		return token.Token{}
	}
	return id.Token
}

// DestructorID is a destructor terminal, e.g. ~Widget.
type DestructorID struct {
	Token   token.Token // the '~' token
	Name    string
	NameTok token.Token
}

func (id *DestructorID) nameIDNode() {}
func (id *DestructorID) GetToken() token.Token {
	if id == nil {
		return token.Token{}
	}
	return id.Token
}

// OperatorID is an overloaded-operator terminal, e.g. operator+.
type OperatorID struct {
	Token token.Token // the 'operator' keyword token
	Op    string
	OpTok token.Token
}

func (id *OperatorID) nameIDNode() {}
func (id *OperatorID) GetToken() token.Token {
	if id == nil {
		return token.Token{}
	}
	return id.Token
}

// ConverterID is a conversion-operator terminal, e.g. operator bool.
type ConverterID struct {
	Token token.Token // the 'operator' keyword token
	To    Type
}

func (id *ConverterID) nameIDNode() {}
func (id *ConverterID) GetToken() token.Token {
	if id == nil {
		return token.Token{}
	}
	return id.Token
}

// TemplateArg is one template argument: a type or an expression.
type TemplateArg interface {
	GetToken() token.Token
	templateArgNode()
}

// TypeArg is a template argument that is a type.
type TypeArg struct {
	T Type
}

func (a *TypeArg) templateArgNode() {}
func (a *TypeArg) GetToken() token.Token {
	if a == nil || a.T == nil {
		return token.Token{}
	}
	return a.T.GetToken()
}

// ExprArg is a template argument that is an expression.
type ExprArg struct {
	E Expression
}

func (a *ExprArg) templateArgNode() {}
func (a *ExprArg) GetToken() token.Token {
	if a == nil || a.E == nil {
		return token.Token{}
	}
	return a.E.GetToken()
}

// NameOf wraps a bare identifier as an unqualified Name.
func NameOf(id *Identifier) *Name {
	if id == nil {
		return nil
	}
	return &Name{ID: &IdentID{Token: id.Token, Name: id.Value}}
}

// ExprOf wraps a name as an expression. A plain unqualified name becomes an
// Identifier leaf (with a fresh resolution slot); anything else becomes a
// NameExpression.
func ExprOf(n *Name) Expression {
	if n == nil {
		return nil
	}
	if id, ok := n.ID.(*IdentID); ok && IsIdentName(n) {
		return &Identifier{Token: id.Token, Value: id.Name}
	}
	return &NameExpression{Token: n.GetToken(), Name: n}
}

// ArgOf wraps an expression as a positional call argument.
func ArgOf(e Expression) Argument {
	if e == nil {
		return nil
	}
	return &ExprArgument{E: e}
}
