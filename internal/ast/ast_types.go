package ast

import "github.com/funvibe/syntree/internal/token"

// BuiltinKind enumerates the primitive types.
type BuiltinKind uint8

const (
	Void BuiltinKind = iota
	Bool
	Char
	Short
	Int
	Long
	LongLong
	Float
	Double
)

var builtinNames = map[BuiltinKind]string{
	Void: "void", Bool: "bool", Char: "char", Short: "short", Int: "int",
	Long: "long", LongLong: "long long", Float: "float", Double: "double",
}

func (k BuiltinKind) String() string { return builtinNames[k] }

// BuiltinKindFor maps a primitive type name to its kind.
func BuiltinKindFor(name string) (BuiltinKind, bool) {
	for k, n := range builtinNames {
		if n == name {
			return k, true
		}
	}
	return Void, false
}

// BuiltinType represents a primitive type, e.g. int or unsigned char.
type BuiltinType struct {
	Token    token.Token // the keyword token
	Kind     BuiltinKind
	Unsigned bool
}

func (bt *BuiltinType) typeNode()             {}
func (bt *BuiltinType) TokenLiteral() string  { return bt.Token.Lexeme }
func (bt *BuiltinType) GetToken() token.Token { return bt.Token }

// NamedType represents a reference to a named type, e.g. size_t or
// std::vector<int>.
type NamedType struct {
	Token token.Token // first token of the name
	Name  *ClassName
}

func (nt *NamedType) typeNode()             {}
func (nt *NamedType) TokenLiteral() string  { return nt.Token.Lexeme }
func (nt *NamedType) GetToken() token.Token { return nt.Token }

// PointerType represents *T.
type PointerType struct {
	Token token.Token // the '*' token
	Elem  Type
}

func (pt *PointerType) typeNode()             {}
func (pt *PointerType) TokenLiteral() string  { return pt.Token.Lexeme }
func (pt *PointerType) GetToken() token.Token { return pt.Token }

// ReferenceType represents T&.
type ReferenceType struct {
	Token token.Token // the '&' token
	Elem  Type
}

func (rt *ReferenceType) typeNode()             {}
func (rt *ReferenceType) TokenLiteral() string  { return rt.Token.Lexeme }
func (rt *ReferenceType) GetToken() token.Token { return rt.Token }

// ArrayType represents T[n]. A nil Size is an incomplete array type.
type ArrayType struct {
	Token token.Token // the '[' token
	Elem  Type
	Size  Expression
}

func (at *ArrayType) typeNode()             {}
func (at *ArrayType) TokenLiteral() string  { return at.Token.Lexeme }
func (at *ArrayType) GetToken() token.Token { return at.Token }

// FunctionType represents a function signature.
type FunctionType struct {
	Token    token.Token // the '(' of the parameter list
	Ret      Type
	Params   []*Parameter
	Variadic bool
}

func (ft *FunctionType) typeNode()            {}
func (ft *FunctionType) TokenLiteral() string { return ft.Token.Lexeme }
func (ft *FunctionType) GetToken() token.Token {
	if ft == nil {
		return token.Token{}
	}
	return ft.Token
}

// Parameter is one function parameter. A nil Name is an abstract parameter
// as in a prototype; Default is the optional default value.
type Parameter struct {
	Token   token.Token // first token of the parameter
	Name    *Identifier
	T       Type
	Default Expression
}

func (p *Parameter) TokenLiteral() string { return p.GetToken().Lexeme }
func (p *Parameter) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}

// TypeQual enumerates type qualifiers.
type TypeQual uint8

const (
	ConstQual TypeQual = iota
	VolatileQual
	RestrictQual
)

var qualNames = map[TypeQual]string{
	ConstQual: "const", VolatileQual: "volatile", RestrictQual: "restrict",
}

func (q TypeQual) String() string { return qualNames[q] }

// TypeQualFor maps a qualifier keyword to its TypeQual.
func TypeQualFor(name string) (TypeQual, bool) {
	for q, n := range qualNames {
		if n == name {
			return q, true
		}
	}
	return ConstQual, false
}

// QualifiedType represents const T and friends.
type QualifiedType struct {
	Token token.Token // the qualifier keyword token
	Qual  TypeQual
	Elem  Type
}

func (qt *QualifiedType) typeNode()             {}
func (qt *QualifiedType) TokenLiteral() string  { return qt.Token.Lexeme }
func (qt *QualifiedType) GetToken() token.Token { return qt.Token }

// EnumType represents an enum definition in type position. A nil Name is an
// anonymous enum.
type EnumType struct {
	Token token.Token // the 'enum' token
	Name  *Identifier
	Items []*EnumItem
}

func (et *EnumType) typeNode()             {}
func (et *EnumType) TokenLiteral() string  { return et.Token.Lexeme }
func (et *EnumType) GetToken() token.Token { return et.Token }

// EnumItem is one enumerator, with an optional explicit value.
type EnumItem struct {
	Name  *Identifier
	Value Expression
}

func (ei *EnumItem) TokenLiteral() string { return ei.GetToken().Lexeme }
func (ei *EnumItem) GetToken() token.Token {
	if ei == nil {
		return token.Token{}
	}
	return ei.Name.GetToken()
}

// ClassKind discriminates class, struct and union definitions.
type ClassKind uint8

const (
	Class ClassKind = iota
	Struct
	Union
)

var classKindNames = map[ClassKind]string{
	Class: "class", Struct: "struct", Union: "union",
}

func (k ClassKind) String() string { return classKindNames[k] }

// ClassType represents a class, struct or union definition in type position.
// Members is a declaration sequence, so method bodies nest statements under
// a type node; this is the deepest of the cross-family edges.
type ClassType struct {
	Token   token.Token // the 'class'/'struct'/'union' token
	Kind    ClassKind
	Name    *ClassName // nil for anonymous definitions
	Bases   []*ClassName
	Members []DeclItem
}

func (ct *ClassType) typeNode()             {}
func (ct *ClassType) TokenLiteral() string  { return ct.Token.Lexeme }
func (ct *ClassType) GetToken() token.Token { return ct.Token }

// TypeOfType represents GNU typeof(expr).
type TypeOfType struct {
	Token token.Token // the 'typeof' token
	Expr  Expression
}

func (tt *TypeOfType) typeNode()             {}
func (tt *TypeOfType) TokenLiteral() string  { return tt.Token.Lexeme }
func (tt *TypeOfType) GetToken() token.Token { return tt.Token }

// TodoType is the type escape hatch. Recovered children stay ordinary nodes
// and are still traversed.
type TodoType struct {
	Tag CategoryTag
	Sub []Any
}

func (tt *TodoType) typeNode()             {}
func (tt *TodoType) TokenLiteral() string  { return tt.Tag.Token.Lexeme }
func (tt *TodoType) GetToken() token.Token { return tt.Tag.Token }

var _ = []Type{
	(*BuiltinType)(nil), (*NamedType)(nil), (*PointerType)(nil),
	(*ReferenceType)(nil), (*ArrayType)(nil), (*FunctionType)(nil),
	(*QualifiedType)(nil), (*EnumType)(nil), (*ClassType)(nil),
	(*TypeOfType)(nil), (*TodoType)(nil),
}
