package ast

import "github.com/funvibe/syntree/internal/token"

// StorageKind enumerates storage-class specifiers.
type StorageKind uint8

const (
	StorageNone StorageKind = iota
	StorageStatic
	StorageExtern
	StorageRegister
)

var storageNames = map[StorageKind]string{
	StorageNone: "", StorageStatic: "static", StorageExtern: "extern",
	StorageRegister: "register",
}

func (k StorageKind) String() string { return storageNames[k] }

// StorageKindFor maps a storage keyword to its kind.
func StorageKindFor(name string) (StorageKind, bool) {
	switch name {
	case "static":
		return StorageStatic, true
	case "extern":
		return StorageExtern, true
	case "register":
		return StorageRegister, true
	}
	return StorageNone, false
}

// Declarator is one declared entity: a name, its type and an optional
// initializer. It is the declaration fragment that VarDeclaration groups,
// int a = 1, *b; has two of them.
type Declarator struct {
	Name *Identifier
	T    Type
	Init Expression
}

func (d *Declarator) TokenLiteral() string { return d.GetToken().Lexeme }
func (d *Declarator) GetToken() token.Token {
	if d == nil {
		return token.Token{}
	}
	return d.Name.GetToken()
}

// VarDeclaration represents a variable declaration with one or more
// declarators.
type VarDeclaration struct {
	Token   token.Token // first token of the declaration
	Storage StorageKind
	Decls   []*Declarator
}

func (vd *VarDeclaration) declarationNode()      {}
func (vd *VarDeclaration) TokenLiteral() string  { return vd.Token.Lexeme }
func (vd *VarDeclaration) GetToken() token.Token { return vd.Token }

// FunctionDefinition represents a function with a body. The name is a full
// Name: out-of-class definitions like void A::f() {} are qualified.
type FunctionDefinition struct {
	Token   token.Token // first token of the definition
	Storage StorageKind
	Name    *Name
	Sig     *FunctionType
	Body    *CompoundStatement
}

func (fd *FunctionDefinition) declarationNode()      {}
func (fd *FunctionDefinition) TokenLiteral() string  { return fd.Token.Lexeme }
func (fd *FunctionDefinition) GetToken() token.Token { return fd.Token }

// TypedefDeclaration represents typedef T name.
type TypedefDeclaration struct {
	Token token.Token // the 'typedef' token
	Name  *Identifier
	T     Type
}

func (td *TypedefDeclaration) declarationNode()      {}
func (td *TypedefDeclaration) TokenLiteral() string  { return td.Token.Lexeme }
func (td *TypedefDeclaration) GetToken() token.Token { return td.Token }

// TypeDeclaration is a type definition in declaration position, e.g.
// struct S { ... }; at top level.
type TypeDeclaration struct {
	Token token.Token // first token of the type
	T     Type
}

func (td *TypeDeclaration) declarationNode()      {}
func (td *TypeDeclaration) TokenLiteral() string  { return td.Token.Lexeme }
func (td *TypeDeclaration) GetToken() token.Token { return td.Token }

// NamespaceDeclaration represents namespace N { ... }. A nil Name is an
// anonymous namespace.
type NamespaceDeclaration struct {
	Token token.Token // the 'namespace' token
	Name  *Identifier
	Body  []DeclItem
}

func (nd *NamespaceDeclaration) declarationNode()      {}
func (nd *NamespaceDeclaration) TokenLiteral() string  { return nd.Token.Lexeme }
func (nd *NamespaceDeclaration) GetToken() token.Token { return nd.Token }

// TemplateParam is one template parameter. A nil T is a type parameter
// (typename T); otherwise it is a non-type parameter of that type (int N).
type TemplateParam struct {
	Token token.Token // first token of the parameter
	Name  *Identifier
	T     Type
}

func (tp *TemplateParam) TokenLiteral() string { return tp.Token.Lexeme }
func (tp *TemplateParam) GetToken() token.Token {
	if tp == nil {
		return token.Token{}
	}
	return tp.Token
}

// TemplateDeclaration represents template<...> decl.
type TemplateDeclaration struct {
	Token  token.Token // the 'template' token
	Params []*TemplateParam
	Decl   Declaration
}

func (td *TemplateDeclaration) declarationNode()      {}
func (td *TemplateDeclaration) TokenLiteral() string  { return td.Token.Lexeme }
func (td *TemplateDeclaration) GetToken() token.Token { return td.Token }

// UsingDeclaration represents using N::x or a using-directive.
type UsingDeclaration struct {
	Token token.Token // the 'using' token
	Name  *Name
}

func (ud *UsingDeclaration) declarationNode()      {}
func (ud *UsingDeclaration) TokenLiteral() string  { return ud.Token.Lexeme }
func (ud *UsingDeclaration) GetToken() token.Token { return ud.Token }

// ImportDeclaration represents a module import: import a.b.c as m, or
// from a.b import x, y, or from a.b import *.
type ImportDeclaration struct {
	Token   token.Token // the 'import' or 'from' token
	Path    []*Identifier
	Alias   *Identifier   // nil when not aliased
	Symbols []*Identifier // selective import; empty otherwise
	All     bool          // from ... import *
}

func (id *ImportDeclaration) declarationNode()      {}
func (id *ImportDeclaration) TokenLiteral() string  { return id.Token.Lexeme }
func (id *ImportDeclaration) GetToken() token.Token { return id.Token }

// ModulePath renders the dotted path for diagnostics and indexing.
func (id *ImportDeclaration) ModulePath() string {
	if id == nil {
		return ""
	}
	path := ""
	for i, part := range id.Path {
		if i > 0 {
			path += "."
		}
		path += part.Value
	}
	return path
}

// TodoDeclaration is the declaration escape hatch. Recovered children stay
// ordinary nodes and are still traversed.
type TodoDeclaration struct {
	Tag CategoryTag
	Sub []Any
}

func (td *TodoDeclaration) declarationNode()      {}
func (td *TodoDeclaration) TokenLiteral() string  { return td.Tag.Token.Lexeme }
func (td *TodoDeclaration) GetToken() token.Token { return td.Tag.Token }

var _ = []Declaration{
	(*VarDeclaration)(nil), (*FunctionDefinition)(nil),
	(*TypedefDeclaration)(nil), (*TypeDeclaration)(nil),
	(*NamespaceDeclaration)(nil), (*TemplateDeclaration)(nil),
	(*UsingDeclaration)(nil), (*ImportDeclaration)(nil),
	(*TodoDeclaration)(nil),
}
