package ast

import "github.com/funvibe/syntree/internal/token"

// AnyKind discriminates Any.
type AnyKind uint8

const (
	ExprAny AnyKind = iota
	StmtAny
	StmtsAny
	ToplevelAny
	ProgramAny
	DeclaratorAny
	TypeAny
	NameAny
	ConstantAny
	ArgumentAny
	ParameterAny
	BodyAny
	TokenAny
	TokensAny
)

var anyKindNames = map[AnyKind]string{
	ExprAny: "expr", StmtAny: "stmt", StmtsAny: "stmts",
	ToplevelAny: "toplevel", ProgramAny: "program", DeclaratorAny: "declarator",
	TypeAny: "type", NameAny: "name", ConstantAny: "constant",
	ArgumentAny: "argument", ParameterAny: "parameter", BodyAny: "body",
	TokenAny: "token", TokensAny: "tokens",
}

func (k AnyKind) String() string { return anyKindNames[k] }

// Any carries exactly one value of one of the tree's entry-point kinds, so
// heterogeneous collections (Todo children, tool results) stay well typed.
// The set of kinds is closed; only the field selected by Kind is set.
type Any struct {
	Kind       AnyKind
	Expr       Expression
	Stmt       Statement
	Stmts      []Statement
	Toplevel   *Toplevel
	Program    *Program
	Declarator *Declarator
	Type       Type
	Name       *Name
	Constant   Constant
	Argument   Argument
	Parameter  *Parameter
	Body       *Body
	Token      *token.Token
	Tokens     []token.Token
}

func AnyExpr(e Expression) Any         { return Any{Kind: ExprAny, Expr: e} }
func AnyStmt(s Statement) Any          { return Any{Kind: StmtAny, Stmt: s} }
func AnyStmts(ss []Statement) Any      { return Any{Kind: StmtsAny, Stmts: ss} }
func AnyToplevel(t *Toplevel) Any      { return Any{Kind: ToplevelAny, Toplevel: t} }
func AnyProgram(p *Program) Any        { return Any{Kind: ProgramAny, Program: p} }
func AnyDeclarator(d *Declarator) Any  { return Any{Kind: DeclaratorAny, Declarator: d} }
func AnyType(t Type) Any               { return Any{Kind: TypeAny, Type: t} }
func AnyName(n *Name) Any              { return Any{Kind: NameAny, Name: n} }
func AnyConstant(c Constant) Any       { return Any{Kind: ConstantAny, Constant: c} }
func AnyArgument(a Argument) Any       { return Any{Kind: ArgumentAny, Argument: a} }
func AnyParameter(p *Parameter) Any    { return Any{Kind: ParameterAny, Parameter: p} }
func AnyBody(b *Body) Any              { return Any{Kind: BodyAny, Body: b} }
func AnyToken(t token.Token) Any       { return Any{Kind: TokenAny, Token: &t} }
func AnyTokens(ts []token.Token) Any   { return Any{Kind: TokensAny, Tokens: ts} }

// GetToken reports the primary token of whatever the Any carries.
func (a Any) GetToken() token.Token {
	switch a.Kind {
	case ExprAny:
		if a.Expr != nil {
			return a.Expr.GetToken()
		}
	case StmtAny:
		if a.Stmt != nil {
			return a.Stmt.GetToken()
		}
	case StmtsAny:
		for _, s := range a.Stmts {
			if s != nil {
				return s.GetToken()
			}
		}
	case ToplevelAny:
		if a.Toplevel != nil {
			return a.Toplevel.GetToken()
		}
	case ProgramAny:
		return a.Program.GetToken()
	case DeclaratorAny:
		return a.Declarator.GetToken()
	case TypeAny:
		if a.Type != nil {
			return a.Type.GetToken()
		}
	case NameAny:
		return a.Name.GetToken()
	case ConstantAny:
		if a.Constant != nil {
			return a.Constant.GetToken()
		}
	case ArgumentAny:
		if a.Argument != nil {
			return a.Argument.GetToken()
		}
	case ParameterAny:
		return a.Parameter.GetToken()
	case BodyAny:
		return a.Body.GetToken()
	case TokenAny:
		if a.Token != nil {
			return *a.Token
		}
	case TokensAny:
		if len(a.Tokens) > 0 {
			return a.Tokens[0]
		}
	}
	return token.Token{}
}
