package ast

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/syntree/internal/token"
)

func identTok(name string) token.Token {
	return token.New(token.IDENT, name, token.Position{Line: 1, Column: 1})
}

func punct(lex string) token.Token {
	return token.New(token.PUNCT, lex, token.Position{Line: 1, Column: 1})
}

func id(name string) *Identifier {
	return &Identifier{Token: identTok(name), Value: name}
}

func intConst(v int64) *IntConstant {
	return &IntConstant{Token: token.New(token.INT, fmt.Sprint(v), token.Position{Line: 1, Column: 1}), Value: v}
}

// countingHooks installs every slot: each increments counts[family] and then
// continues with the default traversal.
func countingHooks(counts map[string]int) Hooks {
	return Hooks{
		Expr:       func(k func(Expression), e Expression) { counts["expr"]++; k(e) },
		Stmt:       func(k func(Statement), s Statement) { counts["stmt"]++; k(s) },
		Type:       func(k func(Type), t Type) { counts["type"]++; k(t) },
		Decl:       func(k func(Declaration), d Declaration) { counts["decl"]++; k(d) },
		Declarator: func(k func(*Declarator), d *Declarator) { counts["declarator"]++; k(d) },
		Name:       func(k func(*Name), n *Name) { counts["name"]++; k(n) },
		Param:      func(k func(*Parameter), p *Parameter) { counts["param"]++; k(p) },
		Arg:        func(k func(Argument), a Argument) { counts["arg"]++; k(a) },
		Directive:  func(k func(Directive), d Directive) { counts["directive"]++; k(d) },
		Token:      func(k func(token.Token), t token.Token) { counts["token"]++; k(t) },
	}
}

func total(counts map[string]int) int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}

// buildUnit builds one translation unit that touches every family:
//
//	#include <stdio.h>
//	int x = 1;
//	void f(int a) { a + b; }
//	#if FOO
//	struct S { };
//	#endif
func buildUnit() *Program {
	varDecl := &VarDeclaration{
		Token: identTok("int"),
		Decls: []*Declarator{{
			Name: id("x"),
			T:    &BuiltinType{Token: identTok("int"), Kind: Int},
			Init: intConst(1),
		}},
	}
	fnDecl := &FunctionDefinition{
		Token: identTok("void"),
		Name:  NameOf(id("f")),
		Sig: &FunctionType{
			Token: punct("("),
			Ret:   &BuiltinType{Token: identTok("void"), Kind: Void},
			Params: []*Parameter{{
				Token: identTok("int"),
				Name:  id("a"),
				T:     &BuiltinType{Token: identTok("int"), Kind: Int},
			}},
		},
		Body: &CompoundStatement{
			Lbrace: punct("{"),
			Items: []StmtItem{Elem[Statement](&ExprStatement{
				Token: identTok("a"),
				Expr: &BinaryExpression{
					Token: punct("+"),
					Op:    Add,
					Left:  id("a"),
					Right: id("b"),
				},
			})},
			Rbrace: punct("}"),
		},
	}
	cond := &Conditional[Declaration]{
		Token: punct("#if"),
		Branches: []Branch[Declaration]{
			{
				Token: punct("#if"),
				Cond:  []token.Token{identTok("FOO"), punct("!")},
				Items: []DeclItem{Elem[Declaration](&TypeDeclaration{
					Token: identTok("struct"),
					T:     &ClassType{Token: identTok("struct"), Kind: Struct, Name: NameOf(id("S"))},
				})},
			},
			{Token: punct("#else")},
		},
	}
	return &Program{
		File: "unit.c",
		Items: []DeclItem{
			DirItem[Declaration](&IncludeDirective{Token: punct("#include"), Path: "stdio.h", System: true}),
			Elem[Declaration](varDecl),
			Elem[Declaration](fnDecl),
			CondItem[Declaration](cond),
		},
	}
}

func TestWalkCountsEveryNodeOnce(t *testing.T) {
	counts := map[string]int{}
	Walk(countingHooks(counts), AnyProgram(buildUnit()))

	// include(1)
	assert.Equal(t, 1, counts["directive"])
	// int x = 1 → var; void f → fndef; struct S → typedecl
	assert.Equal(t, 3, counts["decl"])
	// x = 1 declarator
	assert.Equal(t, 1, counts["declarator"])
	// f, S (class name is a Name)
	assert.Equal(t, 2, counts["name"])
	// int (x), fn sig, void, int (a), struct S
	assert.Equal(t, 5, counts["type"])
	// parameter a
	assert.Equal(t, 1, counts["param"])
	// body block + expression statement
	assert.Equal(t, 2, counts["stmt"])
	// binary, a, b, and the constant 1
	assert.Equal(t, 4, counts["expr"])
	// '+' plus the two #if condition tokens
	assert.Equal(t, 3, counts["token"])
	assert.Equal(t, 0, counts["arg"])

	assert.Equal(t, 21, total(counts))
}

func TestWalkIsRepeatable(t *testing.T) {
	unit := buildUnit()
	first := map[string]int{}
	second := map[string]int{}
	w1 := NewWalker(countingHooks(first))
	w1.WalkProgram(unit)
	w1Again := NewWalker(countingHooks(second))
	w1Again.WalkProgram(unit)
	assert.Equal(t, first, second)
}

func TestDefaultTraversalIsSilent(t *testing.T) {
	// No hooks: the walk visits everything and does nothing, and must not
	// panic on nil children.
	Walk(Hooks{}, AnyProgram(buildUnit()))
	Walk(Hooks{}, AnyProgram(nil))
	Walk(Hooks{}, AnyExpr(nil))
	Walk(Hooks{}, AnyStmt(&IfStatement{Token: identTok("if")}))
}

func TestBinaryVisitOrder(t *testing.T) {
	// a + b: the binary node first, then left child, operator token, right
	// child.
	var seq []string
	h := Hooks{
		Expr: func(k func(Expression), e Expression) {
			seq = append(seq, "expr:"+e.TokenLiteral())
			k(e)
		},
		Token: func(k func(token.Token), tk token.Token) {
			seq = append(seq, "token:"+tk.Lexeme)
			k(tk)
		},
	}
	expr := &BinaryExpression{Token: punct("+"), Op: Add, Left: id("a"), Right: id("b")}
	Walk(h, AnyExpr(expr))
	assert.Equal(t, []string{"expr:+", "expr:a", "token:+", "expr:b"}, seq)
}

func TestIdentifierCountInBinary(t *testing.T) {
	// The a + b law: two identifier visits, three expression visits total,
	// and the operator token is only seen by the Token slot.
	idents, exprs, tokens := 0, 0, 0
	h := Hooks{
		Expr: func(k func(Expression), e Expression) {
			exprs++
			if _, ok := e.(*Identifier); ok {
				idents++
			}
			k(e)
		},
		Token: func(k func(token.Token), tk token.Token) { tokens++; k(tk) },
	}
	expr := &BinaryExpression{Token: punct("+"), Op: Add, Left: id("a"), Right: id("b")}
	Walk(h, AnyExpr(expr))
	assert.Equal(t, 2, idents)
	assert.Equal(t, 3, exprs)
	assert.Equal(t, 1, tokens)
}

func TestPruningSkipsSubtree(t *testing.T) {
	// A hook that does not call k prunes the node's children but nothing
	// else.
	visited := []string{}
	h := Hooks{
		Expr: func(k func(Expression), e Expression) {
			visited = append(visited, e.TokenLiteral())
			if _, ok := e.(*ParenExpression); ok {
				return // prune
			}
			k(e)
		},
	}
	// c + (a + b): pruning the paren hides a, b and the inner binary.
	expr := &BinaryExpression{
		Token: punct("+"),
		Op:    Add,
		Left:  id("c"),
		Right: &ParenExpression{
			Token: punct("("),
			Inner: &BinaryExpression{Token: punct("+"), Op: Add, Left: id("a"), Right: id("b")},
		},
	}
	Walk(h, AnyExpr(expr))
	assert.Equal(t, []string{"+", "c", "("}, visited)
}

func TestPruningStatementKeepsSiblings(t *testing.T) {
	pruned := 0
	exprVisits := 0
	h := Hooks{
		Stmt: func(k func(Statement), s Statement) {
			if _, ok := s.(*IfStatement); ok {
				pruned++
				return
			}
			k(s)
		},
		Expr: func(k func(Expression), e Expression) { exprVisits++; k(e) },
	}
	body := &CompoundStatement{
		Lbrace: punct("{"),
		Items: []StmtItem{
			Elem[Statement](&IfStatement{Token: identTok("if"), Cond: id("cond"), Then: &ExprStatement{Expr: id("x")}}),
			Elem[Statement](&ExprStatement{Token: identTok("y"), Expr: id("y")}),
		},
	}
	Walk(h, AnyBody(body))
	assert.Equal(t, 1, pruned)
	// Only y; the if condition and branch were pruned away.
	assert.Equal(t, 1, exprVisits)
}

func TestCrossFamilyRecursionFiresHooks(t *testing.T) {
	// Entering at a statement still fires Type and Name hooks reached
	// through the declaration under it.
	var names []string
	var types int
	h := Hooks{
		Name: func(k func(*Name), n *Name) { names = append(names, n.String()); k(n) },
		Type: func(k func(Type), typ Type) { types++; k(typ) },
	}
	stmt := &DeclStatement{
		Token: identTok("T"),
		Decl: &VarDeclaration{
			Token: identTok("T"),
			Decls: []*Declarator{{
				Name: id("v"),
				T:    &NamedType{Token: identTok("T"), Name: NameOf(id("T"))},
			}},
		},
	}
	Walk(h, AnyStmt(stmt))
	assert.Equal(t, []string{"T"}, names)
	assert.Equal(t, 1, types)
}

func TestTodoChildrenStillVisited(t *testing.T) {
	// A statement-category Todo wrapping two recovered expressions: the
	// expressions keep their ordinary types and are still traversed.
	exprVisits := 0
	h := Hooks{
		Expr: func(k func(Expression), e Expression) { exprVisits++; k(e) },
	}
	todo := &TodoStatement{
		Tag: CategoryTag{Token: identTok("asm"), Text: "asm"},
		Sub: []Any{AnyExpr(id("a")), AnyExpr(id("b"))},
	}
	Walk(h, AnyStmt(todo))
	assert.Equal(t, 2, exprVisits)
}

func TestTodoExpressionChildren(t *testing.T) {
	counts := map[string]int{}
	todo := &TodoExpression{
		Tag: CategoryTag{Token: identTok("co_await"), Text: "co_await"},
		Sub: []Any{
			AnyExpr(id("x")),
			AnyType(&BuiltinType{Token: identTok("int"), Kind: Int}),
			AnyToken(punct("...")),
		},
	}
	Walk(countingHooks(counts), AnyExpr(todo))
	assert.Equal(t, 2, counts["expr"]) // the todo itself and x
	assert.Equal(t, 1, counts["type"])
	assert.Equal(t, 1, counts["token"])
}

func TestAnyDispatch(t *testing.T) {
	decl := &VarDeclaration{Token: identTok("int"), Decls: []*Declarator{{Name: id("x")}}}
	top := Elem[Declaration](decl)
	param := &Parameter{Token: identTok("int"), Name: id("p"), T: &BuiltinType{Token: identTok("int"), Kind: Int}}

	tests := []struct {
		name string
		any  Any
		want map[string]int
	}{
		{"expr", AnyExpr(id("x")), map[string]int{"expr": 1}},
		{"stmt", AnyStmt(&BreakStatement{Token: identTok("break")}), map[string]int{"stmt": 1}},
		{"stmts", AnyStmts([]Statement{&BreakStatement{}, &ContinueStatement{}}), map[string]int{"stmt": 2}},
		{"toplevel", AnyToplevel(&top), map[string]int{"decl": 1, "declarator": 1}},
		{"declarator", AnyDeclarator(&Declarator{Name: id("d")}), map[string]int{"declarator": 1}},
		{"type", AnyType(&BuiltinType{Token: identTok("int"), Kind: Int}), map[string]int{"type": 1}},
		{"name", AnyName(NameOf(id("n"))), map[string]int{"name": 1}},
		{"constant", AnyConstant(intConst(3)), map[string]int{"expr": 1}},
		{"argument", AnyArgument(ArgOf(id("a"))), map[string]int{"arg": 1, "expr": 1}},
		{"parameter", AnyParameter(param), map[string]int{"param": 1, "type": 1}},
		{"body", AnyBody(&CompoundStatement{Lbrace: punct("{")}), map[string]int{"stmt": 1}},
		{"token", AnyToken(punct(";")), map[string]int{"token": 1}},
		{"tokens", AnyTokens([]token.Token{punct("a"), punct("b")}), map[string]int{"token": 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := map[string]int{}
			Walk(countingHooks(counts), tt.any)
			for family, want := range tt.want {
				assert.Equal(t, want, counts[family], "family %s", family)
			}
			assert.Equal(t, total(tt.want), total(counts))
		})
	}
}

// kindTrace walks the tree and records the dynamic type of every visited
// node, a token-free view of the shape.
func kindTrace(a Any) []string {
	var trace []string
	add := func(n any) { trace = append(trace, strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")) }
	h := Hooks{
		Expr:       func(k func(Expression), e Expression) { add(e); k(e) },
		Stmt:       func(k func(Statement), s Statement) { add(s); k(s) },
		Type:       func(k func(Type), t Type) { add(t); k(t) },
		Decl:       func(k func(Declaration), d Declaration) { add(d); k(d) },
		Declarator: func(k func(*Declarator), d *Declarator) { add(d); k(d) },
		Name:       func(k func(*Name), n *Name) { add(n); k(n) },
		Param:      func(k func(*Parameter), p *Parameter) { add(p); k(p) },
		Arg:        func(k func(Argument), ag Argument) { add(ag); k(ag) },
		Directive:  func(k func(Directive), d Directive) { add(d); k(d) },
	}
	Walk(h, a)
	return trace
}

func TestShapeIgnoresTokens(t *testing.T) {
	// Two trees with the same structure, one with real tokens and one with
	// zero tokens, produce identical shapes: token payloads never decide
	// which nodes exist.
	build := func(withTokens bool) Any {
		tk := func(lex string) token.Token {
			if withTokens {
				return punct(lex)
			}
			return token.Token{}
		}
		expr := &BinaryExpression{
			Token: tk("+"),
			Op:    Add,
			Left:  &Identifier{Token: tk("a"), Value: "a"},
			Right: &CallExpression{
				Token:    tk("("),
				Function: &Identifier{Token: tk("f"), Value: "f"},
				Args:     []Argument{&ExprArgument{E: &Identifier{Token: tk("b"), Value: "b"}}},
			},
		}
		return AnyExpr(expr)
	}
	withTok := kindTrace(build(true))
	require.NotEmpty(t, withTok)
	assert.Equal(t, withTok, kindTrace(build(false)))
}

func TestPassThroughMatchesDefault(t *testing.T) {
	// A hook set where every slot just calls k is indistinguishable from no
	// hooks: same termination, and a second traversal observing both sees
	// the same tree shape.
	unit := buildUnit()
	before := kindTrace(AnyProgram(unit))
	Walk(Hooks{
		Expr: func(k func(Expression), e Expression) { k(e) },
		Stmt: func(k func(Statement), s Statement) { k(s) },
	}, AnyProgram(unit))
	assert.Equal(t, before, kindTrace(AnyProgram(unit)))
}
