// Package mutator applies random in-place mutations to a lifted program.
// Mutations keep the tree structurally sound: value and operator changes
// keep the carrying token's lexeme in step, and clearing a field only ever
// clears one that is optional. A walk after any number of mutations must
// behave exactly like a walk over a fresh lift.
package mutator

import (
	"math/rand"
	"strconv"

	"github.com/funvibe/syntree/internal/ast"
)

// ASTMutator applies random mutations to a program.
type ASTMutator struct {
	rnd *rand.Rand
}

// NewASTMutator creates a new ASTMutator with the given seed.
func NewASTMutator(seed int64) *ASTMutator {
	return &ASTMutator{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Mutate applies one random mutation to the program in place. It reports
// false when the program offers nothing to mutate.
func (m *ASTMutator) Mutate(prog *ast.Program) bool {
	candidates := m.collect(prog)
	if len(candidates) == 0 {
		return false
	}
	candidates[m.rnd.Intn(len(candidates))]()
	return true
}

// MutateN applies up to n mutations and reports how many were applied.
func (m *ASTMutator) MutateN(prog *ast.Program, n int) int {
	for applied := 0; applied < n; applied++ {
		if !m.Mutate(prog) {
			return applied
		}
	}
	return n
}

// collect walks the program once and gathers every applicable mutation as a
// closure. Collecting before choosing keeps the choice uniform over the
// whole tree instead of biased toward early declarations.
func (m *ASTMutator) collect(prog *ast.Program) []func() {
	var candidates []func()
	add := func(f func()) { candidates = append(candidates, f) }

	w := ast.NewWalker(ast.Hooks{
		Expr: func(k func(ast.Expression), e ast.Expression) {
			switch n := e.(type) {
			case *ast.BinaryExpression:
				add(func() { m.flipBinaryOp(n) })
			case *ast.UnaryExpression:
				add(func() { m.flipUnaryOp(n) })
			case *ast.IntConstant:
				add(func() {
					delta := m.rnd.Int63n(20) - 10
					if delta >= 0 {
						delta++
					}
					n.Value += delta
					n.Token.Lexeme = strconv.FormatInt(n.Value, 10)
				})
			case *ast.BoolConstant:
				add(func() {
					n.Value = !n.Value
					n.Token.Lexeme = strconv.FormatBool(n.Value)
				})
			case *ast.Identifier:
				add(func() {
					n.Value = n.Value + "_m"
					n.Token.Lexeme = n.Value
				})
			case *ast.StringConstant:
				if len(n.Value) > 0 {
					add(func() {
						n.Value = n.Value[1:]
						n.Token.Lexeme = n.Value
					})
				}
			}
			k(e)
		},
		Stmt: func(k func(ast.Statement), s ast.Statement) {
			switch n := s.(type) {
			case *ast.IfStatement:
				if n.Else != nil {
					add(func() { n.Else = nil })
				}
			case *ast.TryStatement:
				if n.Finally != nil {
					add(func() { n.Finally = nil })
				}
			case *ast.ForStatement:
				if n.Post != nil {
					add(func() { n.Post = nil })
				}
			}
			k(s)
		},
		Declarator: func(k func(*ast.Declarator), d *ast.Declarator) {
			if d.Init != nil {
				add(func() { d.Init = nil })
			}
			k(d)
		},
		Param: func(k func(*ast.Parameter), p *ast.Parameter) {
			if p.Default != nil {
				add(func() { p.Default = nil })
			}
			k(p)
		},
		Decl: func(k func(ast.Declaration), d ast.Declaration) {
			if n, ok := d.(*ast.FunctionDefinition); ok && n.Body != nil {
				add(func() { n.Body = nil })
			}
			k(d)
		},
	})
	w.WalkProgram(prog)
	return candidates
}

// binaryFlips pairs each operator with a same-arity replacement.
var binaryFlips = map[ast.BinaryOp]ast.BinaryOp{
	ast.Add: ast.Sub, ast.Sub: ast.Add,
	ast.Mul: ast.Div, ast.Div: ast.Mul,
	ast.Eq: ast.Ne, ast.Ne: ast.Eq,
	ast.Lt: ast.Ge, ast.Ge: ast.Lt,
	ast.Gt: ast.Le, ast.Le: ast.Gt,
	ast.LogAnd: ast.LogOr, ast.LogOr: ast.LogAnd,
	ast.BitAnd: ast.BitOr, ast.BitOr: ast.BitAnd,
	ast.Shl: ast.Shr, ast.Shr: ast.Shl,
}

func (m *ASTMutator) flipBinaryOp(e *ast.BinaryExpression) {
	next, ok := binaryFlips[e.Op]
	if !ok {
		next = ast.Add
	}
	e.Op = next
	e.Token.Lexeme = next.String()
}

var unaryFlips = map[ast.UnaryOp]ast.UnaryOp{
	ast.UnaryPlus: ast.UnaryMinus, ast.UnaryMinus: ast.UnaryPlus,
	ast.PreInc: ast.PreDec, ast.PreDec: ast.PreInc,
	ast.Deref: ast.AddrOf, ast.AddrOf: ast.Deref,
}

func (m *ASTMutator) flipUnaryOp(e *ast.UnaryExpression) {
	next, ok := unaryFlips[e.Op]
	if !ok {
		next = ast.Not
	}
	e.Op = next
	e.Token.Lexeme = next.String()
}
