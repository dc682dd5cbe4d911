// Package inspect reports on lifted programs without changing them: a node
// census per family and kind, renderers for table and YAML output, and an
// indented kind-tag outline of the tree.
package inspect

import (
	"fmt"
	"strings"

	"github.com/funvibe/syntree/internal/ast"
	"github.com/funvibe/syntree/internal/token"
)

// Summary is the node census of one program.
type Summary struct {
	File         string         `yaml:"file"`
	Declarations int            `yaml:"declarations"`
	Statements   int            `yaml:"statements"`
	Expressions  int            `yaml:"expressions"`
	Types        int            `yaml:"types"`
	Names        int            `yaml:"names"`
	Declarators  int            `yaml:"declarators"`
	Parameters   int            `yaml:"parameters"`
	Arguments    int            `yaml:"arguments"`
	Directives   int            `yaml:"directives"`
	Tokens       int            `yaml:"tokens"`
	Todos        int            `yaml:"todos"`
	NodeKinds    map[string]int `yaml:"node_kinds"`
	Resolutions  map[string]int `yaml:"resolutions,omitempty"`
}

// Add accumulates other into s, for reports spanning several units. File is
// left alone; the caller decides what a merged report is called.
func (s *Summary) Add(other Summary) {
	s.Declarations += other.Declarations
	s.Statements += other.Statements
	s.Expressions += other.Expressions
	s.Types += other.Types
	s.Names += other.Names
	s.Declarators += other.Declarators
	s.Parameters += other.Parameters
	s.Arguments += other.Arguments
	s.Directives += other.Directives
	s.Tokens += other.Tokens
	s.Todos += other.Todos
	for kind, n := range other.NodeKinds {
		if s.NodeKinds == nil {
			s.NodeKinds = map[string]int{}
		}
		s.NodeKinds[kind] += n
	}
	for kind, n := range other.Resolutions {
		if s.Resolutions == nil {
			s.Resolutions = map[string]int{}
		}
		s.Resolutions[kind] += n
	}
}

// Summarize walks the program once and counts what the walk visits.
// Identifier uses additionally tally under their resolution kind, so a
// resolved tree summarizes differently from a fresh one.
func Summarize(prog *ast.Program) Summary {
	s := Summary{
		File:        fileOf(prog),
		NodeKinds:   map[string]int{},
		Resolutions: map[string]int{},
	}
	w := ast.NewWalker(ast.Hooks{
		Expr: func(k func(ast.Expression), e ast.Expression) {
			s.Expressions++
			s.NodeKinds[kindTag(e)]++
			switch n := e.(type) {
			case *ast.Identifier:
				s.Resolutions[n.Resolved.Kind().String()]++
			case *ast.TodoExpression:
				s.Todos++
			}
			k(e)
		},
		Stmt: func(k func(ast.Statement), st ast.Statement) {
			s.Statements++
			s.NodeKinds[kindTag(st)]++
			if _, ok := st.(*ast.TodoStatement); ok {
				s.Todos++
			}
			k(st)
		},
		Type: func(k func(ast.Type), t ast.Type) {
			s.Types++
			s.NodeKinds[kindTag(t)]++
			if _, ok := t.(*ast.TodoType); ok {
				s.Todos++
			}
			k(t)
		},
		Decl: func(k func(ast.Declaration), d ast.Declaration) {
			s.Declarations++
			s.NodeKinds[kindTag(d)]++
			if _, ok := d.(*ast.TodoDeclaration); ok {
				s.Todos++
			}
			k(d)
		},
		Declarator: func(k func(*ast.Declarator), d *ast.Declarator) {
			s.Declarators++
			k(d)
		},
		Name: func(k func(*ast.Name), n *ast.Name) {
			s.Names++
			k(n)
		},
		Param: func(k func(*ast.Parameter), p *ast.Parameter) {
			s.Parameters++
			k(p)
		},
		Arg: func(k func(ast.Argument), a ast.Argument) {
			s.Arguments++
			s.NodeKinds[kindTag(a)]++
			k(a)
		},
		Directive: func(k func(ast.Directive), d ast.Directive) {
			s.Directives++
			s.NodeKinds[kindTag(d)]++
			k(d)
		},
		Token: func(k func(token.Token), tk token.Token) {
			s.Tokens++
			k(tk)
		},
	})
	w.WalkProgram(prog)
	return s
}

// kindTag names a node by its concrete type, e.g. BinaryExpression.
func kindTag(n any) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}

func fileOf(prog *ast.Program) string {
	if prog == nil {
		return ""
	}
	return prog.File
}
