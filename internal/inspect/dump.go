package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/funvibe/syntree/internal/ast"
	"github.com/funvibe/syntree/internal/token"
)

// Dump writes an indented outline of the program, one line per visited
// node: the kind tag plus the identifying details a reader needs (names,
// literals, operators). The outline describes tree shape; it is not a
// rendering of source text.
func Dump(w io.Writer, prog *ast.Program) {
	d := &dumper{w: w}
	d.line("Program", fileOf(prog))
	d.indent++

	walker := ast.NewWalker(ast.Hooks{
		Expr: func(k func(ast.Expression), e ast.Expression) {
			d.visit(kindTag(e), exprDetail(e), func() { k(e) })
		},
		Stmt: func(k func(ast.Statement), s ast.Statement) {
			d.visit(kindTag(s), stmtDetail(s), func() { k(s) })
		},
		Type: func(k func(ast.Type), t ast.Type) {
			d.visit(kindTag(t), typeDetail(t), func() { k(t) })
		},
		Decl: func(k func(ast.Declaration), dn ast.Declaration) {
			d.visit(kindTag(dn), declDetail(dn), func() { k(dn) })
		},
		Declarator: func(k func(*ast.Declarator), dc *ast.Declarator) {
			name := ""
			if dc.Name != nil {
				name = dc.Name.Value
			}
			d.visit("Declarator", name, func() { k(dc) })
		},
		Name: func(k func(*ast.Name), n *ast.Name) {
			d.visit("Name", n.String(), func() { k(n) })
		},
		Param: func(k func(*ast.Parameter), p *ast.Parameter) {
			name := ""
			if p.Name != nil {
				name = p.Name.Value
			}
			d.visit("Parameter", name, func() { k(p) })
		},
		Arg: func(k func(ast.Argument), a ast.Argument) {
			detail := ""
			if na, ok := a.(*ast.NamedArgument); ok && na.Name != nil {
				detail = na.Name.Value
			}
			d.visit(kindTag(a), detail, func() { k(a) })
		},
		Directive: func(k func(ast.Directive), dn ast.Directive) {
			d.visit(kindTag(dn), directiveDetail(dn), func() { k(dn) })
		},
		Token: func(k func(token.Token), tk token.Token) {
			d.visit("Token", tk.Lexeme, func() { k(tk) })
		},
	})
	walker.WalkProgram(prog)
}

type dumper struct {
	w      io.Writer
	indent int
}

func (d *dumper) line(tag, detail string) {
	pad := strings.Repeat("  ", d.indent)
	if detail == "" {
		fmt.Fprintf(d.w, "%s%s\n", pad, tag)
		return
	}
	fmt.Fprintf(d.w, "%s%s %s\n", pad, tag, detail)
}

func (d *dumper) visit(tag, detail string, recurse func()) {
	d.line(tag, detail)
	d.indent++
	recurse()
	d.indent--
}

func exprDetail(e ast.Expression) string {
	switch n := e.(type) {
	case *ast.Identifier:
		return n.Value + " [" + n.Resolved.Kind().String() + "]"
	case *ast.IntConstant, *ast.FloatConstant, *ast.CharConstant,
		*ast.StringConstant, *ast.BoolConstant, *ast.NullConstant:
		return e.TokenLiteral()
	case *ast.BinaryExpression:
		return n.Op.String()
	case *ast.UnaryExpression:
		return n.Op.String()
	case *ast.PostfixExpression:
		return n.Op.String()
	case *ast.AssignExpression:
		return n.Op.String()
	case *ast.FieldExpression:
		if n.Arrow {
			return "->"
		}
		return "."
	case *ast.TodoExpression:
		return n.Tag.Text
	}
	return ""
}

func stmtDetail(s ast.Statement) string {
	switch n := s.(type) {
	case *ast.GotoStatement:
		return n.Label.Value
	case *ast.LabeledStatement:
		return n.Label.Value
	case *ast.TodoStatement:
		return n.Tag.Text
	}
	return ""
}

func typeDetail(t ast.Type) string {
	switch n := t.(type) {
	case *ast.BuiltinType:
		name := n.Kind.String()
		if n.Unsigned {
			name = "unsigned " + name
		}
		return name
	case *ast.ClassType:
		name := n.Kind.String()
		if n.Name != nil {
			name += " " + n.Name.String()
		}
		return name
	case *ast.EnumType:
		if n.Name != nil {
			return n.Name.Value
		}
	case *ast.QualifiedType:
		return n.Qual.String()
	case *ast.TodoType:
		return n.Tag.Text
	}
	return ""
}

func declDetail(d ast.Declaration) string {
	switch n := d.(type) {
	case *ast.VarDeclaration:
		return n.Storage.String()
	case *ast.FunctionDefinition:
		return n.Storage.String()
	case *ast.TypedefDeclaration:
		return n.Name.Value
	case *ast.NamespaceDeclaration:
		if n.Name != nil {
			return n.Name.Value
		}
	case *ast.ImportDeclaration:
		path := n.ModulePath()
		if n.Alias != nil {
			path += " as " + n.Alias.Value
		}
		if n.All {
			path += " *"
		}
		for _, sym := range n.Symbols {
			path += " " + sym.Value
		}
		return path
	case *ast.TodoDeclaration:
		return n.Tag.Text
	}
	return ""
}

func directiveDetail(d ast.Directive) string {
	switch n := d.(type) {
	case *ast.IncludeDirective:
		if n.System {
			return "<" + n.Path + ">"
		}
		return `"` + n.Path + `"`
	case *ast.DefineDirective:
		if n.Name != nil {
			return n.Name.Value
		}
	case *ast.PragmaDirective:
		return n.Text
	case *ast.MacroDirective:
		if n.Name != nil {
			return n.Name.Value
		}
	}
	return ""
}
