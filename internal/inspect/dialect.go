package inspect

import (
	"github.com/funvibe/syntree/internal/ast"
	"github.com/funvibe/syntree/internal/diag"
	"github.com/funvibe/syntree/internal/token"
)

// CheckDialect reports constructs the dialect configuration disables.
// Features are named toggles (templates, namespaces, exceptions, lambdas,
// foreach, classes); a feature missing from the map is allowed, only an
// explicit false disables it. The check is advisory: nothing constrains
// which shapes the tree may hold.
func CheckDialect(prog *ast.Program, features map[string]bool) diag.List {
	if len(features) == 0 {
		return nil
	}

	var diags diag.List
	flag := func(feature string, tok token.Token, what string) {
		if on, ok := features[feature]; ok && !on {
			diags = append(diags, diag.Warningf(tok.Pos, "dialect/"+feature, "%s disabled by dialect", what))
		}
	}

	w := ast.NewWalker(ast.Hooks{
		Expr: func(k func(ast.Expression), e ast.Expression) {
			if n, ok := e.(*ast.LambdaExpression); ok {
				flag("lambdas", n.Token, "lambda expression")
			}
			k(e)
		},
		Stmt: func(k func(ast.Statement), s ast.Statement) {
			switch n := s.(type) {
			case *ast.TryStatement:
				flag("exceptions", n.Token, "try statement")
			case *ast.ForEachStatement:
				flag("foreach", n.Token, "foreach statement")
			}
			k(s)
		},
		Type: func(k func(ast.Type), t ast.Type) {
			if n, ok := t.(*ast.ClassType); ok && n.Kind == ast.Class {
				flag("classes", n.Token, "class definition")
			}
			k(t)
		},
		Decl: func(k func(ast.Declaration), d ast.Declaration) {
			switch n := d.(type) {
			case *ast.TemplateDeclaration:
				flag("templates", n.Token, "template declaration")
			case *ast.NamespaceDeclaration:
				flag("namespaces", n.Token, "namespace declaration")
			case *ast.UsingDeclaration:
				flag("namespaces", n.Token, "using declaration")
			}
			k(d)
		},
	})
	w.WalkProgram(prog)
	return diags
}
