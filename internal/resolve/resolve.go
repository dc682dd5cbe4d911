// Package resolve binds identifier uses to what they denote within one
// unit: parameters, block locals, unit-level symbols, imported module
// aliases and imported symbols. It is a hook set over the tree walker —
// scopes push and pop by wrapping the continuation — and it writes each
// identifier's resolution slot at most once.
//
// Resolution is name-only and per unit. Qualified names, member access and
// labels are never identifier uses (the walker keeps them out of the Expr
// slot), so they stay untouched. A name declared later in the same block
// does not resolve earlier uses; an enclosing scope still can.
package resolve

import (
	"io"
	"log/slog"

	"github.com/funvibe/syntree/internal/ast"
)

// Resolver writes identifier resolution slots. Safe to reuse across units;
// each Resolve call carries its own scope state.
type Resolver struct {
	log *slog.Logger
}

// New creates a resolver. A nil logger discards.
func New(log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{log: log}
}

// Stats reports one Resolve pass: how many identifier uses ended up bound,
// how many stayed unresolved, and the bound ones by kind.
type Stats struct {
	Resolved   int
	Unresolved int
	PerKind    map[ast.ResolvedKind]int
}

// Resolve walks the program and binds identifier uses. Re-resolving a tree
// is a no-op for slots already written; the stats still count every use by
// its final state.
func (r *Resolver) Resolve(prog *ast.Program) Stats {
	ru := &run{
		log:        r.log,
		unitScopes: 1,
		stats:      Stats{PerKind: make(map[ast.ResolvedKind]int)},
	}
	ru.push() // unit scope

	var w *ast.Walker
	w = ast.NewWalker(ast.Hooks{
		Expr: func(k func(ast.Expression), e ast.Expression) {
			switch n := e.(type) {
			case *ast.Identifier:
				ru.use(n)
			case *ast.LambdaExpression:
				ru.push()
				for _, p := range n.Params {
					ru.declareParam(p)
				}
				k(e)
				ru.pop()
				return
			}
			k(e)
		},

		Stmt: func(k func(ast.Statement), s ast.Statement) {
			switch n := s.(type) {
			case *ast.CompoundStatement, *ast.ForStatement, *ast.ForEachStatement:
				// The for and foreach scopes cover the whole statement, so
				// their loop variables are visible in every slot.
				ru.push()
				k(s)
				ru.pop()
				return
			case *ast.TryStatement:
				// Handler parameters scope over their own handler only, so
				// the default recursion is replaced with a scoped one.
				w.WalkBody(n.Body)
				for _, h := range n.Handlers {
					if h == nil {
						continue
					}
					ru.push()
					ru.declareParam(h.Param)
					w.WalkParam(h.Param)
					w.WalkBody(h.Body)
					ru.pop()
				}
				w.WalkBody(n.Finally)
				return
			}
			k(s)
		},

		Decl: func(k func(ast.Declaration), d ast.Declaration) {
			switch n := d.(type) {
			case *ast.FunctionDefinition:
				if ast.IsIdentName(n.Name) {
					ru.declare(n.Name.ID.(*ast.IdentID).Name, ru.symbolKind())
				}
				ru.push()
				if n.Sig != nil {
					for _, p := range n.Sig.Params {
						ru.declareParam(p)
					}
				}
				k(d)
				ru.pop()
				return
			case *ast.NamespaceDeclaration:
				// Namespace members stay unit-level symbols; the scope only
				// bounds how far their names reach.
				ru.push()
				ru.unitScopes++
				k(d)
				ru.unitScopes--
				ru.pop()
				return
			case *ast.TemplateDeclaration:
				ru.push()
				for _, tp := range n.Params {
					if tp != nil && tp.Name != nil {
						ru.declare(tp.Name.Value, ast.ResolvedParameter)
					}
				}
				k(d)
				ru.pop()
				return
			case *ast.ImportDeclaration:
				ru.declareImport(n)
			}
			k(d)
		},

		Declarator: func(k func(*ast.Declarator), dc *ast.Declarator) {
			if dc.Name != nil {
				ru.declare(dc.Name.Value, ru.symbolKind())
			}
			k(dc)
		},

		Type: func(k func(ast.Type), t ast.Type) {
			switch n := t.(type) {
			case *ast.EnumType:
				for _, item := range n.Items {
					if item != nil && item.Name != nil {
						ru.declare(item.Name.Value, ru.symbolKind())
					}
				}
			case *ast.ClassType:
				// Members bind inside the class body, not around it.
				ru.push()
				k(t)
				ru.pop()
				return
			}
			k(t)
		},
	})
	w.WalkProgram(prog)

	ru.pop()
	r.log.Debug("resolution complete",
		"file", fileOf(prog),
		"resolved", ru.stats.Resolved,
		"unresolved", ru.stats.Unresolved)
	return ru.stats
}

func fileOf(prog *ast.Program) string {
	if prog == nil {
		return ""
	}
	return prog.File
}

type run struct {
	log        *slog.Logger
	scopes     []map[string]ast.ResolvedKind
	unitScopes int // bottom scopes whose symbols are unit-level
	stats      Stats
}

func (ru *run) push() {
	ru.scopes = append(ru.scopes, map[string]ast.ResolvedKind{})
}

func (ru *run) pop() {
	ru.scopes = ru.scopes[:len(ru.scopes)-1]
}

// symbolKind is the kind for a value symbol declared in the current scope:
// global while only unit-level scopes are open, local anywhere deeper.
func (ru *run) symbolKind() ast.ResolvedKind {
	if len(ru.scopes) == ru.unitScopes {
		return ast.ResolvedGlobal
	}
	return ast.ResolvedLocal
}

func (ru *run) declare(name string, kind ast.ResolvedKind) {
	if name == "" || name == "_" {
		return
	}
	ru.scopes[len(ru.scopes)-1][name] = kind
}

func (ru *run) declareParam(p *ast.Parameter) {
	if p == nil || p.Name == nil {
		return
	}
	ru.declare(p.Name.Value, ast.ResolvedParameter)
}

// declareImport binds what an import makes visible: the alias (or the last
// path segment) as a module, selected symbols as globals. A star import
// binds nothing, its names are unknowable here.
func (ru *run) declareImport(d *ast.ImportDeclaration) {
	for _, sym := range d.Symbols {
		if sym != nil {
			ru.declare(sym.Value, ast.ResolvedGlobal)
		}
	}
	if len(d.Symbols) > 0 || d.All {
		return
	}
	if d.Alias != nil {
		ru.declare(d.Alias.Value, ast.ResolvedModule)
		return
	}
	if len(d.Path) > 0 {
		ru.declare(d.Path[len(d.Path)-1].Value, ast.ResolvedModule)
	}
}

func (ru *run) lookup(name string) (ast.ResolvedKind, bool) {
	for i := len(ru.scopes) - 1; i >= 0; i-- {
		if kind, ok := ru.scopes[i][name]; ok {
			return kind, true
		}
	}
	return ast.NotResolved, false
}

func (ru *run) use(id *ast.Identifier) {
	if kind, ok := ru.lookup(id.Value); ok {
		if id.Resolved.Resolve(kind) {
			ru.log.Debug("resolved", "name", id.Value, "kind", kind.String(),
				"line", id.Token.Pos.Line)
		}
	}
	if got := id.Resolved.Kind(); got == ast.NotResolved {
		ru.stats.Unresolved++
	} else {
		ru.stats.Resolved++
		ru.stats.PerKind[got]++
	}
}
