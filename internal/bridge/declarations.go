package bridge

import (
	"strings"

	"github.com/funvibe/syntree/internal/ast"
	"github.com/funvibe/syntree/internal/fuzzy"
	"github.com/funvibe/syntree/internal/token"
)

// liftDecl lifts a tree in declaration position. Unknown heads fall back to
// TodoDeclaration.
func (lf *Lifter) liftDecl(t fuzzy.Tree) ast.Declaration {
	head, rest, ok := headed(t)
	if !ok {
		lf.errorf(t.GetToken().Pos, "lift/decl", "expected a declaration group")
		return &ast.TodoDeclaration{Tag: tagOf(t), Sub: []ast.Any{lf.liftAny(t)}}
	}

	switch head.Lexeme {
	case "var":
		return lf.liftVar(head, rest)

	case "fun":
		return lf.liftFun(head, rest)

	case "typedef":
		if len(rest) != 2 {
			return lf.todoDecl(head, rest, "typedef wants a name and a type")
		}
		name, isAtom := atomLeaf(rest[0])
		if !isAtom {
			return lf.todoDecl(head, rest, "typedef name must be an atom")
		}
		return &ast.TypedefDeclaration{Token: head, Name: identOf(name), T: lf.liftType(rest[1])}

	case "typedecl":
		if len(rest) != 1 {
			return lf.todoDecl(head, rest, "typedecl wants one type")
		}
		return &ast.TypeDeclaration{Token: head, T: lf.liftType(rest[0])}

	case "namespace":
		decl := &ast.NamespaceDeclaration{Token: head}
		if len(rest) > 0 {
			if leaf, isAtom := atomLeaf(rest[0]); isAtom {
				decl.Name = identOf(leaf)
				rest = rest[1:]
			}
		}
		decl.Body = liftItems(lf, rest, lf.liftNamespaceDecl)
		return decl

	case "template":
		return lf.liftTemplate(head, rest)

	case "using":
		if len(rest) != 1 {
			return lf.todoDecl(head, rest, "using wants a name")
		}
		return &ast.UsingDeclaration{Token: head, Name: lf.liftNameFrom(rest[0])}

	case "import":
		return lf.liftImport(head, rest)

	case "from":
		return lf.liftFromImport(head, rest)
	}

	return &ast.TodoDeclaration{
		Tag: ast.CategoryTag{Token: head, Text: head.Lexeme},
		Sub: lf.liftSubs(rest),
	}
}

func (lf *Lifter) todoDecl(head token.Token, rest []fuzzy.Tree, format string, args ...any) ast.Declaration {
	lf.errorf(head.Pos, "lift/decl", format, args...)
	return &ast.TodoDeclaration{
		Tag: ast.CategoryTag{Token: head, Text: head.Lexeme},
		Sub: lf.liftSubs(rest),
	}
}

func (lf *Lifter) liftNamespaceDecl(t fuzzy.Tree) ast.Declaration {
	if declHeads[headAtom(t)] {
		return lf.liftDecl(t)
	}
	lf.warnf(t.GetToken().Pos, "lift/namespace", "%q is not a declaration in a namespace", tagOf(t).Text)
	return &ast.TodoDeclaration{Tag: tagOf(t), Sub: []ast.Any{lf.liftAny(t)}}
}

// storage consumes an optional leading storage-class atom.
func storage(rest []fuzzy.Tree) (ast.StorageKind, []fuzzy.Tree) {
	if len(rest) > 0 {
		if leaf, ok := atomLeaf(rest[0]); ok {
			if kind, known := ast.StorageKindFor(leaf.Tok.Lexeme); known {
				return kind, rest[1:]
			}
		}
	}
	return ast.StorageNone, rest
}

// liftVar reads (var storage? (d name type? init?)...).
func (lf *Lifter) liftVar(head token.Token, rest []fuzzy.Tree) ast.Declaration {
	decl := &ast.VarDeclaration{Token: head}
	decl.Storage, rest = storage(rest)
	if len(rest) == 0 {
		return lf.todoDecl(head, rest, "var wants at least one declarator")
	}
	for _, t := range rest {
		decl.Decls = append(decl.Decls, lf.liftDeclarator(t))
	}
	return decl
}

// liftDeclarator reads (d name type? init?).
func (lf *Lifter) liftDeclarator(t fuzzy.Tree) *ast.Declarator {
	head, rest, ok := headed(t)
	if !ok || head.Lexeme != "d" {
		lf.errorf(t.GetToken().Pos, "lift/declarator", "expected a (d ...) declarator group")
		return &ast.Declarator{}
	}
	if len(rest) == 0 {
		lf.errorf(head.Pos, "lift/declarator", "declarator wants a name")
		return &ast.Declarator{}
	}
	name, isAtom := atomLeaf(rest[0])
	if !isAtom {
		lf.errorf(rest[0].GetToken().Pos, "lift/declarator", "declarator name must be an atom")
		return &ast.Declarator{}
	}
	d := &ast.Declarator{Name: identOf(name)}
	rest = rest[1:]
	if len(rest) > 0 && typeHeads[headAtom(rest[0])] {
		d.T = lf.liftType(rest[0])
		rest = rest[1:]
	}
	if len(rest) > 0 {
		d.Init = lf.liftExpr(rest[0])
		rest = rest[1:]
	}
	if len(rest) > 0 {
		lf.errorf(head.Pos, "lift/declarator", "declarator has trailing material")
	}
	return d
}

// liftFun reads (fun storage? name (fntype ...) body?); a missing body is a
// definition the producer only declared.
func (lf *Lifter) liftFun(head token.Token, rest []fuzzy.Tree) ast.Declaration {
	decl := &ast.FunctionDefinition{Token: head}
	decl.Storage, rest = storage(rest)
	if len(rest) == 0 {
		return lf.todoDecl(head, rest, "fun wants a name")
	}
	decl.Name = lf.liftNameFrom(rest[0])
	rest = rest[1:]
	if len(rest) > 0 && headAtom(rest[0]) == "fntype" {
		sigHead, sigRest, _ := headed(rest[0])
		decl.Sig = lf.liftFnType(sigHead, sigRest)
		rest = rest[1:]
	}
	if len(rest) > 0 {
		decl.Body = lf.liftBody(rest[0])
		rest = rest[1:]
	}
	if len(rest) > 0 {
		lf.errorf(head.Pos, "lift/decl", "fun has trailing material")
	}
	return decl
}

// liftTemplate reads (template (tparam NAME type?)... decl).
func (lf *Lifter) liftTemplate(head token.Token, rest []fuzzy.Tree) ast.Declaration {
	decl := &ast.TemplateDeclaration{Token: head}
	for len(rest) > 0 && headAtom(rest[0]) == "tparam" {
		pTok, pRest, _ := headed(rest[0])
		rest = rest[1:]
		if len(pRest) == 0 {
			lf.errorf(pTok.Pos, "lift/decl", "tparam wants a name")
			continue
		}
		name, isAtom := atomLeaf(pRest[0])
		if !isAtom {
			lf.errorf(pTok.Pos, "lift/decl", "tparam name must be an atom")
			continue
		}
		p := &ast.TemplateParam{Token: name.Tok, Name: identOf(name)}
		if len(pRest) > 1 {
			p.T = lf.liftType(pRest[1])
		}
		decl.Params = append(decl.Params, p)
	}
	if len(rest) != 1 {
		return lf.todoDecl(head, rest, "template wants parameters then one declaration")
	}
	decl.Decl = lf.liftDecl(rest[0])
	return decl
}

// liftImport reads (import a.b.c) or (import a.b.c as m).
func (lf *Lifter) liftImport(head token.Token, rest []fuzzy.Tree) ast.Declaration {
	if len(rest) == 0 {
		return lf.todoDecl(head, rest, "import wants a module path")
	}
	decl := &ast.ImportDeclaration{Token: head}
	path, ok := lf.liftModulePath(rest[0])
	if !ok {
		return lf.todoDecl(head, rest, "import path must be a dotted atom")
	}
	decl.Path = path
	rest = rest[1:]
	if len(rest) == 2 {
		if as, isAtom := atomLeaf(rest[0]); isAtom && as.Tok.Lexeme == "as" {
			if alias, aliasAtom := atomLeaf(rest[1]); aliasAtom {
				decl.Alias = identOf(alias)
				return decl
			}
		}
	}
	if len(rest) != 0 {
		lf.errorf(head.Pos, "lift/decl", "import allows only 'as alias' after the path")
	}
	return decl
}

// liftFromImport reads (from a.b import x y) or (from a.b import *).
func (lf *Lifter) liftFromImport(head token.Token, rest []fuzzy.Tree) ast.Declaration {
	if len(rest) < 2 {
		return lf.todoDecl(head, rest, "from wants a path and imported symbols")
	}
	decl := &ast.ImportDeclaration{Token: head}
	path, ok := lf.liftModulePath(rest[0])
	if !ok {
		return lf.todoDecl(head, rest, "from path must be a dotted atom")
	}
	decl.Path = path
	rest = rest[1:]
	if kw, isAtom := atomLeaf(rest[0]); isAtom && kw.Tok.Lexeme == "import" {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return lf.todoDecl(head, rest, "from wants imported symbols or *")
	}
	for _, t := range rest {
		if leaf, isLeaf := t.(*fuzzy.Leaf); isLeaf && leaf.Tok.Lexeme == "*" {
			decl.All = true
			continue
		}
		sym, isAtom := atomLeaf(t)
		if !isAtom {
			lf.errorf(t.GetToken().Pos, "lift/decl", "imported symbol must be an atom")
			continue
		}
		decl.Symbols = append(decl.Symbols, identOf(sym))
	}
	return decl
}

// liftModulePath splits a dotted atom like a.b.c into path segments. Every
// segment shares the path token's position.
func (lf *Lifter) liftModulePath(t fuzzy.Tree) ([]*ast.Identifier, bool) {
	leaf, ok := atomLeaf(t)
	if !ok {
		return nil, false
	}
	var path []*ast.Identifier
	for _, part := range strings.Split(leaf.Tok.Lexeme, ".") {
		if part == "" {
			lf.warnf(leaf.Tok.Pos, "lift/decl", "empty segment in module path %q", leaf.Tok.Lexeme)
			continue
		}
		path = append(path, &ast.Identifier{
			Token: token.New(token.IDENT, part, leaf.Tok.Pos),
			Value: part,
		})
	}
	return path, len(path) > 0
}
