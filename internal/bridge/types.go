package bridge

import (
	"strings"

	"github.com/funvibe/syntree/internal/ast"
	"github.com/funvibe/syntree/internal/fuzzy"
	"github.com/funvibe/syntree/internal/token"
)

// liftType lifts a tree in type position. Unknown heads and non-type
// material fall back to TodoType.
func (lf *Lifter) liftType(t fuzzy.Tree) ast.Type {
	head, rest, ok := headed(t)
	if !ok {
		lf.errorf(t.GetToken().Pos, "lift/type", "expected a type group")
		return &ast.TodoType{Tag: tagOf(t), Sub: []ast.Any{lf.liftAny(t)}}
	}

	switch head.Lexeme {
	case "builtin":
		return lf.liftBuiltin(head, rest)

	case "named":
		if len(rest) != 1 {
			return lf.todoType(head, rest, "named wants one name")
		}
		return &ast.NamedType{Token: rest[0].GetToken(), Name: lf.liftClassName(rest[0])}

	case "ptr":
		if len(rest) != 1 {
			return lf.todoType(head, rest, "ptr wants one element type")
		}
		return &ast.PointerType{Token: head, Elem: lf.liftType(rest[0])}

	case "ref":
		if len(rest) != 1 {
			return lf.todoType(head, rest, "ref wants one element type")
		}
		return &ast.ReferenceType{Token: head, Elem: lf.liftType(rest[0])}

	case "arr":
		if len(rest) != 1 && len(rest) != 2 {
			return lf.todoType(head, rest, "arr wants an element type and an optional size")
		}
		typ := &ast.ArrayType{Token: head, Elem: lf.liftType(rest[0])}
		if len(rest) == 2 {
			typ.Size = lf.liftExpr(rest[1])
		}
		return typ

	case "fntype":
		return lf.liftFnType(head, rest)

	case "qual":
		return lf.liftQual(head, rest)

	case "enum":
		return lf.liftEnum(head, rest)

	case "class", "struct", "union":
		return lf.liftClass(head, rest)

	case "typeof":
		if len(rest) != 1 {
			return lf.todoType(head, rest, "typeof wants one expression")
		}
		return &ast.TypeOfType{Token: head, Expr: lf.liftExpr(rest[0])}
	}

	return &ast.TodoType{
		Tag: ast.CategoryTag{Token: head, Text: head.Lexeme},
		Sub: lf.liftSubs(rest),
	}
}

func (lf *Lifter) todoType(head token.Token, rest []fuzzy.Tree, format string, args ...any) ast.Type {
	lf.errorf(head.Pos, "lift/type", format, args...)
	return &ast.TodoType{
		Tag: ast.CategoryTag{Token: head, Text: head.Lexeme},
		Sub: lf.liftSubs(rest),
	}
}

// liftBuiltin reads (builtin unsigned? word...), where the words spell a
// primitive: void, bool, char, short, int, long, long long, float, double.
func (lf *Lifter) liftBuiltin(head token.Token, rest []fuzzy.Tree) ast.Type {
	var words []string
	for _, t := range rest {
		leaf, ok := atomLeaf(t)
		if !ok {
			return lf.todoType(head, rest, "builtin wants keyword atoms")
		}
		words = append(words, leaf.Tok.Lexeme)
	}
	typ := &ast.BuiltinType{Token: head}
	if len(words) > 0 && words[0] == "unsigned" {
		typ.Unsigned = true
		words = words[1:]
	}
	if len(rest) > 0 {
		typ.Token = rest[0].GetToken()
	}
	if len(words) == 0 {
		// Bare unsigned means unsigned int.
		if typ.Unsigned {
			typ.Kind = ast.Int
			return typ
		}
		return lf.todoType(head, rest, "builtin wants a primitive name")
	}
	kind, known := ast.BuiltinKindFor(strings.Join(words, " "))
	if !known {
		return lf.todoType(head, rest, "unknown primitive %q", strings.Join(words, " "))
	}
	typ.Kind = kind
	return typ
}

// liftFnType reads (fntype ret param... ...?), the trailing ... marking a
// variadic signature.
func (lf *Lifter) liftFnType(head token.Token, rest []fuzzy.Tree) *ast.FunctionType {
	typ := &ast.FunctionType{Token: head}
	if len(rest) == 0 {
		lf.errorf(head.Pos, "lift/type", "fntype wants a return type")
		return typ
	}
	typ.Ret = lf.liftType(rest[0])
	for _, t := range rest[1:] {
		if leaf, ok := t.(*fuzzy.Leaf); ok && leaf.Tok.Lexeme == "..." {
			typ.Variadic = true
			continue
		}
		if headAtom(t) != "param" {
			lf.errorf(t.GetToken().Pos, "lift/type", "fntype wants (param ...) groups after the return type")
			continue
		}
		typ.Params = append(typ.Params, lf.liftParam(t))
	}
	return typ
}

// liftParam reads (param name? type? default?); the name _ or a leading
// type group leaves the parameter abstract.
func (lf *Lifter) liftParam(t fuzzy.Tree) *ast.Parameter {
	head, rest, ok := headed(t)
	if !ok || head.Lexeme != "param" {
		lf.errorf(t.GetToken().Pos, "lift/param", "expected a (param ...) group")
		return &ast.Parameter{Token: t.GetToken()}
	}
	p := &ast.Parameter{Token: head}
	if len(rest) == 0 {
		return p
	}
	if leaf, isAtom := atomLeaf(rest[0]); isAtom {
		p.Token = leaf.Tok
		if leaf.Tok.Lexeme != "_" {
			p.Name = identOf(leaf)
		}
		rest = rest[1:]
	}
	if len(rest) > 0 && typeHeads[headAtom(rest[0])] {
		p.T = lf.liftType(rest[0])
		rest = rest[1:]
	}
	if len(rest) > 0 {
		p.Default = lf.liftExpr(rest[0])
		rest = rest[1:]
	}
	if len(rest) > 0 {
		lf.errorf(head.Pos, "lift/param", "param has trailing material")
	}
	return p
}

// liftQual reads (qual q... elem) with qualifiers const, volatile and
// restrict, nesting outer to inner when several are given.
func (lf *Lifter) liftQual(head token.Token, rest []fuzzy.Tree) ast.Type {
	if len(rest) < 2 {
		return lf.todoType(head, rest, "qual wants qualifiers and an element type")
	}
	quals := make([]ast.TypeQual, 0, len(rest)-1)
	toks := make([]token.Token, 0, len(rest)-1)
	for _, t := range rest[:len(rest)-1] {
		leaf, ok := atomLeaf(t)
		if !ok {
			return lf.todoType(head, rest, "qualifiers must be atoms")
		}
		q, known := ast.TypeQualFor(leaf.Tok.Lexeme)
		if !known {
			return lf.todoType(head, rest, "unknown qualifier %q", leaf.Tok.Lexeme)
		}
		quals = append(quals, q)
		toks = append(toks, leaf.Tok)
	}
	typ := lf.liftType(rest[len(rest)-1])
	for i := len(quals) - 1; i >= 0; i-- {
		typ = &ast.QualifiedType{Token: toks[i], Qual: quals[i], Elem: typ}
	}
	return typ
}

// liftEnum reads (enum name? (e NAME value?)...).
func (lf *Lifter) liftEnum(head token.Token, rest []fuzzy.Tree) ast.Type {
	typ := &ast.EnumType{Token: head}
	if len(rest) > 0 {
		if leaf, ok := atomLeaf(rest[0]); ok {
			typ.Name = identOf(leaf)
			rest = rest[1:]
		}
	}
	for _, t := range rest {
		itemTok, itemRest, ok := headed(t)
		if !ok || itemTok.Lexeme != "e" {
			lf.errorf(t.GetToken().Pos, "lift/enum", "expected an (e NAME value?) enumerator")
			continue
		}
		if len(itemRest) == 0 {
			lf.errorf(itemTok.Pos, "lift/enum", "enumerator wants a name")
			continue
		}
		name, isAtom := atomLeaf(itemRest[0])
		if !isAtom {
			lf.errorf(itemTok.Pos, "lift/enum", "enumerator name must be an atom")
			continue
		}
		item := &ast.EnumItem{Name: identOf(name)}
		if len(itemRest) > 1 {
			item.Value = lf.liftExpr(itemRest[1])
		}
		typ.Items = append(typ.Items, item)
	}
	return typ
}

// liftClass reads (class|struct|union name? (bases b...)? member-items...).
// Members are a declaration sequence, so method bodies and directives nest
// here.
func (lf *Lifter) liftClass(head token.Token, rest []fuzzy.Tree) ast.Type {
	typ := &ast.ClassType{Token: head}
	switch head.Lexeme {
	case "struct":
		typ.Kind = ast.Struct
	case "union":
		typ.Kind = ast.Union
	default:
		typ.Kind = ast.Class
	}
	if len(rest) > 0 {
		switch first := rest[0].(type) {
		case *fuzzy.Leaf:
			if first.Tok.Type == token.IDENT {
				typ.Name = lf.liftNameFrom(first)
				rest = rest[1:]
			}
		case *fuzzy.Parens:
			if headAtom(first) == "name" {
				typ.Name = lf.liftClassName(first)
				rest = rest[1:]
			}
		}
	}
	if len(rest) > 0 && headAtom(rest[0]) == "bases" {
		_, baseTrees, _ := headed(rest[0])
		for _, b := range baseTrees {
			typ.Bases = append(typ.Bases, lf.liftClassName(b))
		}
		rest = rest[1:]
	}
	typ.Members = liftItems(lf, rest, lf.liftMemberDecl)
	return typ
}

// liftMemberDecl lifts one class member. Members are declarations; anything
// else is kept behind a declaration Todo.
func (lf *Lifter) liftMemberDecl(t fuzzy.Tree) ast.Declaration {
	if declHeads[headAtom(t)] {
		return lf.liftDecl(t)
	}
	lf.warnf(t.GetToken().Pos, "lift/member", "%q is not a declaration in a class body", tagOf(t).Text)
	return &ast.TodoDeclaration{Tag: tagOf(t), Sub: []ast.Any{lf.liftAny(t)}}
}
