package bridge

import (
	"github.com/funvibe/syntree/internal/ast"
	"github.com/funvibe/syntree/internal/fuzzy"
	"github.com/funvibe/syntree/internal/token"
)

// liftName reads a (name part...) group: an optional leading :: marker, then
// qualifier parts, then the terminal id part. Parts are atoms or the tmpl,
// dtor, op and conv groups.
func (lf *Lifter) liftName(t fuzzy.Tree) *ast.Name {
	head, rest, ok := headed(t)
	if !ok || head.Lexeme != "name" {
		return lf.liftNameFrom(t)
	}
	name := &ast.Name{}
	if len(rest) > 0 {
		if leaf, isLeaf := rest[0].(*fuzzy.Leaf); isLeaf && leaf.Tok.Lexeme == "::" {
			tok := leaf.Tok
			name.Global = &tok
			rest = rest[1:]
		}
	}
	if len(rest) == 0 {
		lf.errorf(head.Pos, "lift/name", "name wants at least an id part")
		return name
	}
	for _, part := range rest[:len(rest)-1] {
		if q := lf.liftQualifier(part); q != nil {
			name.Qualifiers = append(name.Qualifiers, q)
		}
	}
	name.ID = lf.liftNameID(rest[len(rest)-1])
	return name
}

// liftNameFrom accepts a bare atom, a (name ...) group or a lone terminal
// part wherever a name is expected.
func (lf *Lifter) liftNameFrom(t fuzzy.Tree) *ast.Name {
	if leaf, ok := atomLeaf(t); ok {
		return ast.NameOf(identOf(leaf))
	}
	switch headAtom(t) {
	case "name":
		return lf.liftName(t)
	case "tmpl", "dtor", "op", "conv":
		return &ast.Name{ID: lf.liftNameID(t)}
	}
	lf.errorf(t.GetToken().Pos, "lift/name", "expected a name")
	return nil
}

// liftClassName is liftNameFrom plus the class-name convention check: the
// terminal must be a plain or template id.
func (lf *Lifter) liftClassName(t fuzzy.Tree) *ast.ClassName {
	name := lf.liftNameFrom(t)
	if name != nil && !ast.IsClassName(name) {
		lf.errorf(t.GetToken().Pos, "lift/name", "%s cannot name a class", name)
	}
	return name
}

func (lf *Lifter) liftQualifier(t fuzzy.Tree) ast.Qualifier {
	if leaf, ok := atomLeaf(t); ok {
		return &ast.ClassQualifier{Token: leaf.Tok, Name: leaf.Tok.Lexeme}
	}
	head, rest, ok := headed(t)
	if ok && head.Lexeme == "tmpl" {
		name, args := lf.liftTemplateParts(head, rest)
		return &ast.TemplateQualifier{Token: name.Tok, Name: name.Tok.Lexeme, Args: args}
	}
	lf.errorf(t.GetToken().Pos, "lift/name", "expected a qualifier part")
	return nil
}

// liftNameID reads the terminal part of a name: a bare atom, (tmpl NAME
// arg...), (dtor NAME), (op LEXEME) or (conv type).
func (lf *Lifter) liftNameID(t fuzzy.Tree) ast.NameID {
	if leaf, ok := atomLeaf(t); ok {
		return &ast.IdentID{Token: leaf.Tok, Name: leaf.Tok.Lexeme}
	}
	head, rest, ok := headed(t)
	if !ok {
		lf.errorf(t.GetToken().Pos, "lift/name", "expected an id part")
		return nil
	}
	switch head.Lexeme {
	case "tmpl":
		name, args := lf.liftTemplateParts(head, rest)
		return &ast.TemplateID{Token: name.Tok, Name: name.Tok.Lexeme, Args: args}
	case "dtor":
		if len(rest) != 1 {
			lf.errorf(head.Pos, "lift/name", "dtor wants a class name atom")
			return &ast.DestructorID{Token: head}
		}
		leaf, isAtom := atomLeaf(rest[0])
		if !isAtom {
			lf.errorf(head.Pos, "lift/name", "dtor wants a class name atom")
			return &ast.DestructorID{Token: head}
		}
		return &ast.DestructorID{Token: head, Name: leaf.Tok.Lexeme, NameTok: leaf.Tok}
	case "op":
		if len(rest) != 1 {
			lf.errorf(head.Pos, "lift/name", "op wants an operator lexeme")
			return &ast.OperatorID{Token: head}
		}
		opTok := rest[0].GetToken()
		return &ast.OperatorID{Token: head, Op: opLexeme(opTok), OpTok: opTok}
	case "conv":
		if len(rest) != 1 {
			lf.errorf(head.Pos, "lift/name", "conv wants a target type")
			return &ast.ConverterID{Token: head}
		}
		return &ast.ConverterID{Token: head, To: lf.liftType(rest[0])}
	}
	lf.errorf(head.Pos, "lift/name", "unknown name part %q", head.Lexeme)
	return nil
}

// liftTemplateParts reads the NAME arg... tail of a tmpl group. A bare atom
// argument reads as a type name; groups dispatch on their head; literals
// read as expressions.
func (lf *Lifter) liftTemplateParts(head token.Token, rest []fuzzy.Tree) (*fuzzy.Leaf, []ast.TemplateArg) {
	if len(rest) == 0 {
		lf.errorf(head.Pos, "lift/name", "tmpl wants a name")
		return &fuzzy.Leaf{Tok: head}, nil
	}
	name, ok := atomLeaf(rest[0])
	if !ok {
		lf.errorf(head.Pos, "lift/name", "tmpl name must be an atom")
		name = &fuzzy.Leaf{Tok: rest[0].GetToken()}
	}
	var args []ast.TemplateArg
	for _, a := range rest[1:] {
		args = append(args, lf.liftTemplateArg(a))
	}
	return name, args
}

func (lf *Lifter) liftTemplateArg(t fuzzy.Tree) ast.TemplateArg {
	if leaf, ok := atomLeaf(t); ok {
		// An atom in template-argument position names a type.
		return &ast.TypeArg{T: &ast.NamedType{Token: leaf.Tok, Name: ast.NameOf(identOf(leaf))}}
	}
	if typeHeads[headAtom(t)] || headAtom(t) == "name" {
		if headAtom(t) == "name" {
			name := lf.liftName(t)
			return &ast.TypeArg{T: &ast.NamedType{Token: name.GetToken(), Name: name}}
		}
		return &ast.TypeArg{T: lf.liftType(t)}
	}
	return &ast.ExprArg{E: lf.liftExpr(t)}
}
