package bridge

import (
	"strings"

	"github.com/funvibe/syntree/internal/ast"
	"github.com/funvibe/syntree/internal/fuzzy"
	"github.com/funvibe/syntree/internal/token"
)

// liftDirective reads one of the directive heads. Replacement material and
// macro arguments stay raw token runs; nothing here expands anything.
func (lf *Lifter) liftDirective(t fuzzy.Tree) ast.Directive {
	head, rest, _ := headed(t)

	switch head.Lexeme {
	case "include":
		return lf.liftInclude(head, rest)
	case "define":
		return lf.liftDefine(head, rest)
	case "pragma":
		toks := flattenTokens(rest)
		parts := make([]string, 0, len(toks))
		for _, tok := range toks {
			parts = append(parts, tok.Lexeme)
		}
		return &ast.PragmaDirective{Token: head, Text: strings.Join(parts, " ")}
	case "macro":
		return lf.liftMacro(head, rest)
	}

	// liftItems only routes known heads here.
	lf.errorf(head.Pos, "lift/directive", "unknown directive %q", head.Lexeme)
	return &ast.PragmaDirective{Token: head, Text: head.Lexeme}
}

// liftInclude reads (include "path" system?); the system atom marks the
// <...> form.
func (lf *Lifter) liftInclude(head token.Token, rest []fuzzy.Tree) ast.Directive {
	dir := &ast.IncludeDirective{Token: head}
	if len(rest) == 0 {
		lf.errorf(head.Pos, "lift/directive", "include wants a path string")
		return dir
	}
	pathLeaf, ok := rest[0].(*fuzzy.Leaf)
	if !ok || pathLeaf.Tok.Type != token.STRING {
		lf.errorf(rest[0].GetToken().Pos, "lift/directive", "include path must be a string")
		return dir
	}
	dir.Path = pathLeaf.Tok.Lexeme
	dir.PathTok = pathLeaf.Tok
	rest = rest[1:]
	if len(rest) > 0 {
		if leaf, isAtom := atomLeaf(rest[0]); isAtom && leaf.Tok.Lexeme == "system" {
			dir.System = true
			rest = rest[1:]
		}
	}
	if len(rest) > 0 {
		lf.errorf(head.Pos, "lift/directive", "include has trailing material")
	}
	return dir
}

// liftDefine reads (define NAME (params a b)? [body...]).
func (lf *Lifter) liftDefine(head token.Token, rest []fuzzy.Tree) ast.Directive {
	dir := &ast.DefineDirective{Token: head}
	if len(rest) == 0 {
		lf.errorf(head.Pos, "lift/directive", "define wants a macro name")
		return dir
	}
	name, ok := atomLeaf(rest[0])
	if !ok {
		lf.errorf(rest[0].GetToken().Pos, "lift/directive", "define name must be an atom")
		return dir
	}
	dir.Name = identOf(name)
	rest = rest[1:]
	if len(rest) > 0 && headAtom(rest[0]) == "params" {
		_, paramTrees, _ := headed(rest[0])
		// A function-like macro with zero parameters still gets a non-nil
		// parameter list.
		dir.Params = []*ast.Identifier{}
		for _, p := range paramTrees {
			leaf, isAtom := atomLeaf(p)
			if !isAtom {
				lf.errorf(p.GetToken().Pos, "lift/directive", "macro parameter must be an atom")
				continue
			}
			dir.Params = append(dir.Params, identOf(leaf))
		}
		rest = rest[1:]
	}
	dir.Body = rawTokens(rest)
	return dir
}

// liftMacro reads (macro NAME [args...]), a macro use standing where a
// declaration or statement would be.
func (lf *Lifter) liftMacro(head token.Token, rest []fuzzy.Tree) ast.Directive {
	dir := &ast.MacroDirective{Token: head}
	if len(rest) == 0 {
		lf.errorf(head.Pos, "lift/directive", "macro wants a name")
		return dir
	}
	name, ok := atomLeaf(rest[0])
	if !ok {
		lf.errorf(rest[0].GetToken().Pos, "lift/directive", "macro name must be an atom")
		return dir
	}
	dir.Token = name.Tok
	dir.Name = identOf(name)
	dir.Args = rawTokens(rest[1:])
	return dir
}
