// Package bridge lifts untyped bracket trees into the typed syntax tree.
//
// Dump text is S-expression shaped: a parens group whose first child is an
// atom is a categorized node, and the atom (the head) selects the variant.
// The heads, by family:
//
//	declarations  var fun typedef typedecl namespace template using
//	              import from
//	statements    nop if while do for foreach return break continue goto
//	              label switch case default try
//	expressions   name binary unary postfix assign cond seq cast paren
//	              call index field arrow sizeof lambda tuple list stmtexpr
//	              namedarg
//	types         builtin named ptr ref arr fntype qual enum class struct
//	              union typeof
//	directives    include define pragma macro, and ifsec with if/elif/else
//	              branch groups
//	fragments     d (declarator) param tparam e (enumerator) bases params
//	              handler finally tmpl dtor op conv
//
// Bare leaves lift as expressions: numbers, strings and chars become
// constants, the atoms true/false/null become their constants, and any other
// atom is an identifier. A brackets or braces group without a head lifts as
// a list display in expression position; brackets groups in directive
// positions hold raw token runs. The atom _ marks an absent optional slot.
//
// Operator slots take the operator's own lexeme, except that lexemes
// containing angle characters are spelled as atoms (the lexer reserves <
// and > for the angles pair): lt le gt ge shl shr shlassign shrassign.
//
// A head no table knows becomes the family's Todo variant: the head is the
// category tag and the children are lifted as Any values, so nothing the
// producer emitted is dropped. Malformed known forms additionally record a
// diagnostic.
package bridge

import (
	"github.com/funvibe/syntree/internal/ast"
	"github.com/funvibe/syntree/internal/diag"
	"github.com/funvibe/syntree/internal/fuzzy"
	"github.com/funvibe/syntree/internal/token"
)

// Lifter turns one unit's bracket forest into a typed Program, accumulating
// diagnostics as it goes.
type Lifter struct {
	file  string
	diags diag.List
}

func NewLifter(file string) *Lifter {
	return &Lifter{file: file}
}

// Diags returns the findings accumulated so far.
func (lf *Lifter) Diags() diag.List { return lf.diags }

func (lf *Lifter) errorf(pos token.Position, code, format string, args ...any) {
	lf.diags = append(lf.diags, diag.Errorf(pos, code, format, args...))
}

func (lf *Lifter) warnf(pos token.Position, code, format string, args ...any) {
	lf.diags = append(lf.diags, diag.Warningf(pos, code, format, args...))
}

// LiftProgram lifts a forest into a Program. Top-level items are
// declarations, directives and conditional regions; anything else is kept
// behind a declaration Todo.
func (lf *Lifter) LiftProgram(trees []fuzzy.Tree) *ast.Program {
	return &ast.Program{
		File:  lf.file,
		Items: liftItems(lf, trees, lf.liftToplevelDecl),
	}
}

func (lf *Lifter) liftToplevelDecl(t fuzzy.Tree) ast.Declaration {
	head := headAtom(t)
	if declHeads[head] {
		return lf.liftDecl(t)
	}
	lf.warnf(t.GetToken().Pos, "lift/toplevel", "%q is not a declaration at top level", tagOf(t).Text)
	return &ast.TodoDeclaration{Tag: tagOf(t), Sub: []ast.Any{lf.liftAny(t)}}
}

var declHeads = map[string]bool{
	"var": true, "fun": true, "typedef": true, "typedecl": true,
	"namespace": true, "template": true, "using": true,
	"import": true, "from": true,
}

var stmtHeads = map[string]bool{
	"nop": true, "if": true, "while": true, "do": true, "for": true,
	"foreach": true, "return": true, "break": true, "continue": true,
	"goto": true, "label": true, "switch": true, "case": true,
	"default": true, "try": true,
}

var exprHeads = map[string]bool{
	"name": true, "binary": true, "unary": true, "postfix": true,
	"assign": true, "cond": true, "seq": true, "cast": true, "paren": true,
	"call": true, "index": true, "field": true, "arrow": true,
	"sizeof": true, "lambda": true, "tuple": true, "list": true,
	"stmtexpr": true, "namedarg": true,
}

var typeHeads = map[string]bool{
	"builtin": true, "named": true, "ptr": true, "ref": true, "arr": true,
	"fntype": true, "qual": true, "enum": true, "class": true,
	"struct": true, "union": true, "typeof": true,
}

var directiveHeads = map[string]bool{
	"include": true, "define": true, "pragma": true, "macro": true,
}

// headAtom returns the head of a categorized parens group, "" otherwise.
func headAtom(t fuzzy.Tree) string {
	g, ok := t.(*fuzzy.Parens)
	if !ok || len(g.Children) == 0 {
		return ""
	}
	leaf, ok := g.Children[0].(*fuzzy.Leaf)
	if !ok || leaf.Tok.Type != token.IDENT {
		return ""
	}
	return leaf.Tok.Lexeme
}

// headed splits a categorized parens group into its head token and the rest
// of the children. ok is false when t is not such a group.
func headed(t fuzzy.Tree) (token.Token, []fuzzy.Tree, bool) {
	g, ok := t.(*fuzzy.Parens)
	if !ok || len(g.Children) == 0 {
		return token.Token{}, nil, false
	}
	leaf, ok := g.Children[0].(*fuzzy.Leaf)
	if !ok || leaf.Tok.Type != token.IDENT {
		return token.Token{}, nil, false
	}
	return leaf.Tok, g.Children[1:], true
}

// tagOf derives the Todo category tag for a tree: the head for categorized
// groups, the leading token otherwise.
func tagOf(t fuzzy.Tree) ast.CategoryTag {
	if tok, _, ok := headed(t); ok {
		return ast.CategoryTag{Token: tok, Text: tok.Lexeme}
	}
	tok := t.GetToken()
	return ast.CategoryTag{Token: tok, Text: tok.Lexeme}
}

// atomLeaf matches an atom leaf.
func atomLeaf(t fuzzy.Tree) (*fuzzy.Leaf, bool) {
	leaf, ok := t.(*fuzzy.Leaf)
	if !ok || leaf.Tok.Type != token.IDENT {
		return nil, false
	}
	return leaf, true
}

// isBlank matches the _ placeholder for an absent optional slot.
func isBlank(t fuzzy.Tree) bool {
	leaf, ok := atomLeaf(t)
	return ok && leaf.Tok.Lexeme == "_"
}

// opWords spells the operators whose lexemes contain angle characters,
// which the lexer reserves for the <...> pair.
var opWords = map[string]string{
	"lt": "<", "le": "<=", "gt": ">", "ge": ">=",
	"shl": "<<", "shr": ">>", "shlassign": "<<=", "shrassign": ">>=",
}

// opLexeme reads an operator token: a punct lexeme as-is, a word spelling
// through opWords.
func opLexeme(tok token.Token) string {
	if tok.Type == token.IDENT {
		if sym, ok := opWords[tok.Lexeme]; ok {
			return sym
		}
	}
	return tok.Lexeme
}

func identOf(leaf *fuzzy.Leaf) *ast.Identifier {
	return &ast.Identifier{Token: leaf.Tok, Value: leaf.Tok.Lexeme}
}

func groupDelims(t fuzzy.Tree) (open, close token.Token, ok bool) {
	switch g := t.(type) {
	case *fuzzy.Parens:
		return g.Open, g.Close, true
	case *fuzzy.Brackets:
		return g.Open, g.Close, true
	case *fuzzy.Braces:
		return g.Open, g.Close, true
	case *fuzzy.Angles:
		return g.Open, g.Close, true
	}
	return token.Token{}, token.Token{}, false
}

// flattenTokens linearizes trees back into their token run, keeping nested
// group delimiters in place. Raw directive material (define bodies, macro
// arguments, conditional conditions) stays tokens, never syntax.
func flattenTokens(trees []fuzzy.Tree) []token.Token {
	var out []token.Token
	for _, t := range trees {
		fuzzy.Visit(func(k func(fuzzy.Tree), n fuzzy.Tree) {
			if leaf, ok := n.(*fuzzy.Leaf); ok {
				out = append(out, leaf.Tok)
				return
			}
			open, close, _ := groupDelims(n)
			out = append(out, open)
			k(n)
			if close.Lexeme != "" {
				out = append(out, close)
			}
		}, t)
	}
	return out
}

// rawTokens reads a directive's trailing material: the canonical form is a
// single brackets group holding the tokens, but bare trailing trees are
// accepted and flattened as-is.
func rawTokens(rest []fuzzy.Tree) []token.Token {
	if len(rest) == 1 {
		if br, ok := rest[0].(*fuzzy.Brackets); ok {
			return flattenTokens(br.Children)
		}
	}
	return flattenTokens(rest)
}

// liftItems lifts a run of trees into a node sequence, routing directive
// heads and ifsec regions to their sequence-item kinds and everything else
// through node.
func liftItems[T ast.Node](lf *Lifter, trees []fuzzy.Tree, node func(fuzzy.Tree) T) []ast.SeqItem[T] {
	var items []ast.SeqItem[T]
	for _, t := range trees {
		head := headAtom(t)
		switch {
		case directiveHeads[head]:
			items = append(items, ast.DirItem[T](lf.liftDirective(t)))
		case head == "ifsec":
			items = append(items, ast.CondItem[T](liftCond(lf, t, node)))
		default:
			items = append(items, ast.Elem[T](node(t)))
		}
	}
	return items
}

// liftCond lifts an (ifsec (if [toks] items...) (elif [toks] items...)
// (else items...)) region. Every branch keeps its items; none is selected.
func liftCond[T ast.Node](lf *Lifter, t fuzzy.Tree, node func(fuzzy.Tree) T) *ast.Conditional[T] {
	head, rest, _ := headed(t)
	cond := &ast.Conditional[T]{Token: head}
	for _, b := range rest {
		branchTok, branchRest, ok := headed(b)
		if !ok {
			lf.errorf(b.GetToken().Pos, "lift/ifsec", "expected an if/elif/else branch group")
			continue
		}
		switch branchTok.Lexeme {
		case "if", "elif":
			branch := ast.Branch[T]{Token: branchTok}
			if len(branchRest) > 0 {
				if br, isBr := branchRest[0].(*fuzzy.Brackets); isBr {
					branch.Cond = flattenTokens(br.Children)
					branchRest = branchRest[1:]
				} else {
					lf.errorf(branchTok.Pos, "lift/ifsec", "%s branch has no [condition] group", branchTok.Lexeme)
				}
			} else {
				lf.errorf(branchTok.Pos, "lift/ifsec", "%s branch has no [condition] group", branchTok.Lexeme)
			}
			branch.Items = liftItems(lf, branchRest, node)
			cond.Branches = append(cond.Branches, branch)
		case "else":
			branch := ast.Branch[T]{Token: branchTok}
			branch.Items = liftItems(lf, branchRest, node)
			cond.Branches = append(cond.Branches, branch)
		default:
			lf.errorf(branchTok.Pos, "lift/ifsec", "unknown branch head %q", branchTok.Lexeme)
		}
	}
	if len(cond.Branches) > 0 {
		cond.Token = cond.Branches[0].Token
	}
	return cond
}

// liftAny lifts a tree as whichever entry-point kind its head belongs to.
// Todo children go through here, so unknown constructs keep typed, walkable
// children instead of dissolving into tokens.
func (lf *Lifter) liftAny(t fuzzy.Tree) ast.Any {
	if leaf, ok := t.(*fuzzy.Leaf); ok {
		switch leaf.Tok.Type {
		case token.INT, token.FLOAT, token.STRING, token.CHAR, token.IDENT:
			return ast.AnyExpr(lf.liftExpr(t))
		default:
			return ast.AnyToken(leaf.Tok)
		}
	}
	head := headAtom(t)
	switch {
	case declHeads[head]:
		item := ast.Elem[ast.Declaration](lf.liftDecl(t))
		return ast.AnyToplevel(&item)
	case stmtHeads[head]:
		return ast.AnyStmt(lf.liftStmt(t))
	case typeHeads[head]:
		return ast.AnyType(lf.liftType(t))
	case head == "name":
		return ast.AnyName(lf.liftName(t))
	case head == "d":
		return ast.AnyDeclarator(lf.liftDeclarator(t))
	case head == "param":
		return ast.AnyParameter(lf.liftParam(t))
	case head == "namedarg":
		return ast.AnyArgument(lf.liftArg(t))
	case directiveHeads[head] || head == "ifsec":
		return ast.AnyTokens(flattenTokens([]fuzzy.Tree{t}))
	}
	if _, ok := t.(*fuzzy.Angles); ok {
		// Angle groups carry no expression form; keep the raw run.
		return ast.AnyTokens(flattenTokens([]fuzzy.Tree{t}))
	}
	return ast.AnyExpr(lf.liftExpr(t))
}

func (lf *Lifter) liftSubs(trees []fuzzy.Tree) []ast.Any {
	var subs []ast.Any
	for _, t := range trees {
		subs = append(subs, lf.liftAny(t))
	}
	return subs
}
