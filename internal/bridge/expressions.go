package bridge

import (
	"strconv"
	"unicode/utf8"

	"github.com/funvibe/syntree/internal/ast"
	"github.com/funvibe/syntree/internal/fuzzy"
	"github.com/funvibe/syntree/internal/token"
)

// liftExpr lifts a tree in expression position. Leaves are constants and
// identifiers; headless brackets and braces groups are list displays;
// unknown heads fall back to TodoExpression.
func (lf *Lifter) liftExpr(t fuzzy.Tree) ast.Expression {
	switch n := t.(type) {
	case *fuzzy.Leaf:
		return lf.liftLeafExpr(n)
	case *fuzzy.Brackets:
		return &ast.ListExpression{Token: n.Open, Elems: lf.liftExprs(n.Children)}
	case *fuzzy.Braces:
		return &ast.ListExpression{Token: n.Open, Elems: lf.liftExprs(n.Children)}
	case *fuzzy.Parens:
		return lf.liftParensExpr(n)
	}
	// Angles never carry expressions.
	return &ast.TodoExpression{Tag: tagOf(t), Sub: lf.liftSubs(fuzzy.Children(t))}
}

func (lf *Lifter) liftExprs(trees []fuzzy.Tree) []ast.Expression {
	var out []ast.Expression
	for _, t := range trees {
		out = append(out, lf.liftExpr(t))
	}
	return out
}

func (lf *Lifter) liftLeafExpr(leaf *fuzzy.Leaf) ast.Expression {
	tok := leaf.Tok
	switch tok.Type {
	case token.INT:
		v, err := strconv.ParseInt(tok.Lexeme, 0, 64)
		if err != nil {
			lf.warnf(tok.Pos, "lift/int", "cannot read %q as an integer", tok.Lexeme)
		}
		return &ast.IntConstant{Token: tok, Value: v}
	case token.FLOAT:
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			lf.warnf(tok.Pos, "lift/float", "cannot read %q as a float", tok.Lexeme)
		}
		return &ast.FloatConstant{Token: tok, Value: v}
	case token.STRING:
		return &ast.StringConstant{Token: tok, Value: tok.Lexeme}
	case token.CHAR:
		r, _ := utf8.DecodeRuneInString(tok.Lexeme)
		return &ast.CharConstant{Token: tok, Value: r}
	case token.IDENT:
		switch tok.Lexeme {
		case "true":
			return &ast.BoolConstant{Token: tok, Value: true}
		case "false":
			return &ast.BoolConstant{Token: tok, Value: false}
		case "null":
			return &ast.NullConstant{Token: tok}
		}
		return identOf(leaf)
	}
	return &ast.TodoExpression{Tag: ast.CategoryTag{Token: tok, Text: tok.Lexeme}}
}

func (lf *Lifter) liftParensExpr(g *fuzzy.Parens) ast.Expression {
	head, rest, ok := headed(g)
	if !ok {
		return &ast.TodoExpression{Tag: tagOf(g), Sub: lf.liftSubs(g.Children)}
	}

	switch head.Lexeme {
	case "name":
		return ast.ExprOf(lf.liftName(g))

	case "binary":
		if len(rest) != 3 {
			return lf.todoExpr(head, rest, "binary wants an operator and two operands")
		}
		opTok := rest[0].GetToken()
		op, known := ast.BinaryOpFor(opLexeme(opTok))
		if !known {
			return lf.todoExpr(head, rest, "unknown binary operator %q", opTok.Lexeme)
		}
		return &ast.BinaryExpression{
			Token: opTok,
			Op:    op,
			Left:  lf.liftExpr(rest[1]),
			Right: lf.liftExpr(rest[2]),
		}

	case "unary":
		if len(rest) != 2 {
			return lf.todoExpr(head, rest, "unary wants an operator and one operand")
		}
		opTok := rest[0].GetToken()
		op, known := ast.UnaryOpFor(opLexeme(opTok))
		if !known {
			return lf.todoExpr(head, rest, "unknown unary operator %q", opTok.Lexeme)
		}
		return &ast.UnaryExpression{Token: opTok, Op: op, Operand: lf.liftExpr(rest[1])}

	case "postfix":
		if len(rest) != 2 {
			return lf.todoExpr(head, rest, "postfix wants an operator and one operand")
		}
		opTok := rest[0].GetToken()
		var op ast.PostfixOp
		switch opTok.Lexeme {
		case "++":
			op = ast.PostInc
		case "--":
			op = ast.PostDec
		default:
			return lf.todoExpr(head, rest, "unknown postfix operator %q", opTok.Lexeme)
		}
		return &ast.PostfixExpression{Token: opTok, Op: op, Operand: lf.liftExpr(rest[1])}

	case "assign":
		if len(rest) != 3 {
			return lf.todoExpr(head, rest, "assign wants an operator, a target and a value")
		}
		opTok := rest[0].GetToken()
		op, known := ast.AssignOpFor(opLexeme(opTok))
		if !known {
			return lf.todoExpr(head, rest, "unknown assignment operator %q", opTok.Lexeme)
		}
		return &ast.AssignExpression{
			Token:  opTok,
			Op:     op,
			Target: lf.liftExpr(rest[1]),
			Value:  lf.liftExpr(rest[2]),
		}

	case "cond":
		if len(rest) != 3 {
			return lf.todoExpr(head, rest, "cond wants a condition and two arms")
		}
		expr := &ast.CondExpression{Token: head, Cond: lf.liftExpr(rest[0]), Else: lf.liftExpr(rest[2])}
		if !isBlank(rest[1]) {
			expr.Then = lf.liftExpr(rest[1])
		}
		return expr

	case "seq":
		if len(rest) < 2 {
			return lf.todoExpr(head, rest, "seq wants at least two operands")
		}
		// The comma operator associates left.
		expr := lf.liftExpr(rest[0])
		for _, t := range rest[1:] {
			expr = &ast.SequenceExpression{Token: head, Left: expr, Right: lf.liftExpr(t)}
		}
		return expr

	case "cast":
		if len(rest) != 2 {
			return lf.todoExpr(head, rest, "cast wants a type and an operand")
		}
		return &ast.CastExpression{Token: head, To: lf.liftType(rest[0]), Operand: lf.liftExpr(rest[1])}

	case "paren":
		if len(rest) != 1 {
			return lf.todoExpr(head, rest, "paren wants one inner expression")
		}
		return &ast.ParenExpression{Token: head, Inner: lf.liftExpr(rest[0])}

	case "call":
		if len(rest) < 1 {
			return lf.todoExpr(head, rest, "call wants a function")
		}
		call := &ast.CallExpression{Token: head, Function: lf.liftExpr(rest[0])}
		for _, a := range rest[1:] {
			call.Args = append(call.Args, lf.liftArg(a))
		}
		return call

	case "index":
		if len(rest) != 2 {
			return lf.todoExpr(head, rest, "index wants a target and an index")
		}
		return &ast.IndexExpression{Token: head, Target: lf.liftExpr(rest[0]), Index: lf.liftExpr(rest[1])}

	case "field", "arrow":
		if len(rest) != 2 {
			return lf.todoExpr(head, rest, "%s wants a target and a member name", head.Lexeme)
		}
		return &ast.FieldExpression{
			Token:  head,
			Arrow:  head.Lexeme == "arrow",
			Target: lf.liftExpr(rest[0]),
			Field:  lf.liftNameFrom(rest[1]),
		}

	case "sizeof":
		if len(rest) != 1 {
			return lf.todoExpr(head, rest, "sizeof wants one operand")
		}
		expr := &ast.SizeofExpression{Token: head}
		if typeHeads[headAtom(rest[0])] {
			expr.OfType = lf.liftType(rest[0])
		} else {
			expr.Operand = lf.liftExpr(rest[0])
		}
		return expr

	case "lambda":
		expr := &ast.LambdaExpression{Token: head}
		for len(rest) > 0 && headAtom(rest[0]) == "param" {
			expr.Params = append(expr.Params, lf.liftParam(rest[0]))
			rest = rest[1:]
		}
		if len(rest) != 1 {
			return lf.todoExpr(head, rest, "lambda wants parameters then one body block")
		}
		expr.Body = lf.liftBody(rest[0])
		return expr

	case "tuple":
		return &ast.TupleExpression{Token: head, Elems: lf.liftExprs(rest)}

	case "list":
		return &ast.ListExpression{Token: head, Elems: lf.liftExprs(rest)}

	case "stmtexpr":
		if len(rest) != 1 {
			return lf.todoExpr(head, rest, "stmtexpr wants one body block")
		}
		return &ast.StmtExpression{Token: head, Body: lf.liftBody(rest[0])}
	}

	return &ast.TodoExpression{
		Tag: ast.CategoryTag{Token: head, Text: head.Lexeme},
		Sub: lf.liftSubs(rest),
	}
}

// todoExpr records a malformed known form and keeps its children.
func (lf *Lifter) todoExpr(head token.Token, rest []fuzzy.Tree, format string, args ...any) ast.Expression {
	lf.errorf(head.Pos, "lift/expr", format, args...)
	return &ast.TodoExpression{
		Tag: ast.CategoryTag{Token: head, Text: head.Lexeme},
		Sub: lf.liftSubs(rest),
	}
}

// liftArg lifts one call argument: (namedarg name value) is a keyword
// argument, anything else is positional.
func (lf *Lifter) liftArg(t fuzzy.Tree) ast.Argument {
	if headAtom(t) != "namedarg" {
		return ast.ArgOf(lf.liftExpr(t))
	}
	head, rest, _ := headed(t)
	if len(rest) != 2 {
		lf.errorf(head.Pos, "lift/arg", "namedarg wants a name and a value")
		return ast.ArgOf(&ast.TodoExpression{
			Tag: ast.CategoryTag{Token: head, Text: head.Lexeme},
			Sub: lf.liftSubs(rest),
		})
	}
	name, ok := atomLeaf(rest[0])
	if !ok {
		lf.errorf(head.Pos, "lift/arg", "namedarg name must be an atom")
		return ast.ArgOf(lf.liftExpr(rest[1]))
	}
	return &ast.NamedArgument{Token: name.Tok, Name: identOf(name), Value: lf.liftExpr(rest[1])}
}
