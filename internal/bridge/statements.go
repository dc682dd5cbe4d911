package bridge

import (
	"github.com/funvibe/syntree/internal/ast"
	"github.com/funvibe/syntree/internal/fuzzy"
	"github.com/funvibe/syntree/internal/token"
)

// liftStmt lifts a tree in statement position. A braces group is a compound
// statement; declaration heads wrap in DeclStatement; expression material
// wraps in ExprStatement; unknown heads fall back to TodoStatement.
func (lf *Lifter) liftStmt(t fuzzy.Tree) ast.Statement {
	if braces, ok := t.(*fuzzy.Braces); ok {
		return lf.liftCompound(braces)
	}
	head, rest, ok := headed(t)
	if !ok {
		return &ast.ExprStatement{Token: t.GetToken(), Expr: lf.liftExpr(t)}
	}

	switch head.Lexeme {
	case "nop":
		return &ast.ExprStatement{Token: head}

	case "if":
		if len(rest) != 2 && len(rest) != 3 {
			return lf.todoStmt(head, rest, "if wants a condition, a then arm and an optional else arm")
		}
		stmt := &ast.IfStatement{Token: head, Cond: lf.liftExpr(rest[0]), Then: lf.liftStmt(rest[1])}
		if len(rest) == 3 {
			stmt.Else = lf.liftStmt(rest[2])
		}
		return stmt

	case "while":
		if len(rest) != 2 {
			return lf.todoStmt(head, rest, "while wants a condition and a body")
		}
		return &ast.WhileStatement{Token: head, Cond: lf.liftExpr(rest[0]), Body: lf.liftStmt(rest[1])}

	case "do":
		if len(rest) != 2 {
			return lf.todoStmt(head, rest, "do wants a body and a condition")
		}
		return &ast.DoStatement{Token: head, Body: lf.liftStmt(rest[0]), Cond: lf.liftExpr(rest[1])}

	case "for":
		if len(rest) != 4 {
			return lf.todoStmt(head, rest, "for wants init, condition, post and body slots")
		}
		stmt := &ast.ForStatement{Token: head, Body: lf.liftStmt(rest[3])}
		if !isBlank(rest[0]) {
			stmt.Init = lf.liftStmt(rest[0])
		}
		if !isBlank(rest[1]) {
			stmt.Cond = lf.liftExpr(rest[1])
		}
		if !isBlank(rest[2]) {
			stmt.Post = lf.liftExpr(rest[2])
		}
		return stmt

	case "foreach":
		if len(rest) != 3 {
			return lf.todoStmt(head, rest, "foreach wants a loop variable, an iterable and a body")
		}
		stmt := &ast.ForEachStatement{Token: head, Iter: lf.liftExpr(rest[1]), Body: lf.liftStmt(rest[2])}
		if headAtom(rest[0]) == "d" {
			stmt.Decl = lf.liftDeclarator(rest[0])
		} else {
			stmt.Target = lf.liftExpr(rest[0])
		}
		return stmt

	case "return":
		stmt := &ast.ReturnStatement{Token: head}
		switch len(rest) {
		case 0:
		case 1:
			stmt.Value = lf.liftExpr(rest[0])
		default:
			return lf.todoStmt(head, rest, "return wants at most one value")
		}
		return stmt

	case "break":
		return &ast.BreakStatement{Token: head}

	case "continue":
		return &ast.ContinueStatement{Token: head}

	case "goto":
		if len(rest) != 1 {
			return lf.todoStmt(head, rest, "goto wants a label")
		}
		label, ok := atomLeaf(rest[0])
		if !ok {
			return lf.todoStmt(head, rest, "goto label must be an atom")
		}
		return &ast.GotoStatement{Token: head, Label: identOf(label)}

	case "label":
		if len(rest) != 2 {
			return lf.todoStmt(head, rest, "label wants a name and a statement")
		}
		name, ok := atomLeaf(rest[0])
		if !ok {
			return lf.todoStmt(head, rest, "label name must be an atom")
		}
		return &ast.LabeledStatement{Token: name.Tok, Label: identOf(name), Stmt: lf.liftStmt(rest[1])}

	case "switch":
		if len(rest) != 2 {
			return lf.todoStmt(head, rest, "switch wants a condition and a body")
		}
		return &ast.SwitchStatement{Token: head, Cond: lf.liftExpr(rest[0]), Body: lf.liftStmt(rest[1])}

	case "case":
		if len(rest) != 1 && len(rest) != 2 {
			return lf.todoStmt(head, rest, "case wants a value and an optional statement")
		}
		stmt := &ast.CaseStatement{Token: head, Value: lf.liftExpr(rest[0])}
		if len(rest) == 2 {
			stmt.Stmt = lf.liftStmt(rest[1])
		}
		return stmt

	case "default":
		stmt := &ast.DefaultStatement{Token: head}
		switch len(rest) {
		case 0:
		case 1:
			stmt.Stmt = lf.liftStmt(rest[0])
		default:
			return lf.todoStmt(head, rest, "default wants at most one statement")
		}
		return stmt

	case "try":
		return lf.liftTry(head, rest)
	}

	if declHeads[head.Lexeme] {
		return &ast.DeclStatement{Token: head, Decl: lf.liftDecl(t)}
	}
	if exprHeads[head.Lexeme] {
		return &ast.ExprStatement{Token: head, Expr: lf.liftExpr(t)}
	}
	return &ast.TodoStatement{
		Tag: ast.CategoryTag{Token: head, Text: head.Lexeme},
		Sub: lf.liftSubs(rest),
	}
}

func (lf *Lifter) todoStmt(head token.Token, rest []fuzzy.Tree, format string, args ...any) ast.Statement {
	lf.errorf(head.Pos, "lift/stmt", format, args...)
	return &ast.TodoStatement{
		Tag: ast.CategoryTag{Token: head, Text: head.Lexeme},
		Sub: lf.liftSubs(rest),
	}
}

func (lf *Lifter) liftTry(head token.Token, rest []fuzzy.Tree) ast.Statement {
	if len(rest) == 0 {
		return lf.todoStmt(head, rest, "try wants a body block")
	}
	stmt := &ast.TryStatement{Token: head, Body: lf.liftBody(rest[0])}
	for _, t := range rest[1:] {
		clauseTok, clauseRest, ok := headed(t)
		if !ok {
			lf.errorf(t.GetToken().Pos, "lift/try", "expected a handler or finally group")
			continue
		}
		switch clauseTok.Lexeme {
		case "handler":
			h := &ast.Handler{Token: clauseTok}
			if len(clauseRest) > 0 && headAtom(clauseRest[0]) == "param" {
				h.Param = lf.liftParam(clauseRest[0])
				clauseRest = clauseRest[1:]
			}
			if len(clauseRest) != 1 {
				lf.errorf(clauseTok.Pos, "lift/try", "handler wants an optional param then one body block")
				continue
			}
			h.Body = lf.liftBody(clauseRest[0])
			stmt.Handlers = append(stmt.Handlers, h)
		case "finally":
			if len(clauseRest) != 1 {
				lf.errorf(clauseTok.Pos, "lift/try", "finally wants one body block")
				continue
			}
			stmt.Finally = lf.liftBody(clauseRest[0])
		default:
			lf.errorf(clauseTok.Pos, "lift/try", "unknown try clause %q", clauseTok.Lexeme)
		}
	}
	return stmt
}

// liftCompound lifts a braces group into a compound statement; the item
// sequence keeps directives and conditional regions in source order.
func (lf *Lifter) liftCompound(braces *fuzzy.Braces) *ast.CompoundStatement {
	return &ast.CompoundStatement{
		Lbrace: braces.Open,
		Items:  liftItems(lf, braces.Children, lf.liftStmt),
		Rbrace: braces.Close,
	}
}

// liftBody lifts a tree that must be a braces block, e.g. a function or
// handler body. Anything else is kept, wrapped as the block's only item.
func (lf *Lifter) liftBody(t fuzzy.Tree) *ast.CompoundStatement {
	if braces, ok := t.(*fuzzy.Braces); ok {
		return lf.liftCompound(braces)
	}
	lf.errorf(t.GetToken().Pos, "lift/body", "expected a {...} block")
	return &ast.CompoundStatement{
		Lbrace: t.GetToken(),
		Items:  []ast.StmtItem{ast.Elem[ast.Statement](lf.liftStmt(t))},
	}
}
