package ast

import "github.com/funvibe/syntree/internal/token"

// Hooks configures a Walker with one optional slot per node family. A nil
// slot means default traversal for that family. A hook receives the node and
// a continuation k that performs the default child traversal for exactly
// that node: call k to recurse as usual, skip it to prune the subtree, or do
// work on either side of the call. Traversal is effect-only; hooks
// accumulate results through their own closures.
//
// All slots of one Walker share one recursion, so entering at any family
// still fires the hooks of every family the recursion reaches: walking a
// statement fires Expr hooks for the expressions under it, Type hooks for
// types under those, and so on.
//
// Identifiers in binding position (declarator, parameter, enumerator and
// label names, import paths) are data of their parent node, not expression
// visits; only identifier uses in expression position reach the Expr slot.
// Operator tokens of composite expressions and the raw token lists carried
// by directives are forwarded to the Token slot; a leaf node's own token is
// not, the leaf's family visit already covers it.
type Hooks struct {
	Expr       func(k func(Expression), e Expression)
	Stmt       func(k func(Statement), s Statement)
	Type       func(k func(Type), t Type)
	Decl       func(k func(Declaration), d Declaration)
	Declarator func(k func(*Declarator), d *Declarator)
	Name       func(k func(*Name), n *Name)
	Param      func(k func(*Parameter), p *Parameter)
	Arg        func(k func(Argument), a Argument)
	Directive  func(k func(Directive), d Directive)
	Token      func(k func(token.Token), t token.Token)
}

// Walker binds one hook set to one coherent set of recursive visit
// functions.
type Walker struct {
	hooks Hooks
}

// NewWalker builds a Walker for the given hooks. The zero Hooks value gives
// the pure default traversal, which visits everything and does nothing.
func NewWalker(h Hooks) *Walker { return &Walker{hooks: h} }

// Walk runs a one-shot traversal of any entry point with the given hooks.
func Walk(h Hooks, a Any) { NewWalker(h).WalkAny(a) }

// WalkAny dispatches to the family the Any carries.
func (w *Walker) WalkAny(a Any) {
	switch a.Kind {
	case ExprAny:
		w.WalkExpr(a.Expr)
	case StmtAny:
		w.WalkStmt(a.Stmt)
	case StmtsAny:
		w.WalkStmts(a.Stmts)
	case ToplevelAny:
		if a.Toplevel != nil {
			w.walkDeclItem(*a.Toplevel)
		}
	case ProgramAny:
		w.WalkProgram(a.Program)
	case DeclaratorAny:
		w.WalkDeclarator(a.Declarator)
	case TypeAny:
		w.WalkType(a.Type)
	case NameAny:
		w.WalkName(a.Name)
	case ConstantAny:
		w.WalkConstant(a.Constant)
	case ArgumentAny:
		w.WalkArg(a.Argument)
	case ParameterAny:
		w.WalkParam(a.Parameter)
	case BodyAny:
		w.WalkBody(a.Body)
	case TokenAny:
		if a.Token != nil {
			w.WalkToken(*a.Token)
		}
	case TokensAny:
		w.WalkTokens(a.Tokens)
	}
}

// WalkProgram walks every toplevel item of a unit.
func (w *Walker) WalkProgram(p *Program) {
	if p == nil {
		return
	}
	walkSeq(w, p.Items, w.WalkDecl)
}

// WalkConstant visits a constant leaf. Constants are expressions, so this
// routes through the Expr slot.
func (w *Walker) WalkConstant(c Constant) {
	if c == nil {
		return
	}
	w.WalkExpr(c)
}

// WalkBody walks a block entry point as a statement.
func (w *Walker) WalkBody(b *Body) {
	if b == nil {
		return
	}
	w.WalkStmt(b)
}

// WalkStmts walks a plain statement list.
func (w *Walker) WalkStmts(ss []Statement) {
	for _, s := range ss {
		w.WalkStmt(s)
	}
}

// WalkTokens walks a raw token list.
func (w *Walker) WalkTokens(ts []token.Token) {
	for _, t := range ts {
		w.WalkToken(t)
	}
}

func (w *Walker) WalkExpr(e Expression) {
	if e == nil {
		return
	}
	if h := w.hooks.Expr; h != nil {
		h(w.exprChildren, e)
		return
	}
	w.exprChildren(e)
}

func (w *Walker) WalkStmt(s Statement) {
	if s == nil {
		return
	}
	if h := w.hooks.Stmt; h != nil {
		h(w.stmtChildren, s)
		return
	}
	w.stmtChildren(s)
}

func (w *Walker) WalkType(t Type) {
	if t == nil {
		return
	}
	if h := w.hooks.Type; h != nil {
		h(w.typeChildren, t)
		return
	}
	w.typeChildren(t)
}

func (w *Walker) WalkDecl(d Declaration) {
	if d == nil {
		return
	}
	if h := w.hooks.Decl; h != nil {
		h(w.declChildren, d)
		return
	}
	w.declChildren(d)
}

func (w *Walker) WalkDeclarator(d *Declarator) {
	if d == nil {
		return
	}
	if h := w.hooks.Declarator; h != nil {
		h(w.declaratorChildren, d)
		return
	}
	w.declaratorChildren(d)
}

func (w *Walker) WalkName(n *Name) {
	if n == nil {
		return
	}
	if h := w.hooks.Name; h != nil {
		h(w.nameChildren, n)
		return
	}
	w.nameChildren(n)
}

func (w *Walker) WalkParam(p *Parameter) {
	if p == nil {
		return
	}
	if h := w.hooks.Param; h != nil {
		h(w.paramChildren, p)
		return
	}
	w.paramChildren(p)
}

func (w *Walker) WalkArg(a Argument) {
	if a == nil {
		return
	}
	if h := w.hooks.Arg; h != nil {
		h(w.argChildren, a)
		return
	}
	w.argChildren(a)
}

func (w *Walker) WalkDirective(d Directive) {
	if d == nil {
		return
	}
	if h := w.hooks.Directive; h != nil {
		h(w.directiveChildren, d)
		return
	}
	w.directiveChildren(d)
}

func (w *Walker) WalkToken(t token.Token) {
	if h := w.hooks.Token; h != nil {
		h(func(token.Token) {}, t)
	}
}

// exprChildren is the default recursion for expressions, children in source
// order.
func (w *Walker) exprChildren(e Expression) {
	switch n := e.(type) {
	case *Identifier, *IntConstant, *FloatConstant, *CharConstant,
		*StringConstant, *BoolConstant, *NullConstant:
		// leaves
	case *NameExpression:
		w.WalkName(n.Name)
	case *ParenExpression:
		w.WalkExpr(n.Inner)
	case *CallExpression:
		w.WalkExpr(n.Function)
		for _, a := range n.Args {
			w.WalkArg(a)
		}
	case *BinaryExpression:
		w.WalkExpr(n.Left)
		w.WalkToken(n.Token)
		w.WalkExpr(n.Right)
	case *UnaryExpression:
		w.WalkToken(n.Token)
		w.WalkExpr(n.Operand)
	case *PostfixExpression:
		w.WalkExpr(n.Operand)
		w.WalkToken(n.Token)
	case *AssignExpression:
		w.WalkExpr(n.Target)
		w.WalkToken(n.Token)
		w.WalkExpr(n.Value)
	case *CondExpression:
		w.WalkExpr(n.Cond)
		w.WalkToken(n.Token)
		w.WalkExpr(n.Then)
		w.WalkExpr(n.Else)
	case *SequenceExpression:
		w.WalkExpr(n.Left)
		w.WalkToken(n.Token)
		w.WalkExpr(n.Right)
	case *CastExpression:
		w.WalkType(n.To)
		w.WalkExpr(n.Operand)
	case *IndexExpression:
		w.WalkExpr(n.Target)
		w.WalkExpr(n.Index)
	case *FieldExpression:
		w.WalkExpr(n.Target)
		w.WalkName(n.Field)
	case *SizeofExpression:
		w.WalkType(n.OfType)
		w.WalkExpr(n.Operand)
	case *LambdaExpression:
		for _, p := range n.Params {
			w.WalkParam(p)
		}
		w.WalkBody(n.Body)
	case *TupleExpression:
		for _, el := range n.Elems {
			w.WalkExpr(el)
		}
	case *ListExpression:
		for _, el := range n.Elems {
			w.WalkExpr(el)
		}
	case *StmtExpression:
		w.WalkBody(n.Body)
	case *TodoExpression:
		for _, s := range n.Sub {
			w.WalkAny(s)
		}
	}
}

// stmtChildren is the default recursion for statements.
func (w *Walker) stmtChildren(s Statement) {
	switch n := s.(type) {
	case *ExprStatement:
		w.WalkExpr(n.Expr)
	case *CompoundStatement:
		walkSeq(w, n.Items, w.WalkStmt)
	case *IfStatement:
		w.WalkExpr(n.Cond)
		w.WalkStmt(n.Then)
		w.WalkStmt(n.Else)
	case *WhileStatement:
		w.WalkExpr(n.Cond)
		w.WalkStmt(n.Body)
	case *DoStatement:
		w.WalkStmt(n.Body)
		w.WalkExpr(n.Cond)
	case *ForStatement:
		w.WalkStmt(n.Init)
		w.WalkExpr(n.Cond)
		w.WalkExpr(n.Post)
		w.WalkStmt(n.Body)
	case *ForEachStatement:
		w.WalkDeclarator(n.Decl)
		w.WalkExpr(n.Target)
		w.WalkExpr(n.Iter)
		w.WalkStmt(n.Body)
	case *ReturnStatement:
		w.WalkExpr(n.Value)
	case *BreakStatement, *ContinueStatement, *GotoStatement:
		// leaves; goto's label is a binding-position identifier
	case *LabeledStatement:
		w.WalkStmt(n.Stmt)
	case *SwitchStatement:
		w.WalkExpr(n.Cond)
		w.WalkStmt(n.Body)
	case *CaseStatement:
		w.WalkExpr(n.Value)
		w.WalkStmt(n.Stmt)
	case *DefaultStatement:
		w.WalkStmt(n.Stmt)
	case *TryStatement:
		w.WalkBody(n.Body)
		for _, h := range n.Handlers {
			if h == nil {
				continue
			}
			w.WalkParam(h.Param)
			w.WalkBody(h.Body)
		}
		w.WalkBody(n.Finally)
	case *DeclStatement:
		w.WalkDecl(n.Decl)
	case *TodoStatement:
		for _, sub := range n.Sub {
			w.WalkAny(sub)
		}
	}
}

// typeChildren is the default recursion for types.
func (w *Walker) typeChildren(t Type) {
	switch n := t.(type) {
	case *BuiltinType:
		// leaf
	case *NamedType:
		w.WalkName(n.Name)
	case *PointerType:
		w.WalkType(n.Elem)
	case *ReferenceType:
		w.WalkType(n.Elem)
	case *ArrayType:
		w.WalkType(n.Elem)
		w.WalkExpr(n.Size)
	case *FunctionType:
		w.WalkType(n.Ret)
		for _, p := range n.Params {
			w.WalkParam(p)
		}
	case *QualifiedType:
		w.WalkType(n.Elem)
	case *EnumType:
		for _, it := range n.Items {
			if it != nil {
				w.WalkExpr(it.Value)
			}
		}
	case *ClassType:
		for _, b := range n.Bases {
			w.WalkName(b)
		}
		walkSeq(w, n.Members, w.WalkDecl)
	case *TypeOfType:
		w.WalkExpr(n.Expr)
	case *TodoType:
		for _, sub := range n.Sub {
			w.WalkAny(sub)
		}
	}
}

// declChildren is the default recursion for declarations.
func (w *Walker) declChildren(d Declaration) {
	switch n := d.(type) {
	case *VarDeclaration:
		for _, dc := range n.Decls {
			w.WalkDeclarator(dc)
		}
	case *FunctionDefinition:
		w.WalkName(n.Name)
		if n.Sig != nil {
			w.WalkType(n.Sig)
		}
		w.WalkBody(n.Body)
	case *TypedefDeclaration:
		w.WalkType(n.T)
	case *TypeDeclaration:
		w.WalkType(n.T)
	case *NamespaceDeclaration:
		walkSeq(w, n.Body, w.WalkDecl)
	case *TemplateDeclaration:
		for _, tp := range n.Params {
			if tp != nil && tp.T != nil {
				w.WalkType(tp.T)
			}
		}
		w.WalkDecl(n.Decl)
	case *UsingDeclaration:
		w.WalkName(n.Name)
	case *ImportDeclaration:
		// leaf; the path and symbols are binding-position identifiers
	case *TodoDeclaration:
		for _, sub := range n.Sub {
			w.WalkAny(sub)
		}
	}
}

func (w *Walker) declaratorChildren(d *Declarator) {
	w.WalkType(d.T)
	w.WalkExpr(d.Init)
}

func (w *Walker) nameChildren(n *Name) {
	for _, q := range n.Qualifiers {
		if tq, ok := q.(*TemplateQualifier); ok {
			w.walkTemplateArgs(tq.Args)
		}
	}
	switch id := n.ID.(type) {
	case *TemplateID:
		w.walkTemplateArgs(id.Args)
	case *ConverterID:
		w.WalkType(id.To)
	}
}

func (w *Walker) walkTemplateArgs(args []TemplateArg) {
	for _, a := range args {
		switch a := a.(type) {
		case *TypeArg:
			w.WalkType(a.T)
		case *ExprArg:
			w.WalkExpr(a.E)
		}
	}
}

func (w *Walker) paramChildren(p *Parameter) {
	w.WalkType(p.T)
	w.WalkExpr(p.Default)
}

func (w *Walker) argChildren(a Argument) {
	switch n := a.(type) {
	case *ExprArgument:
		w.WalkExpr(n.E)
	case *NamedArgument:
		w.WalkExpr(n.Value)
	}
}

func (w *Walker) directiveChildren(d Directive) {
	switch n := d.(type) {
	case *IncludeDirective, *PragmaDirective:
		// leaves
	case *DefineDirective:
		w.WalkTokens(n.Body)
	case *MacroDirective:
		w.WalkTokens(n.Args)
	}
}

func (w *Walker) walkDeclItem(it DeclItem) {
	walkSeq(w, []DeclItem{it}, w.WalkDecl)
}

// walkSeq walks one sequence: nodes through the family dispatcher, directives
// through the Directive slot, and every branch of a conditional, condition
// tokens included.
func walkSeq[T Node](w *Walker, items []SeqItem[T], elem func(T)) {
	for _, it := range items {
		switch it.Kind {
		case SeqNode:
			elem(it.Node)
		case SeqDirective:
			w.WalkDirective(it.Dir)
		case SeqConditional:
			if it.Cond == nil {
				continue
			}
			for _, br := range it.Cond.Branches {
				w.WalkTokens(br.Cond)
				walkSeq(w, br.Items, elem)
			}
		}
	}
}
