package ast

import "github.com/funvibe/syntree/internal/token"

// ExprStatement is an expression used as a statement. A nil Expr is the
// empty statement ';'.
type ExprStatement struct {
	Token token.Token // first token of the expression, or the ';'
	Expr  Expression
}

func (es *ExprStatement) statementNode()        {}
func (es *ExprStatement) TokenLiteral() string  { return es.Token.Lexeme }
func (es *ExprStatement) GetToken() token.Token { return es.Token }

// CompoundStatement represents a braced block. Items is a sequence, so
// preprocessor material interleaves with the statements in source order.
type CompoundStatement struct {
	Lbrace token.Token // the '{' token
	Items  []StmtItem
	Rbrace token.Token // the '}' token
}

func (cs *CompoundStatement) statementNode()       {}
func (cs *CompoundStatement) TokenLiteral() string { return cs.Lbrace.Lexeme }
func (cs *CompoundStatement) GetToken() token.Token {
	if cs == nil {
		return token.Token{}
	}
	return cs.Lbrace
}

// Body is the block form used by entry points that carry a function body
// rather than an arbitrary statement.
type Body = CompoundStatement

// IfStatement represents if/else.
type IfStatement struct {
	Token token.Token // the 'if' token
	Cond  Expression
	Then  Statement
	Else  Statement // nil when absent
}

func (is *IfStatement) statementNode()        {}
func (is *IfStatement) TokenLiteral() string  { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token { return is.Token }

// WhileStatement represents a while loop.
type WhileStatement struct {
	Token token.Token // the 'while' token
	Cond  Expression
	Body  Statement
}

func (ws *WhileStatement) statementNode()        {}
func (ws *WhileStatement) TokenLiteral() string  { return ws.Token.Lexeme }
func (ws *WhileStatement) GetToken() token.Token { return ws.Token }

// DoStatement represents do/while.
type DoStatement struct {
	Token token.Token // the 'do' token
	Body  Statement
	Cond  Expression
}

func (ds *DoStatement) statementNode()        {}
func (ds *DoStatement) TokenLiteral() string  { return ds.Token.Lexeme }
func (ds *DoStatement) GetToken() token.Token { return ds.Token }

// ForStatement represents the three-clause for loop. Init is a statement so
// it can be either an expression statement or a declaration; any clause can
// be nil.
type ForStatement struct {
	Token token.Token // the 'for' token
	Init  Statement
	Cond  Expression
	Post  Expression
	Body  Statement
}

func (fs *ForStatement) statementNode()        {}
func (fs *ForStatement) TokenLiteral() string  { return fs.Token.Lexeme }
func (fs *ForStatement) GetToken() token.Token { return fs.Token }

// ForEachStatement represents iteration over a sequence: range-for or
// for-in. The loop variable is either a fresh declaration (Decl) or an
// assignable target expression (Target); exactly one is set.
type ForEachStatement struct {
	Token  token.Token // the 'for' token
	Decl   *Declarator
	Target Expression
	Iter   Expression
	Body   Statement
}

func (fs *ForEachStatement) statementNode()        {}
func (fs *ForEachStatement) TokenLiteral() string  { return fs.Token.Lexeme }
func (fs *ForEachStatement) GetToken() token.Token { return fs.Token }

// ReturnStatement represents return, with an optional value.
type ReturnStatement struct {
	Token token.Token // the 'return' token
	Value Expression
}

func (rs *ReturnStatement) statementNode()        {}
func (rs *ReturnStatement) TokenLiteral() string  { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token { return rs.Token }

// BreakStatement represents break.
type BreakStatement struct {
	Token token.Token // the 'break' token
}

func (bs *BreakStatement) statementNode()        {}
func (bs *BreakStatement) TokenLiteral() string  { return bs.Token.Lexeme }
func (bs *BreakStatement) GetToken() token.Token { return bs.Token }

// ContinueStatement represents continue.
type ContinueStatement struct {
	Token token.Token // the 'continue' token
}

func (cs *ContinueStatement) statementNode()        {}
func (cs *ContinueStatement) TokenLiteral() string  { return cs.Token.Lexeme }
func (cs *ContinueStatement) GetToken() token.Token { return cs.Token }

// GotoStatement represents goto label.
type GotoStatement struct {
	Token token.Token // the 'goto' token
	Label *Identifier
}

func (gs *GotoStatement) statementNode()        {}
func (gs *GotoStatement) TokenLiteral() string  { return gs.Token.Lexeme }
func (gs *GotoStatement) GetToken() token.Token { return gs.Token }

// LabeledStatement represents label: stmt.
type LabeledStatement struct {
	Token token.Token // the label token
	Label *Identifier
	Stmt  Statement
}

func (ls *LabeledStatement) statementNode()        {}
func (ls *LabeledStatement) TokenLiteral() string  { return ls.Token.Lexeme }
func (ls *LabeledStatement) GetToken() token.Token { return ls.Token }

// SwitchStatement represents switch. Case and default labels appear as
// statements inside the body, as the source had them.
type SwitchStatement struct {
	Token token.Token // the 'switch' token
	Cond  Expression
	Body  Statement
}

func (ss *SwitchStatement) statementNode()        {}
func (ss *SwitchStatement) TokenLiteral() string  { return ss.Token.Lexeme }
func (ss *SwitchStatement) GetToken() token.Token { return ss.Token }

// CaseStatement represents case expr: stmt.
type CaseStatement struct {
	Token token.Token // the 'case' token
	Value Expression
	Stmt  Statement
}

func (cs *CaseStatement) statementNode()        {}
func (cs *CaseStatement) TokenLiteral() string  { return cs.Token.Lexeme }
func (cs *CaseStatement) GetToken() token.Token { return cs.Token }

// DefaultStatement represents default: stmt.
type DefaultStatement struct {
	Token token.Token // the 'default' token
	Stmt  Statement
}

func (ds *DefaultStatement) statementNode()        {}
func (ds *DefaultStatement) TokenLiteral() string  { return ds.Token.Lexeme }
func (ds *DefaultStatement) GetToken() token.Token { return ds.Token }

// TryStatement represents try with handlers and an optional finally block.
type TryStatement struct {
	Token    token.Token // the 'try' token
	Body     *CompoundStatement
	Handlers []*Handler
	Finally  *CompoundStatement
}

func (ts *TryStatement) statementNode()        {}
func (ts *TryStatement) TokenLiteral() string  { return ts.Token.Lexeme }
func (ts *TryStatement) GetToken() token.Token { return ts.Token }

// Handler is one catch clause. A nil Param is catch-all.
type Handler struct {
	Token token.Token // the 'catch' token
	Param *Parameter
	Body  *CompoundStatement
}

func (h *Handler) TokenLiteral() string { return h.Token.Lexeme }
func (h *Handler) GetToken() token.Token {
	if h == nil {
		return token.Token{}
	}
	return h.Token
}

// DeclStatement is a declaration in statement position, e.g. a local
// variable.
type DeclStatement struct {
	Token token.Token // first token of the declaration
	Decl  Declaration
}

func (ds *DeclStatement) statementNode()        {}
func (ds *DeclStatement) TokenLiteral() string  { return ds.Token.Lexeme }
func (ds *DeclStatement) GetToken() token.Token { return ds.Token }

// TodoStatement is the statement escape hatch. Recovered children stay
// ordinary nodes and are still traversed.
type TodoStatement struct {
	Tag CategoryTag
	Sub []Any
}

func (ts *TodoStatement) statementNode()        {}
func (ts *TodoStatement) TokenLiteral() string  { return ts.Tag.Token.Lexeme }
func (ts *TodoStatement) GetToken() token.Token { return ts.Tag.Token }

var _ = []Statement{
	(*ExprStatement)(nil), (*CompoundStatement)(nil), (*IfStatement)(nil),
	(*WhileStatement)(nil), (*DoStatement)(nil), (*ForStatement)(nil),
	(*ForEachStatement)(nil), (*ReturnStatement)(nil), (*BreakStatement)(nil),
	(*ContinueStatement)(nil), (*GotoStatement)(nil), (*LabeledStatement)(nil),
	(*SwitchStatement)(nil), (*CaseStatement)(nil), (*DefaultStatement)(nil),
	(*TryStatement)(nil), (*DeclStatement)(nil), (*TodoStatement)(nil),
}
