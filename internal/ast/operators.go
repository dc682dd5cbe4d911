package ast

// BinaryOp is the operator of a BinaryExpression.
type BinaryOp uint8

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Shl
	Shr
	Lt
	Gt
	Le
	Ge
	Eq
	Ne
	BitAnd
	BitOr
	BitXor
	LogAnd
	LogOr
)

var binaryLexemes = map[BinaryOp]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%",
	Shl: "<<", Shr: ">>",
	Lt: "<", Gt: ">", Le: "<=", Ge: ">=", Eq: "==", Ne: "!=",
	BitAnd: "&", BitOr: "|", BitXor: "^",
	LogAnd: "&&", LogOr: "||",
}

func (op BinaryOp) String() string { return binaryLexemes[op] }

// UnaryOp is the operator of a UnaryExpression.
type UnaryOp uint8

const (
	UnaryPlus UnaryOp = iota
	UnaryMinus
	Not
	BitNot
	Deref
	AddrOf
	PreInc
	PreDec
)

var unaryLexemes = map[UnaryOp]string{
	UnaryPlus: "+", UnaryMinus: "-", Not: "!", BitNot: "~",
	Deref: "*", AddrOf: "&", PreInc: "++", PreDec: "--",
}

func (op UnaryOp) String() string { return unaryLexemes[op] }

// PostfixOp is the operator of a PostfixExpression.
type PostfixOp uint8

const (
	PostInc PostfixOp = iota
	PostDec
)

func (op PostfixOp) String() string {
	if op == PostDec {
		return "--"
	}
	return "++"
}

// AssignOp is the operator of an AssignExpression.
type AssignOp uint8

const (
	Assign AssignOp = iota
	AddAssign
	SubAssign
	MulAssign
	DivAssign
	ModAssign
	ShlAssign
	ShrAssign
	AndAssign
	OrAssign
	XorAssign
)

var assignLexemes = map[AssignOp]string{
	Assign: "=", AddAssign: "+=", SubAssign: "-=", MulAssign: "*=",
	DivAssign: "/=", ModAssign: "%=", ShlAssign: "<<=", ShrAssign: ">>=",
	AndAssign: "&=", OrAssign: "|=", XorAssign: "^=",
}

func (op AssignOp) String() string { return assignLexemes[op] }

var binaryByLexeme = invert(binaryLexemes)
var unaryByLexeme = invert(unaryLexemes)
var assignByLexeme = invert(assignLexemes)

func invert[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, s := range m {
		out[s] = k
	}
	return out
}

// BinaryOpFor maps an operator lexeme to its BinaryOp.
func BinaryOpFor(lexeme string) (BinaryOp, bool) {
	op, ok := binaryByLexeme[lexeme]
	return op, ok
}

// UnaryOpFor maps an operator lexeme to its UnaryOp. "+" and "-" map to the
// unary forms; "*" and "&" to Deref and AddrOf.
func UnaryOpFor(lexeme string) (UnaryOp, bool) {
	op, ok := unaryByLexeme[lexeme]
	return op, ok
}

// AssignOpFor maps an operator lexeme to its AssignOp.
func AssignOpFor(lexeme string) (AssignOp, bool) {
	op, ok := assignByLexeme[lexeme]
	return op, ok
}
