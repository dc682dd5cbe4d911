package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/syntree/internal/ast"
	"github.com/funvibe/syntree/internal/fuzzy"
	"github.com/funvibe/syntree/internal/token"
)

// liftOneExpr reads src as a single tree and lifts it in expression
// position.
func liftOneExpr(t *testing.T, src string) (ast.Expression, *Lifter) {
	t.Helper()
	trees, diags := fuzzy.Read("test.sexp", src)
	require.Empty(t, diags, "dump text must read cleanly")
	require.Len(t, trees, 1)
	lf := NewLifter("test.sexp")
	return lf.liftExpr(trees[0]), lf
}

func TestLiftConstants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, e ast.Expression)
	}{
		{"int", "42", func(t *testing.T, e ast.Expression) {
			c := e.(*ast.IntConstant)
			assert.Equal(t, int64(42), c.Value)
			assert.Equal(t, "42", c.TokenLiteral())
		}},
		{"hex_int", "0x10", func(t *testing.T, e ast.Expression) {
			assert.Equal(t, int64(16), e.(*ast.IntConstant).Value)
		}},
		{"negative_int", "-7", func(t *testing.T, e ast.Expression) {
			assert.Equal(t, int64(-7), e.(*ast.IntConstant).Value)
		}},
		{"float", "2.5", func(t *testing.T, e ast.Expression) {
			assert.Equal(t, 2.5, e.(*ast.FloatConstant).Value)
		}},
		{"string", `"hi"`, func(t *testing.T, e ast.Expression) {
			assert.Equal(t, "hi", e.(*ast.StringConstant).Value)
		}},
		{"char", "'a'", func(t *testing.T, e ast.Expression) {
			assert.Equal(t, 'a', e.(*ast.CharConstant).Value)
		}},
		{"true", "true", func(t *testing.T, e ast.Expression) {
			assert.True(t, e.(*ast.BoolConstant).Value)
		}},
		{"false", "false", func(t *testing.T, e ast.Expression) {
			assert.False(t, e.(*ast.BoolConstant).Value)
		}},
		{"null", "null", func(t *testing.T, e ast.Expression) {
			assert.IsType(t, &ast.NullConstant{}, e)
		}},
		{"identifier", "x", func(t *testing.T, e ast.Expression) {
			id := e.(*ast.Identifier)
			assert.Equal(t, "x", id.Value)
			assert.Equal(t, ast.NotResolved, id.Resolved.Kind())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, lf := liftOneExpr(t, tt.input)
			require.Empty(t, lf.Diags())
			tt.check(t, e)
		})
	}
}

func TestLiftOperatorExpressions(t *testing.T) {
	t.Run("binary", func(t *testing.T) {
		e, lf := liftOneExpr(t, "(binary + a b)")
		require.Empty(t, lf.Diags())
		bin := e.(*ast.BinaryExpression)
		assert.Equal(t, ast.Add, bin.Op)
		assert.Equal(t, "+", bin.Token.Lexeme)
		assert.Equal(t, "a", bin.Left.(*ast.Identifier).Value)
		assert.Equal(t, "b", bin.Right.(*ast.Identifier).Value)
	})

	t.Run("unary_minus", func(t *testing.T) {
		e, _ := liftOneExpr(t, "(unary - x)")
		un := e.(*ast.UnaryExpression)
		assert.Equal(t, ast.UnaryMinus, un.Op)
	})

	t.Run("unary_deref", func(t *testing.T) {
		e, _ := liftOneExpr(t, "(unary * p)")
		assert.Equal(t, ast.Deref, e.(*ast.UnaryExpression).Op)
	})

	t.Run("postfix", func(t *testing.T) {
		e, _ := liftOneExpr(t, "(postfix ++ i)")
		assert.Equal(t, ast.PostInc, e.(*ast.PostfixExpression).Op)
	})

	t.Run("assign", func(t *testing.T) {
		e, _ := liftOneExpr(t, "(assign += x 1)")
		as := e.(*ast.AssignExpression)
		assert.Equal(t, ast.AddAssign, as.Op)
		assert.Equal(t, "x", as.Target.(*ast.Identifier).Value)
	})

	t.Run("cond", func(t *testing.T) {
		e, _ := liftOneExpr(t, "(cond c a b)")
		cond := e.(*ast.CondExpression)
		require.NotNil(t, cond.Then)
		require.NotNil(t, cond.Else)
	})

	t.Run("cond_elided_middle", func(t *testing.T) {
		e, lf := liftOneExpr(t, "(cond c _ b)")
		require.Empty(t, lf.Diags())
		cond := e.(*ast.CondExpression)
		assert.Nil(t, cond.Then)
		require.NotNil(t, cond.Else)
	})

	t.Run("seq_folds_left", func(t *testing.T) {
		e, _ := liftOneExpr(t, "(seq a b c)")
		outer := e.(*ast.SequenceExpression)
		assert.Equal(t, "c", outer.Right.(*ast.Identifier).Value)
		inner := outer.Left.(*ast.SequenceExpression)
		assert.Equal(t, "a", inner.Left.(*ast.Identifier).Value)
		assert.Equal(t, "b", inner.Right.(*ast.Identifier).Value)
	})

	t.Run("word_spelled_operators", func(t *testing.T) {
		// The lexer reserves < and > for the angles pair, so those
		// operators arrive as atoms.
		e, lf := liftOneExpr(t, "(binary lt a b)")
		require.Empty(t, lf.Diags())
		assert.Equal(t, ast.Lt, e.(*ast.BinaryExpression).Op)

		e, _ = liftOneExpr(t, "(binary shl a 2)")
		assert.Equal(t, ast.Shl, e.(*ast.BinaryExpression).Op)

		e, _ = liftOneExpr(t, "(assign shrassign x 1)")
		assert.Equal(t, ast.ShrAssign, e.(*ast.AssignExpression).Op)
	})

	t.Run("unknown_operator", func(t *testing.T) {
		e, lf := liftOneExpr(t, "(binary ?? a b)")
		assert.IsType(t, &ast.TodoExpression{}, e)
		require.Len(t, lf.Diags(), 1)
		assert.Equal(t, "lift/expr", lf.Diags()[0].Code)
	})
}

func TestLiftAccessExpressions(t *testing.T) {
	t.Run("call_with_named_arg", func(t *testing.T) {
		e, lf := liftOneExpr(t, "(call f a (namedarg k 1))")
		require.Empty(t, lf.Diags())
		call := e.(*ast.CallExpression)
		assert.Equal(t, "f", call.Function.(*ast.Identifier).Value)
		require.Len(t, call.Args, 2)
		assert.IsType(t, &ast.ExprArgument{}, call.Args[0])
		named := call.Args[1].(*ast.NamedArgument)
		assert.Equal(t, "k", named.Name.Value)
		assert.Equal(t, int64(1), named.Value.(*ast.IntConstant).Value)
	})

	t.Run("index", func(t *testing.T) {
		e, _ := liftOneExpr(t, "(index arr i)")
		ix := e.(*ast.IndexExpression)
		assert.Equal(t, "arr", ix.Target.(*ast.Identifier).Value)
	})

	t.Run("field", func(t *testing.T) {
		e, _ := liftOneExpr(t, "(field obj m)")
		f := e.(*ast.FieldExpression)
		assert.False(t, f.Arrow)
		assert.Equal(t, "m", f.Field.String())
	})

	t.Run("arrow_with_destructor", func(t *testing.T) {
		e, lf := liftOneExpr(t, "(arrow p (dtor Widget))")
		require.Empty(t, lf.Diags())
		f := e.(*ast.FieldExpression)
		assert.True(t, f.Arrow)
		assert.Equal(t, "~Widget", f.Field.String())
	})

	t.Run("paren", func(t *testing.T) {
		e, _ := liftOneExpr(t, "(paren x)")
		assert.IsType(t, &ast.ParenExpression{}, e)
	})
}

func TestLiftSizeof(t *testing.T) {
	t.Run("of_type", func(t *testing.T) {
		e, _ := liftOneExpr(t, "(sizeof (builtin int))")
		s := e.(*ast.SizeofExpression)
		require.NotNil(t, s.OfType)
		assert.Nil(t, s.Operand)
	})

	t.Run("of_operand", func(t *testing.T) {
		e, _ := liftOneExpr(t, "(sizeof x)")
		s := e.(*ast.SizeofExpression)
		assert.Nil(t, s.OfType)
		require.NotNil(t, s.Operand)
	})
}

func TestLiftCast(t *testing.T) {
	e, lf := liftOneExpr(t, "(cast (ptr (builtin char)) x)")
	require.Empty(t, lf.Diags())
	c := e.(*ast.CastExpression)
	ptr := c.To.(*ast.PointerType)
	assert.Equal(t, ast.Char, ptr.Elem.(*ast.BuiltinType).Kind)
	assert.Equal(t, "x", c.Operand.(*ast.Identifier).Value)
}

func TestLiftDisplays(t *testing.T) {
	t.Run("tuple", func(t *testing.T) {
		e, _ := liftOneExpr(t, "(tuple 1 2)")
		assert.Len(t, e.(*ast.TupleExpression).Elems, 2)
	})

	t.Run("list_head", func(t *testing.T) {
		e, _ := liftOneExpr(t, "(list 1 2 3)")
		assert.Len(t, e.(*ast.ListExpression).Elems, 3)
	})

	t.Run("bare_brackets", func(t *testing.T) {
		e, _ := liftOneExpr(t, "[1 2]")
		assert.Len(t, e.(*ast.ListExpression).Elems, 2)
	})

	t.Run("bare_braces", func(t *testing.T) {
		e, _ := liftOneExpr(t, "{1 2}")
		assert.Len(t, e.(*ast.ListExpression).Elems, 2)
	})
}

func TestLiftLambdaAndStmtExpr(t *testing.T) {
	t.Run("lambda", func(t *testing.T) {
		e, lf := liftOneExpr(t, "(lambda (param x (builtin int)) (param y) { (return x) })")
		require.Empty(t, lf.Diags())
		la := e.(*ast.LambdaExpression)
		require.Len(t, la.Params, 2)
		assert.Equal(t, "x", la.Params[0].Name.Value)
		assert.Nil(t, la.Params[1].T)
		require.Len(t, la.Body.Items, 1)
	})

	t.Run("stmtexpr", func(t *testing.T) {
		e, _ := liftOneExpr(t, "(stmtexpr { (nop) })")
		se := e.(*ast.StmtExpression)
		require.Len(t, se.Body.Items, 1)
	})
}

func TestLiftNameExpression(t *testing.T) {
	t.Run("qualified", func(t *testing.T) {
		e, lf := liftOneExpr(t, "(name std swap)")
		require.Empty(t, lf.Diags())
		ne := e.(*ast.NameExpression)
		assert.Equal(t, "std::swap", ne.Name.String())
	})

	t.Run("plain_collapses_to_identifier", func(t *testing.T) {
		e, _ := liftOneExpr(t, "(name x)")
		assert.Equal(t, "x", e.(*ast.Identifier).Value)
	})
}

func TestUnknownHeadBecomesTodo(t *testing.T) {
	e, lf := liftOneExpr(t, "(frobnicate a 1)")
	assert.Empty(t, lf.Diags(), "unknown heads are representable, not errors")

	todo := e.(*ast.TodoExpression)
	assert.Equal(t, "frobnicate", todo.Tag.Text)
	require.Len(t, todo.Sub, 2)
	assert.Equal(t, ast.ExprAny, todo.Sub[0].Kind)
	assert.Equal(t, "a", todo.Sub[0].Expr.(*ast.Identifier).Value)
	assert.Equal(t, int64(1), todo.Sub[1].Expr.(*ast.IntConstant).Value)
}

func TestLiftedTreeWalksLikeHandwritten(t *testing.T) {
	e, _ := liftOneExpr(t, "(binary + a b)")

	idents, exprs, toks := 0, 0, 0
	w := ast.NewWalker(ast.Hooks{
		Expr: func(k func(ast.Expression), x ast.Expression) {
			exprs++
			if _, ok := x.(*ast.Identifier); ok {
				idents++
			}
			k(x)
		},
		Token: func(k func(token.Token), tk token.Token) {
			toks++
			k(tk)
		},
	})
	w.WalkExpr(e)

	assert.Equal(t, 2, idents)
	assert.Equal(t, 3, exprs)
	assert.Equal(t, 1, toks)
}
