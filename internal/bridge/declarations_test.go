package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/syntree/internal/ast"
	"github.com/funvibe/syntree/internal/diag"
	"github.com/funvibe/syntree/internal/fuzzy"
)

func liftOneDecl(t *testing.T, src string) (ast.Declaration, *Lifter) {
	t.Helper()
	trees, diags := fuzzy.Read("test.sexp", src)
	require.Empty(t, diags, "dump text must read cleanly")
	require.Len(t, trees, 1)
	lf := NewLifter("test.sexp")
	return lf.liftDecl(trees[0]), lf
}

func TestLiftVarDeclaration(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		d, lf := liftOneDecl(t, "(var (d x (builtin int) 1))")
		require.Empty(t, lf.Diags())
		vd := d.(*ast.VarDeclaration)
		assert.Equal(t, ast.StorageNone, vd.Storage)
		require.Len(t, vd.Decls, 1)
		assert.Equal(t, "x", vd.Decls[0].Name.Value)
		assert.Equal(t, ast.Int, vd.Decls[0].T.(*ast.BuiltinType).Kind)
		assert.Equal(t, int64(1), vd.Decls[0].Init.(*ast.IntConstant).Value)
	})

	t.Run("static_multi", func(t *testing.T) {
		d, lf := liftOneDecl(t, "(var static (d a (builtin int)) (d b (ptr (builtin int))))")
		require.Empty(t, lf.Diags())
		vd := d.(*ast.VarDeclaration)
		assert.Equal(t, ast.StorageStatic, vd.Storage)
		require.Len(t, vd.Decls, 2)
		assert.Nil(t, vd.Decls[0].Init)
		assert.IsType(t, &ast.PointerType{}, vd.Decls[1].T)
	})

	t.Run("untyped_initialized", func(t *testing.T) {
		d, _ := liftOneDecl(t, "(var (d x 1))")
		vd := d.(*ast.VarDeclaration)
		assert.Nil(t, vd.Decls[0].T)
		require.NotNil(t, vd.Decls[0].Init)
	})

	t.Run("no_declarators", func(t *testing.T) {
		d, lf := liftOneDecl(t, "(var)")
		assert.IsType(t, &ast.TodoDeclaration{}, d)
		require.Len(t, lf.Diags(), 1)
		assert.Equal(t, "lift/decl", lf.Diags()[0].Code)
	})

	t.Run("bad_declarator_group", func(t *testing.T) {
		_, lf := liftOneDecl(t, "(var [x])")
		require.Len(t, lf.Diags(), 1)
		assert.Equal(t, "lift/declarator", lf.Diags()[0].Code)
	})
}

func TestLiftFunctionDefinition(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		src := `(fun main
		          (fntype (builtin int) (param argc (builtin int)) (param argv (ptr (ptr (builtin char)))))
		          { (return 0) })`
		d, lf := liftOneDecl(t, src)
		require.Empty(t, lf.Diags())
		fd := d.(*ast.FunctionDefinition)
		assert.Equal(t, "main", fd.Name.String())
		require.NotNil(t, fd.Sig)
		assert.Equal(t, ast.Int, fd.Sig.Ret.(*ast.BuiltinType).Kind)
		require.Len(t, fd.Sig.Params, 2)
		assert.Equal(t, "argc", fd.Sig.Params[0].Name.Value)
		require.NotNil(t, fd.Body)
		require.Len(t, fd.Body.Items, 1)
	})

	t.Run("declaration_only", func(t *testing.T) {
		d, lf := liftOneDecl(t, "(fun extern f (fntype (builtin void)))")
		require.Empty(t, lf.Diags())
		fd := d.(*ast.FunctionDefinition)
		assert.Equal(t, ast.StorageExtern, fd.Storage)
		assert.Nil(t, fd.Body)
	})

	t.Run("qualified_method_name", func(t *testing.T) {
		d, lf := liftOneDecl(t, "(fun (name Widget (dtor Widget)) (fntype (builtin void)) { (nop) })")
		require.Empty(t, lf.Diags())
		fd := d.(*ast.FunctionDefinition)
		assert.Equal(t, "Widget::~Widget", fd.Name.String())
	})
}

func TestLiftTypedefAndTypedecl(t *testing.T) {
	t.Run("typedef", func(t *testing.T) {
		d, lf := liftOneDecl(t, "(typedef size (builtin unsigned long))")
		require.Empty(t, lf.Diags())
		td := d.(*ast.TypedefDeclaration)
		assert.Equal(t, "size", td.Name.Value)
		bt := td.T.(*ast.BuiltinType)
		assert.True(t, bt.Unsigned)
		assert.Equal(t, ast.Long, bt.Kind)
	})

	t.Run("typedecl", func(t *testing.T) {
		d, lf := liftOneDecl(t, "(typedecl (struct point (var (d x (builtin int))) (var (d y (builtin int)))))")
		require.Empty(t, lf.Diags())
		td := d.(*ast.TypeDeclaration)
		ct := td.T.(*ast.ClassType)
		assert.Equal(t, ast.Struct, ct.Kind)
		assert.Len(t, ct.Members, 2)
	})
}

func TestLiftNamespace(t *testing.T) {
	t.Run("named_nested", func(t *testing.T) {
		d, lf := liftOneDecl(t, "(namespace util (namespace detail (var (d x))))")
		require.Empty(t, lf.Diags())
		ns := d.(*ast.NamespaceDeclaration)
		assert.Equal(t, "util", ns.Name.Value)
		require.Len(t, ns.Body, 1)
		inner := ns.Body[0].Node.(*ast.NamespaceDeclaration)
		assert.Equal(t, "detail", inner.Name.Value)
	})

	t.Run("anonymous", func(t *testing.T) {
		d, _ := liftOneDecl(t, "(namespace (var (d x)))")
		ns := d.(*ast.NamespaceDeclaration)
		assert.Nil(t, ns.Name)
		assert.Len(t, ns.Body, 1)
	})

	t.Run("non_declaration_member", func(t *testing.T) {
		d, lf := liftOneDecl(t, "(namespace n (return))")
		ns := d.(*ast.NamespaceDeclaration)
		require.Len(t, ns.Body, 1)
		assert.IsType(t, &ast.TodoDeclaration{}, ns.Body[0].Node)
		require.Len(t, lf.Diags(), 1)
		assert.Equal(t, "lift/namespace", lf.Diags()[0].Code)
		assert.Equal(t, diag.Warning, lf.Diags()[0].Severity)
	})
}

func TestLiftTemplate(t *testing.T) {
	d, lf := liftOneDecl(t, "(template (tparam T) (tparam N (builtin int)) (fun f (fntype (named T)) { (nop) }))")
	require.Empty(t, lf.Diags())
	td := d.(*ast.TemplateDeclaration)
	require.Len(t, td.Params, 2)
	assert.Equal(t, "T", td.Params[0].Name.Value)
	assert.Nil(t, td.Params[0].T)
	assert.Equal(t, ast.Int, td.Params[1].T.(*ast.BuiltinType).Kind)
	assert.IsType(t, &ast.FunctionDefinition{}, td.Decl)
}

func TestLiftUsing(t *testing.T) {
	d, lf := liftOneDecl(t, "(using (name std vector))")
	require.Empty(t, lf.Diags())
	ud := d.(*ast.UsingDeclaration)
	assert.Equal(t, "std::vector", ud.Name.String())
}

func TestLiftImports(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		d, lf := liftOneDecl(t, "(import os.path)")
		require.Empty(t, lf.Diags())
		im := d.(*ast.ImportDeclaration)
		assert.Equal(t, "os.path", im.ModulePath())
		assert.Nil(t, im.Alias)
		assert.False(t, im.All)
	})

	t.Run("aliased", func(t *testing.T) {
		d, lf := liftOneDecl(t, "(import numpy as np)")
		require.Empty(t, lf.Diags())
		im := d.(*ast.ImportDeclaration)
		assert.Equal(t, "numpy", im.ModulePath())
		require.NotNil(t, im.Alias)
		assert.Equal(t, "np", im.Alias.Value)
	})

	t.Run("from_symbols", func(t *testing.T) {
		d, lf := liftOneDecl(t, "(from collections import deque Counter)")
		require.Empty(t, lf.Diags())
		im := d.(*ast.ImportDeclaration)
		assert.Equal(t, "collections", im.ModulePath())
		require.Len(t, im.Symbols, 2)
		assert.Equal(t, "deque", im.Symbols[0].Value)
		assert.Equal(t, "Counter", im.Symbols[1].Value)
	})

	t.Run("from_star", func(t *testing.T) {
		d, _ := liftOneDecl(t, "(from os.path import *)")
		im := d.(*ast.ImportDeclaration)
		assert.True(t, im.All)
		assert.Empty(t, im.Symbols)
	})

	t.Run("trailing_junk", func(t *testing.T) {
		_, lf := liftOneDecl(t, "(import a.b extra)")
		require.Len(t, lf.Diags(), 1)
		assert.Equal(t, "lift/decl", lf.Diags()[0].Code)
	})
}

func TestUnknownDeclarationHead(t *testing.T) {
	d, lf := liftOneDecl(t, "(friend (name Widget))")
	assert.Empty(t, lf.Diags())
	todo := d.(*ast.TodoDeclaration)
	assert.Equal(t, "friend", todo.Tag.Text)
	require.Len(t, todo.Sub, 1)
	assert.Equal(t, ast.NameAny, todo.Sub[0].Kind)
}
