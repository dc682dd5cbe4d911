package xref

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/syntree/internal/ast"
	"github.com/funvibe/syntree/internal/bridge"
	"github.com/funvibe/syntree/internal/fuzzy"
	"github.com/funvibe/syntree/internal/pipeline"
	"github.com/funvibe/syntree/internal/resolve"
	"github.com/funvibe/syntree/internal/testutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(testutil.NewTestLogger(t))
	require.NoError(t, store.Open(":memory:"))
	require.NoError(t, store.InitSchema(context.Background()))
	t.Cleanup(func() { store.Close() })
	return store
}

func resolvedProgram(t *testing.T, file, src string) *ast.Program {
	t.Helper()
	trees, diags := fuzzy.Read(file, src)
	require.Empty(t, diags)
	lf := bridge.NewLifter(file)
	prog := lf.LiftProgram(trees)
	require.Empty(t, lf.Diags())
	resolve.New(nil).Resolve(prog)
	return prog
}

const unitSrc = `
(var (d limit (builtin int) 8))
(fun grow (fntype (builtin void) (param by (builtin int))) {
  (assign = limit (binary + limit by))
  (call helper)
})`

func TestStoreOpenClose(t *testing.T) {
	store := NewStore(nil)
	require.NoError(t, store.Open(":memory:"))
	require.NoError(t, store.InitSchema(context.Background()))
	// The schema only creates what is missing, so a second init is fine.
	require.NoError(t, store.InitSchema(context.Background()))
	require.NoError(t, store.Close())
}

func TestStoreRequiresOpen(t *testing.T) {
	store := NewStore(nil)
	_, err := store.IndexUnit(context.Background(), &ast.Program{File: "x"})
	assert.Error(t, err)
	_, err = store.Lookup(context.Background(), "x")
	assert.Error(t, err)
}

func TestIndexUnit(t *testing.T) {
	store := openTestStore(t)
	prog := resolvedProgram(t, "unit.sexp", unitSrc)

	id, err := store.IndexUnit(context.Background(), prog)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	t.Run("lookup_resolved", func(t *testing.T) {
		occ, err := store.Lookup(context.Background(), "limit")
		require.NoError(t, err)
		require.Len(t, occ, 2)
		for _, o := range occ {
			assert.Equal(t, id, o.UnitID)
			assert.Equal(t, "unit.sexp", o.File)
			assert.Equal(t, "global", o.Kind)
		}
		// Both uses sit on the assignment line, target before value.
		assert.Equal(t, occ[0].Line, occ[1].Line)
		assert.Less(t, occ[0].Col, occ[1].Col)
	})

	t.Run("lookup_unresolved", func(t *testing.T) {
		occ, err := store.Lookup(context.Background(), "helper")
		require.NoError(t, err)
		require.Len(t, occ, 1)
		assert.Equal(t, "unresolved", occ[0].Kind)
	})

	t.Run("lookup_missing", func(t *testing.T) {
		occ, err := store.Lookup(context.Background(), "nosuch")
		require.NoError(t, err)
		assert.Empty(t, occ)
	})
}

func TestKindCounts(t *testing.T) {
	store := openTestStore(t)
	_, err := store.IndexUnit(context.Background(), resolvedProgram(t, "unit.sexp", unitSrc))
	require.NoError(t, err)

	counts, err := store.KindCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"global":     2,
		"param":      1,
		"unresolved": 1,
	}, counts)
}

func TestLookupSpansUnits(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first, err := store.IndexUnit(ctx, resolvedProgram(t, "a.sexp",
		`(fun f (fntype (builtin void) (param shared (builtin int))) { shared })`))
	require.NoError(t, err)
	second, err := store.IndexUnit(ctx, resolvedProgram(t, "b.sexp",
		`(fun g (fntype (builtin void)) { shared })`))
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	occ, err := store.Lookup(ctx, "shared")
	require.NoError(t, err)
	require.Len(t, occ, 2)
	assert.Equal(t, "a.sexp", occ[0].File)
	assert.Equal(t, "param", occ[0].Kind)
	assert.Equal(t, "b.sexp", occ[1].File)
	assert.Equal(t, "unresolved", occ[1].Kind)
}

func TestIndexProcessor(t *testing.T) {
	t.Run("stamps_unit_id", func(t *testing.T) {
		store := openTestStore(t)
		ctx := pipeline.NewPipelineContext("unit.sexp", unitSrc)
		p := pipeline.New(
			&bridge.ReadProcessor{},
			&bridge.LiftProcessor{},
			&resolve.ResolveProcessor{},
			&IndexProcessor{Store: store},
		)
		ctx = p.Run(ctx)
		require.False(t, ctx.Diags.HasErrors())
		require.NotEmpty(t, ctx.UnitID)

		occ, err := store.Lookup(context.Background(), "limit")
		require.NoError(t, err)
		assert.Len(t, occ, 2)
	})

	t.Run("tolerates_missing_program", func(t *testing.T) {
		store := openTestStore(t)
		ctx := pipeline.NewPipelineContext("unit.sexp", "")
		out := (&IndexProcessor{Store: store}).Process(ctx)
		assert.Empty(t, out.UnitID)
	})
}
