package targets

import (
	"strings"
	"testing"

	"github.com/funvibe/syntree/internal/ast"
	"github.com/funvibe/syntree/internal/bridge"
	"github.com/funvibe/syntree/internal/fuzzy"
	"github.com/funvibe/syntree/internal/inspect"
	"github.com/funvibe/syntree/tests/fuzz/generators"
	"github.com/funvibe/syntree/tests/fuzz/mutator"
)

// FuzzMutation lifts a generated dump, mutates the tree in place, and
// checks the mutant still walks like a fresh lift.
func FuzzMutation(f *testing.F) {
	// Add seed corpus
	f.Add([]byte{})
	f.Add([]byte("mutation seed"))
	f.Add([]byte{9, 8, 7, 6, 5, 4, 3, 2, 1, 0})

	f.Fuzz(func(t *testing.T, data []byte) {
		// 1. Generate and lift a dump
		input := generators.NewFromData(data).GenerateProgram()
		lift := func() *ast.Program {
			trees, diags := fuzzy.Read("fuzz.sexp", input)
			if len(diags) > 0 {
				t.Fatalf("generated dump has read errors:\n%s\n%v", input, diags)
			}
			lf := bridge.NewLifter("fuzz.sexp")
			prog := lf.LiftProgram(trees)
			if ds := lf.Diags(); len(ds) > 0 {
				t.Fatalf("generated dump has lift errors:\n%s\n%v", input, ds)
			}
			return prog
		}

		// 2. Mutate with a seed derived from the input, for reproducibility
		seed := int64(len(data))
		for _, b := range data {
			seed = seed*31 + int64(b)
		}
		mutate := func(prog *ast.Program) string {
			mutator.NewASTMutator(seed).MutateN(prog, 8)
			var sb strings.Builder
			inspect.Dump(&sb, prog)
			return sb.String()
		}

		prog := lift()
		first := mutate(prog)

		// 3. The mutant must still summarize and walk without incident
		inspect.Summarize(prog)
		ast.NewWalker(ast.Hooks{}).WalkProgram(prog)

		// 4. Same input and seed give the same mutant
		if second := mutate(lift()); first != second {
			t.Error("mutation is not reproducible for identical input")
		}
	})
}
