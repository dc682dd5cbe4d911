package commands

import (
	"fmt"
	"io"

	"github.com/funvibe/syntree/internal/ast"
	"github.com/funvibe/syntree/internal/inspect"
	"github.com/funvibe/syntree/internal/resolve"
	"github.com/spf13/cobra"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	var resolveNames bool

	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Lift dump files and summarize what came out",
		Long: `Read S-expression dump files, lift each into the typed tree and print
a per-unit report. Diagnostics go to stderr; recovery keeps going, so a unit
with errors still reports whatever shape was recovered.

When the configuration carries dialect toggles, constructs a disabled
feature produced are reported as warnings.`,
		Example: `  # Summarize one unit
  syntree parse unit.sexp

  # Bind identifier uses first, then print the tree outline
  syntree parse --resolve --format tree unit.sexp

  # Machine-readable summary
  syntree parse --format yaml unit.sexp`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, resolveNames)
		},
	}

	cmd.Flags().BoolVar(&resolveNames, "resolve", false, "Bind identifier uses before reporting")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, resolveNames bool) error {
	cc := NewCommandContext(cmd)

	failed := 0
	for _, path := range args {
		stages := liftStages()
		if resolveNames {
			stages = append(stages, &resolve.ResolveProcessor{Log: cc.Logger})
		}
		ctx, err := loadUnit(path, stages...)
		if err != nil {
			return err
		}
		if len(cc.Cfg.Dialect) > 0 {
			ctx.Diags = append(ctx.Diags, inspect.CheckDialect(ctx.AstRoot, cc.Cfg.Dialect)...)
		}
		if cc.Printer.PrintAll(ctx.Diags) > 0 {
			failed++
		}
		if len(args) > 1 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n", path)
		}
		if err := renderUnit(cmd.OutOrStdout(), cc.Cfg.Format, ctx.AstRoot); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d units had errors", failed, len(args))
	}
	return nil
}

// renderUnit writes one unit's report in the configured format.
func renderUnit(w io.Writer, format string, prog *ast.Program) error {
	switch format {
	case "tree":
		inspect.Dump(w, prog)
	case "yaml":
		return inspect.RenderYAML(w, inspect.Summarize(prog))
	default:
		inspect.RenderTable(w, inspect.Summarize(prog))
	}
	return nil
}
