package commands

import (
	"fmt"

	"github.com/funvibe/syntree/internal/inspect"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>...",
		Short: "Show a node-kind census across units",
		Long: `Lift every given unit and print one table of concrete node kinds,
largest counts first. Several files accumulate into a single census.`,
		Example: `  # Census over a whole dump directory
  syntree stats dumps/*.sexp`,
		Args: cobra.MinimumNArgs(1),
		RunE: runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	cc := NewCommandContext(cmd)

	var total inspect.Summary
	failed := 0
	for _, path := range args {
		ctx, err := loadUnit(path, liftStages()...)
		if err != nil {
			return err
		}
		if cc.Printer.PrintAll(ctx.Diags) > 0 {
			failed++
		}
		total.Add(inspect.Summarize(ctx.AstRoot))
	}

	inspect.RenderKindTable(cmd.OutOrStdout(), total)

	if failed > 0 {
		return fmt.Errorf("%d of %d units had errors", failed, len(args))
	}
	return nil
}
