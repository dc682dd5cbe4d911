package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/funvibe/syntree/internal/resolve"
	"github.com/funvibe/syntree/internal/xref"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewIndexCommand creates the index command.
func NewIndexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "index <file>...",
		Short: "Resolve units and record identifier occurrences in the xref store",
		Long: `Run the full pipeline over each unit: read, lift, bind identifier uses,
then write every occurrence into the SQLite store at --index. Units with
diagnostics still index whatever was recovered.`,
		Example: `  # Build an index next to the dumps
  syntree index --index project.db dumps/*.sexp

  # Then ask questions about it
  syntree lookup --index project.db limit`,
		Args: cobra.MinimumNArgs(1),
		RunE: runIndex,
	}
}

func runIndex(cmd *cobra.Command, args []string) error {
	cc := NewCommandContext(cmd)

	store := xref.NewStore(cc.Logger)
	if err := store.Open(cc.Cfg.IndexPath); err != nil {
		return err
	}
	defer store.Close()
	if err := store.InitSchema(cmd.Context()); err != nil {
		return err
	}

	failed := 0
	for _, path := range args {
		stages := append(liftStages(),
			&resolve.ResolveProcessor{Log: cc.Logger},
			&xref.IndexProcessor{Store: store},
		)
		ctx, err := loadUnit(path, stages...)
		if err != nil {
			return err
		}
		if cc.Printer.PrintAll(ctx.Diags) > 0 {
			failed++
		}
		if ctx.UnitID != "" {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "indexed %s as unit %s\n", path, ctx.UnitID)
		}
	}

	counts, err := store.KindCounts(cmd.Context())
	if err != nil {
		return err
	}
	renderKindCounts(cmd.OutOrStdout(), counts)

	if failed > 0 {
		return fmt.Errorf("%d of %d units had errors", failed, len(args))
	}
	return nil
}

// renderKindCounts prints the store-wide occurrence tally by resolution
// kind.
func renderKindCounts(w io.Writer, counts map[string]int) {
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Resolution", "Occurrences"})
	for _, k := range kinds {
		t.AppendRow(table.Row{k, counts[k]})
	}
	t.Render()
}
