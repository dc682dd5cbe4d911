package commands

import (
	"fmt"
	"os"

	"github.com/funvibe/syntree/internal/xref"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewLookupCommand creates the lookup command.
func NewLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <name>",
		Short: "Find recorded occurrences of an identifier",
		Long: `Query the xref store for every recorded occurrence of a name, ordered
by file and position.`,
		Example: `  syntree lookup --index project.db limit`,
		Args:    cobra.ExactArgs(1),
		RunE:    runLookup,
	}
}

func runLookup(cmd *cobra.Command, args []string) error {
	cc := NewCommandContext(cmd)
	name := args[0]

	// Opening would create an empty database; an absent store deserves a
	// better message than "no such table".
	if _, err := os.Stat(cc.Cfg.IndexPath); err != nil {
		return fmt.Errorf("no index at %s, run \"syntree index\" first", cc.Cfg.IndexPath)
	}

	store := xref.NewStore(cc.Logger)
	if err := store.Open(cc.Cfg.IndexPath); err != nil {
		return err
	}
	defer store.Close()

	occs, err := store.Lookup(cmd.Context(), name)
	if err != nil {
		return err
	}
	if len(occs) == 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no occurrences of %q\n", name)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Line", "Col", "Resolution"})
	for _, o := range occs {
		t.AppendRow(table.Row{o.File, o.Line, o.Col, o.Kind})
	}
	t.Render()
	return nil
}
