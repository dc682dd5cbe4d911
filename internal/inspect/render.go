package inspect

import (
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// RenderTable writes the family census as a table, with identifier uses by
// resolution kind below the separator.
func RenderTable(w io.Writer, s Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Family", "Count"})
	t.AppendRow(table.Row{"declarations", s.Declarations})
	t.AppendRow(table.Row{"statements", s.Statements})
	t.AppendRow(table.Row{"expressions", s.Expressions})
	t.AppendRow(table.Row{"types", s.Types})
	t.AppendRow(table.Row{"names", s.Names})
	t.AppendRow(table.Row{"declarators", s.Declarators})
	t.AppendRow(table.Row{"parameters", s.Parameters})
	t.AppendRow(table.Row{"arguments", s.Arguments})
	t.AppendRow(table.Row{"directives", s.Directives})
	t.AppendRow(table.Row{"tokens", s.Tokens})
	t.AppendRow(table.Row{"todos", s.Todos})
	if len(s.Resolutions) > 0 {
		t.AppendSeparator()
		for _, kind := range sortedKeys(s.Resolutions) {
			t.AppendRow(table.Row{"uses: " + kind, s.Resolutions[kind]})
		}
	}
	t.Render()
}

// RenderKindTable writes the per-kind node counts, largest first.
func RenderKindTable(w io.Writer, s Summary) {
	type kindCount struct {
		name string
		n    int
	}
	kinds := make([]kindCount, 0, len(s.NodeKinds))
	for name, n := range s.NodeKinds {
		kinds = append(kinds, kindCount{name, n})
	}
	sort.Slice(kinds, func(i, j int) bool {
		if kinds[i].n != kinds[j].n {
			return kinds[i].n > kinds[j].n
		}
		return kinds[i].name < kinds[j].name
	})

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Kind", "Count"})
	for _, k := range kinds {
		t.AppendRow(table.Row{k.name, k.n})
	}
	t.Render()
}

// RenderYAML writes the whole summary as a YAML document.
func RenderYAML(w io.Writer, s Summary) error {
	out, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
