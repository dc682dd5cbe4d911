package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand reports the build's version string.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the syntree version and a one-line description.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(),
				"syntree v%s\nSyntax tree lifting and cross-reference toolkit\n", version)
		},
	}
}
