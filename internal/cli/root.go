// Package cli provides the command-line interface for syntree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/funvibe/syntree/internal/cli/commands"
	"github.com/funvibe/syntree/internal/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version is the tool version (set at build time).
var Version = "0.1.0"

// NewRootCmd assembles the syntree command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "syntree",
		Short: "Syntree - syntax tree lifting and cross-reference toolkit",
		Long: `Syntree ingests parser dump files, lifts them into a typed syntax tree,
binds identifier uses within each unit, and answers questions about the
result: per-unit summaries, node-kind censuses, and a cross-reference index
of identifier occurrences.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Help and completion run without loading configuration.
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			ctx := commands.WithConfig(cmd.Context(), cfg)
			ctx = commands.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if cfg.Verbose && cfg.FileUsed != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", cfg.FileUsed)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	// Flags every subcommand inherits
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./syntree.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format (table|tree|yaml)")
	rootCmd.PersistentFlags().String("color", "", "Diagnostic colors (auto|always|never)")
	rootCmd.PersistentFlags().String("index", "", "Path to the xref store")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Debug logging on stderr")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "tree", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewIndexCommand())
	rootCmd.AddCommand(commands.NewLookupCommand())

	return rootCmd
}

// Execute runs the CLI against os.Args.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
