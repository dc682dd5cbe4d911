// Package commands implements the syntree subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/funvibe/syntree/internal/bridge"
	"github.com/funvibe/syntree/internal/config"
	"github.com/funvibe/syntree/internal/diag"
	"github.com/funvibe/syntree/internal/pipeline"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands: the loaded
// configuration, the logger and a diagnostics printer bound to the
// command's stderr.
type CommandContext struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	Printer *diag.Printer
}

// NewCommandContext assembles the shared dependencies for one command run.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := GetConfig(cmd)
	p := diag.NewPrinter(cmd.ErrOrStderr())
	if on := cfg.ColorOverride(); on != nil {
		p = p.WithColor(*on)
	}
	return &CommandContext{Cfg: cfg, Logger: GetLogger(cmd), Printer: p}
}

// liftStages is the front half every command shares: scan the dump text
// into bracket trees, lift them into the typed program.
func liftStages() []pipeline.Processor {
	return []pipeline.Processor{&bridge.ReadProcessor{}, &bridge.LiftProcessor{}}
}

// loadUnit runs one dump file through the given stages.
func loadUnit(path string, stages ...pipeline.Processor) (*pipeline.PipelineContext, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	ctx := pipeline.NewPipelineContext(path, string(src))
	return pipeline.New(stages...).Run(ctx), nil
}
