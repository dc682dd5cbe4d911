package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/funvibe/syntree/internal/config"
	"github.com/spf13/cobra"
)

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store the tool logger in context.
type loggerKey struct{}

// WithConfig returns a context carrying the loaded configuration.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// WithLogger returns a context carrying the tool logger.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// GetConfig retrieves the config from the command context.
// Returns defaults when the root command has not loaded one.
func GetConfig(cmd *cobra.Command) *config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return cfg
		}
	}
	return &config.Config{
		Format:    config.DefaultFormat,
		Color:     config.DefaultColor,
		IndexPath: config.DefaultIndexPath,
	}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(cmd *cobra.Command) *slog.Logger {
	if ctx := cmd.Context(); ctx != nil {
		if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return log
		}
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
