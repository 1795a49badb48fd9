// Package cli implements the sentinel operator command line.
package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/tracker-tv/commit-sentinel/internal/app"
	"github.com/tracker-tv/commit-sentinel/internal/config"
	"github.com/tracker-tv/commit-sentinel/internal/logger"
	"github.com/tracker-tv/commit-sentinel/internal/orchestrator"
	"github.com/tracker-tv/commit-sentinel/internal/scm"
)

// RootOptions holds global flags and the collaborators commands build on.
type RootOptions struct {
	LogLevel string
	Format   string // "json" | "text"
	Rules    string

	newSCM        func(ctx context.Context, log logger.Logger) (scm.Client, error)
	newDispatcher func(ctx context.Context, log logger.Logger) (*orchestrator.Dispatcher, error)
}

var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the sentinel command backed by the configured
// provider and AWS services.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{
		newSCM:        defaultSCM,
		newDispatcher: defaultDispatcher,
	})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sentinel",
		Short: "Detect and remediate credentials pushed to source repositories",
		Long: `sentinel inspects commits for leaked credentials and replays security
events through the remediation actions (notify, lock, revert).

Provider and AWS settings are read from the environment, as for the
deployed functions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Rules, "rules", "", "rule table file (json or yaml), built-in table when empty")

	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewScanCommand(opts))
	cmd.AddCommand(NewRemediateCommand(opts))
	cmd.AddCommand(NewRulesCommand(opts))

	return cmd
}

func (o *RootOptions) logger(cmd *cobra.Command) logger.Logger {
	return logger.New(logger.Options{
		Level:   o.LogLevel,
		Format:  "console",
		Service: "sentinel",
		Writer:  cmd.ErrOrStderr(),
	})
}

func defaultSCM(ctx context.Context, log logger.Logger) (scm.Client, error) {
	cfg, err := config.LoadBase()
	if err != nil {
		return nil, err
	}
	awsCfg, err := app.AWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return app.SCM(cfg, awsCfg, log)
}

func defaultDispatcher(ctx context.Context, log logger.Logger) (*orchestrator.Dispatcher, error) {
	cfg, err := config.LoadRemediator()
	if err != nil {
		return nil, err
	}
	return app.Remediator(ctx, cfg, log)
}
