package cli

import (
	"github.com/spf13/cobra"
	"github.com/tracker-tv/commit-sentinel/internal/app"
	"github.com/tracker-tv/commit-sentinel/internal/eventbus"
	"github.com/tracker-tv/commit-sentinel/internal/service"
	"github.com/tracker-tv/commit-sentinel/models"
)

type inspectOptions struct {
	repository string
	commit     string
	parent     string
	branch     string
	actor      string
	source     string
	detailType string
	ignore     []string
}

// NewInspectCommand runs the inspection pipeline for one commit. Findings
// are written as security events, one JSON line each, so they can be fed to
// the remediate command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a pushed commit for leaked credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := rootOpts.logger(cmd)

			client, err := rootOpts.newSCM(ctx, log)
			if err != nil {
				return err
			}
			matcher, err := app.Matcher(rootOpts.Rules)
			if err != nil {
				return err
			}

			svc, err := service.NewInspectionService(
				service.InspectionOptions{IgnorePaths: opts.ignore},
				client,
				service.NewDiffer(client),
				matcher,
				eventbus.NewWriter(cmd.OutOrStdout(), opts.source, opts.detailType),
				log,
			)
			if err != nil {
				return err
			}

			findings, err := svc.Inspect(ctx, models.CommitEvent{
				RepositoryName: opts.repository,
				CommitID:       opts.commit,
				ParentCommitID: opts.parent,
				Branch:         opts.branch,
				ActorIdentity:  opts.actor,
				Event:          models.ReferenceUpdated,
			})
			if err != nil {
				return err
			}

			log.Info().Int("findings", len(findings)).Msg("inspection finished")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.repository, "repository", "", "repository name")
	cmd.Flags().StringVar(&opts.commit, "commit", "", "commit to inspect")
	cmd.Flags().StringVar(&opts.parent, "parent", "", "commit to diff against, first parent when empty")
	cmd.Flags().StringVar(&opts.branch, "branch", "main", "branch the commit was pushed to")
	cmd.Flags().StringVar(&opts.actor, "actor", "", "identity that pushed the commit")
	cmd.Flags().StringVar(&opts.source, "source", "securitycheck.cli", "event source written with each finding")
	cmd.Flags().StringVar(&opts.detailType, "detail-type", "CodeCommit Security Event", "event detail type written with each finding")
	cmd.Flags().StringSliceVar(&opts.ignore, "ignore", nil, "path globs to skip")
	_ = cmd.MarkFlagRequired("repository")
	_ = cmd.MarkFlagRequired("commit")

	return cmd
}
