// Package app assembles the inspector and remediator from configuration.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscodecommit "github.com/aws/aws-sdk-go-v2/service/codecommit"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/tracker-tv/commit-sentinel/internal/codecommit"
	"github.com/tracker-tv/commit-sentinel/internal/config"
	"github.com/tracker-tv/commit-sentinel/internal/detect"
	"github.com/tracker-tv/commit-sentinel/internal/eventbus"
	"github.com/tracker-tv/commit-sentinel/internal/github"
	"github.com/tracker-tv/commit-sentinel/internal/gitops"
	"github.com/tracker-tv/commit-sentinel/internal/logger"
	"github.com/tracker-tv/commit-sentinel/internal/notify"
	"github.com/tracker-tv/commit-sentinel/internal/orchestrator"
	"github.com/tracker-tv/commit-sentinel/internal/rules"
	"github.com/tracker-tv/commit-sentinel/internal/scm"
	"github.com/tracker-tv/commit-sentinel/internal/secrets"
	"github.com/tracker-tv/commit-sentinel/internal/service"
)

var ErrUnknownProvider = errors.New("unknown scm provider")

func AWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading aws config: %w", err)
	}
	if cfg.AWSEndpoint != "" {
		awsCfg.BaseEndpoint = aws.String(cfg.AWSEndpoint)
	}
	return awsCfg, nil
}

// SCM returns the source collaborator for the configured provider.
func SCM(cfg *config.Config, awsCfg aws.Config, log logger.Logger) (scm.Client, error) {
	switch cfg.Provider {
	case config.ProviderCodeCommit:
		return codecommit.New(awscodecommit.NewFromConfig(awsCfg)), nil
	case config.ProviderGitHub:
		return github.New(cfg.GitHub.Token, cfg.GitHub.Owner, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// Matcher compiles the rule table from path, or the built-in table when path
// is empty.
func Matcher(path string) (*detect.Matcher, error) {
	table, err := rules.Load(path)
	if err != nil {
		return nil, err
	}
	return detect.NewMatcher(table)
}

func Inspector(ctx context.Context, cfg *config.Inspector, log logger.Logger) (service.InspectionService, error) {
	awsCfg, err := AWSConfig(ctx, &cfg.Config)
	if err != nil {
		return nil, err
	}
	client, err := SCM(&cfg.Config, awsCfg, log)
	if err != nil {
		return nil, err
	}
	matcher, err := Matcher(cfg.RulesFile)
	if err != nil {
		return nil, err
	}

	publisher := eventbus.NewEventBridge(eventbridge.NewFromConfig(awsCfg), cfg.EventBusName, cfg.EventSource, cfg.DetailType)

	return service.NewInspectionService(
		service.InspectionOptions{SecurityIdentity: cfg.SecurityUserARN, IgnorePaths: cfg.IgnorePaths},
		client,
		service.NewDiffer(client),
		matcher,
		publisher,
		log,
	)
}

func Remediator(ctx context.Context, cfg *config.Remediator, log logger.Logger) (*orchestrator.Dispatcher, error) {
	awsCfg, err := AWSConfig(ctx, &cfg.Config)
	if err != nil {
		return nil, err
	}
	client, err := SCM(&cfg.Config, awsCfg, log)
	if err != nil {
		return nil, err
	}

	actions := Actions(cfg, Collaborators{
		SCM:      client,
		Notifier: notify.NewSNS(sns.NewFromConfig(awsCfg), cfg.SNSTopicARN),
		Secrets:  secrets.NewSecretsManager(secretsmanager.NewFromConfig(awsCfg)),
		NewRunner: func(dir string) gitops.Runner {
			return gitops.NewGitRunner(dir, nil)
		},
	}, log)

	return orchestrator.NewDispatcher(cfg.DetailType, actions, log), nil
}

type Collaborators struct {
	SCM       scm.Client
	Notifier  notify.Notifier
	Secrets   secrets.Store
	NewRunner gitops.RunnerFactory
}

// Actions builds the enabled remediation actions in a fixed order.
func Actions(cfg *config.Remediator, c Collaborators, log logger.Logger) []service.Action {
	var actions []service.Action
	if cfg.Enabled(config.ActionNotify) {
		actions = append(actions, service.NewNotifyAction(c.Notifier))
	}
	if cfg.Enabled(config.ActionLock) {
		actions = append(actions, service.NewLockAction(c.SCM, c.Notifier, cfg.TagName))
	}
	if cfg.Enabled(config.ActionRevert) {
		actions = append(actions, service.NewRevertAction(service.RevertOptions{
			SecretID:   cfg.SecretID,
			RepoURL:    cfg.RepoURL,
			RepoName:   cfg.RepoName,
			ScratchDir: cfg.ScratchDir,
			Timeout:    cfg.RevertTimeout,
		}, c.Secrets, c.Notifier, c.NewRunner, log))
	}
	return actions
}
