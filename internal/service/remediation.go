package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/tracker-tv/commit-sentinel/internal/gitops"
	"github.com/tracker-tv/commit-sentinel/internal/logger"
	"github.com/tracker-tv/commit-sentinel/internal/notify"
	"github.com/tracker-tv/commit-sentinel/internal/scm"
	"github.com/tracker-tv/commit-sentinel/internal/secrets"
	"github.com/tracker-tv/commit-sentinel/models"
)

var (
	ErrNoParentCommit     = errors.New("finding has no parent commit to reset to")
	ErrForeignRepository  = errors.New("finding belongs to a repository this remediator does not manage")
	ErrMissingResourceRef = errors.New("finding has no repository id")
)

// Action is one remediation step triggered by a finding. Actions are
// independent of each other and safe to run again for the same finding.
type Action interface {
	Name() string
	Execute(ctx context.Context, f models.Finding) error
}

type notifyAction struct {
	notifier notify.Notifier
}

func NewNotifyAction(n notify.Notifier) Action {
	return &notifyAction{notifier: n}
}

func (a *notifyAction) Name() string { return "notify" }

func (a *notifyAction) Execute(ctx context.Context, f models.Finding) error {
	return a.notifier.Publish(ctx, alertSubject(f), alertMessage(f))
}

type lockAction struct {
	scm      scm.Client
	notifier notify.Notifier
	tagKey   string
}

func NewLockAction(c scm.Client, n notify.Notifier, tagKey string) Action {
	return &lockAction{scm: c, notifier: n, tagKey: tagKey}
}

func (a *lockAction) Name() string { return "lock" }

// Execute tags the repository as locked. Tagging an already locked
// repository rewrites the same value.
func (a *lockAction) Execute(ctx context.Context, f models.Finding) error {
	if f.RepositoryID == "" {
		return ErrMissingResourceRef
	}

	tags := map[string]string{a.tagKey: string(models.RepoStateLocked)}
	if err := a.scm.TagRepository(ctx, f.RepositoryID, tags); err != nil {
		return fmt.Errorf("tagging %s: %w", f.RepositoryID, err)
	}

	return a.notifier.Publish(ctx, lockSubject(f), lockMessage(f))
}

type RevertOptions struct {
	SecretID   string
	RepoURL    string
	RepoName   string
	ScratchDir string
	Timeout    time.Duration
}

type revertAction struct {
	opts      RevertOptions
	secrets   secrets.Store
	notifier  notify.Notifier
	newRunner gitops.RunnerFactory
	log       logger.Logger
}

func NewRevertAction(opts RevertOptions, s secrets.Store, n notify.Notifier, newRunner gitops.RunnerFactory, log logger.Logger) Action {
	return &revertAction{
		opts:      opts,
		secrets:   s,
		notifier:  n,
		newRunner: newRunner,
		log:       logger.Named(log, "revert"),
	}
}

func (a *revertAction) Name() string { return "revert" }

// Execute rewrites the offending branch back to the finding's parent commit
// and force-pushes it. Every step must succeed before the next runs; the
// success notification is only sent once the push went through.
func (a *revertAction) Execute(ctx context.Context, f models.Finding) error {
	if f.RepositoryName != a.opts.RepoName {
		return fmt.Errorf("%w: %s", ErrForeignRepository, f.RepositoryName)
	}
	if f.ParentCommitID == "" {
		return ErrNoParentCommit
	}

	if a.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.opts.Timeout)
		defer cancel()
	}

	creds, err := a.secrets.GitCredentials(ctx, a.opts.SecretID)
	if err != nil {
		return err
	}
	cloneURL, err := gitops.CloneURL(a.opts.RepoURL, creds.User, creds.Password)
	if err != nil {
		return err
	}

	ws, err := gitops.Acquire(a.opts.ScratchDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := ws.Release(); err != nil {
			a.log.Error().Err(err).Str("workspace", ws.Path).Msg("releasing workspace")
		}
	}()

	log := a.log.With().Str("repository", f.RepositoryName).Str("branch", f.Branch).Str("commit", f.CommitID).Logger()
	runner := a.newRunner(filepath.Join(ws.Path, a.opts.RepoName))

	ops := []gitops.Operation{
		gitops.Clone{URL: cloneURL},
		gitops.Checkout{Branch: f.Branch},
		gitops.Reset{Commit: f.ParentCommitID},
		gitops.Push{Remote: "origin", Branch: f.Branch, Force: true},
	}

	commands := make([]string, 0, len(ops))
	for _, op := range ops {
		log.Info().Str("command", op.Command()).Msg("running")
		res, err := runner.Run(ctx, op)
		if err != nil {
			log.Error().Err(err).Str("command", op.Command()).Msg("revert aborted")
			return err
		}
		log.Debug().Str("output", res.Output).Msg(res.Command)
		commands = append(commands, res.Command)
	}

	return a.notifier.Publish(ctx, revertSubject(f), revertMessage(f, commands))
}
