package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/tracker-tv/commit-sentinel/internal/detect"
	"github.com/tracker-tv/commit-sentinel/internal/eventbus"
	"github.com/tracker-tv/commit-sentinel/internal/logger"
	"github.com/tracker-tv/commit-sentinel/internal/scm"
	"github.com/tracker-tv/commit-sentinel/models"
)

var ErrInvalidEvent = errors.New("invalid commit event")

type InspectionService interface {
	Inspect(ctx context.Context, ev models.CommitEvent) ([]models.Finding, error)
}

type InspectionOptions struct {
	// SecurityIdentity is the actor the remediation itself pushes as.
	// Changes made by it are never inspected, otherwise every forced
	// revert would trigger another inspection.
	SecurityIdentity string
	IgnorePaths      []string
}

type inspectionService struct {
	opts      InspectionOptions
	scm       scm.Client
	differ    Differ
	matcher   *detect.Matcher
	publisher eventbus.Publisher
	validate  *validator.Validate
	log       logger.Logger
}

func NewInspectionService(opts InspectionOptions, c scm.Client, differ Differ, matcher *detect.Matcher, publisher eventbus.Publisher, log logger.Logger) (InspectionService, error) {
	for _, p := range opts.IgnorePaths {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid ignore pattern %q", p)
		}
	}

	return &inspectionService{
		opts:      opts,
		scm:       c,
		differ:    differ,
		matcher:   matcher,
		publisher: publisher,
		validate:  validator.New(),
		log:       logger.Named(log, "inspection"),
	}, nil
}

func (s *inspectionService) Inspect(ctx context.Context, ev models.CommitEvent) ([]models.Finding, error) {
	if err := s.validate.Struct(ev); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}

	log := s.log.With().Str("repository", ev.RepositoryName).Str("commit", ev.CommitID).Logger()

	if s.opts.SecurityIdentity != "" && ev.ActorIdentity == s.opts.SecurityIdentity {
		log.Info().Str("actor", ev.ActorIdentity).Msg("change made by security identity, not inspecting")
		return nil, nil
	}
	if ev.Event == models.ReferenceDeleted || ev.CommitID == "" {
		log.Info().Str("event", string(ev.Event)).Msg("reference removed, nothing to inspect")
		return nil, nil
	}

	repo, err := s.scm.GetRepository(ctx, ev.RepositoryName)
	if err != nil {
		return nil, fmt.Errorf("getting repository %s: %w", ev.RepositoryName, err)
	}

	commit, err := s.scm.GetCommit(ctx, ev.RepositoryName, ev.CommitID)
	if err != nil {
		return nil, fmt.Errorf("getting commit %s: %w", ev.CommitID, err)
	}

	parent := ev.ParentCommitID
	if isZeroCommit(parent) {
		parent = ""
		if len(commit.ParentIDs) > 0 {
			parent = commit.ParentIDs[0]
		}
	}

	var findings []models.Finding
	scanned := 0
	for file, err := range s.differ.Diff(ctx, ev.RepositoryName, parent, ev.CommitID) {
		if err != nil {
			return nil, err
		}
		if s.ignored(file.Path) {
			log.Debug().Str("file", file.Path).Msg("ignored path")
			continue
		}
		scanned++

		match, ok := s.matcher.Detect(string(file.Content))
		if !ok {
			log.Debug().Str("file", file.Path).Msg("no credentials found")
			continue
		}

		log.Warn().Str("file", file.Path).Str("rule", match.Rule.Label).Int("line", match.Line).Msg("credentials found")
		findings = append(findings, models.Finding{
			File:           file.Path,
			RuleLabel:      match.Rule.Label,
			Line:           match.Line,
			RepositoryID:   repo.ID,
			RepositoryName: ev.RepositoryName,
			CommitID:       ev.CommitID,
			ParentCommitID: parent,
			Branch:         ev.Branch,
			CommitterEmail: commit.CommitterEmail,
		})
	}

	if len(findings) == 0 {
		log.Info().Int("files", scanned).Msg("no secrets found in commit")
		return nil, nil
	}

	if err := s.publisher.Publish(ctx, findings); err != nil {
		return nil, fmt.Errorf("publishing %d findings: %w", len(findings), err)
	}

	log.Warn().Int("files", scanned).Int("findings", len(findings)).Msg("secrets found in commit")
	return findings, nil
}

func (s *inspectionService) ignored(path string) bool {
	for _, p := range s.opts.IgnorePaths {
		if doublestar.MatchUnvalidated(p, path) {
			return true
		}
	}
	return false
}

func isZeroCommit(id string) bool {
	return strings.Trim(id, "0") == ""
}
