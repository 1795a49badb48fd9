package service

import (
	"context"
	"fmt"
	"iter"

	"github.com/tracker-tv/commit-sentinel/internal/scm"
	"github.com/tracker-tv/commit-sentinel/models"
)

type Differ interface {
	// Diff yields the post-change content of every file that still exists
	// after the change. The first error ends the sequence.
	Diff(ctx context.Context, repo, before, after string) iter.Seq2[models.ChangedFile, error]
}

type differ struct {
	scm scm.Client
}

func NewDiffer(c scm.Client) Differ {
	return &differ{scm: c}
}

func (d *differ) Diff(ctx context.Context, repo, before, after string) iter.Seq2[models.ChangedFile, error] {
	return func(yield func(models.ChangedFile, error) bool) {
		token := ""
		for {
			diffs, next, err := d.scm.ListDifferences(ctx, repo, before, after, token)
			if err != nil {
				yield(models.ChangedFile{}, fmt.Errorf("listing differences: %w", err))
				return
			}

			for _, diff := range diffs {
				if diff.AfterBlobID == "" {
					continue
				}

				content, err := d.scm.GetBlob(ctx, repo, diff.AfterBlobID)
				if err != nil {
					yield(models.ChangedFile{Path: diff.Path}, fmt.Errorf("fetching %s: %w", diff.Path, err))
					return
				}

				if !yield(models.ChangedFile{Path: diff.Path, Content: content}, nil) {
					return
				}
			}

			if next == "" {
				return
			}
			token = next
		}
	}
}
