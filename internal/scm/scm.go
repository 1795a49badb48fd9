// Package scm defines the source-repository collaborator used by the
// inspection pipeline and the lock action.
package scm

import (
	"context"
	"errors"

	"github.com/tracker-tv/commit-sentinel/models"
)

var ErrNotFound = errors.New("not found")

type Client interface {
	GetRepository(ctx context.Context, name string) (*models.Repository, error)
	GetCommit(ctx context.Context, repo, commitID string) (*models.Commit, error)
	// ListDifferences returns one page of differences and the token for the
	// next page; an empty token marks the last page. An empty before id
	// compares against the empty tree.
	ListDifferences(ctx context.Context, repo, before, after, pageToken string) ([]models.Difference, string, error)
	GetBlob(ctx context.Context, repo, blobID string) ([]byte, error)
	TagRepository(ctx context.Context, repositoryID string, tags map[string]string) error
}
