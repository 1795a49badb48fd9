package github

import (
	"context"
	"fmt"
	"strconv"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/commit-sentinel/models"
)

const (
	filesPerPage = 100
	// compareFileLimit is the most files the compare API returns. Its
	// pagination applies to commits, so the rest cannot be paged in.
	compareFileLimit = 300
)

func (c *client) GetCommit(ctx context.Context, repo, commitID string) (*models.Commit, error) {
	commit, _, err := withRetry(ctx, func() (*gh.Commit, *gh.Response, error) {
		return c.git.GetCommit(ctx, c.owner, repo, commitID)
	})
	if err != nil {
		return nil, fmt.Errorf("getting commit %s: %w", commitID, err)
	}

	parents := make([]string, 0, len(commit.Parents))
	for _, p := range commit.Parents {
		parents = append(parents, p.GetSHA())
	}

	return &models.Commit{
		ID:             commit.GetSHA(),
		ParentIDs:      parents,
		CommitterName:  commit.GetCommitter().GetName(),
		CommitterEmail: commit.GetCommitter().GetEmail(),
	}, nil
}

// ListDifferences lists the files changed between before and after in a
// single compare call. With no before commit the files of the after commit
// itself are listed, page by page.
func (c *client) ListDifferences(ctx context.Context, repo, before, after, pageToken string) ([]models.Difference, string, error) {
	opts := &gh.ListOptions{PerPage: filesPerPage}
	if pageToken != "" {
		page, err := strconv.Atoi(pageToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid page token %q: %w", pageToken, err)
		}
		opts.Page = page
	}

	var (
		files []*gh.CommitFile
		resp  *gh.Response
		err   error
	)
	if before == "" {
		var commit *gh.RepositoryCommit
		commit, resp, err = withRetry(ctx, func() (*gh.RepositoryCommit, *gh.Response, error) {
			return c.repositories.GetCommit(ctx, c.owner, repo, after, opts)
		})
		if commit != nil {
			files = commit.Files
		}
	} else {
		var cmp *gh.CommitsComparison
		cmp, _, err = withRetry(ctx, func() (*gh.CommitsComparison, *gh.Response, error) {
			return c.repositories.CompareCommits(ctx, c.owner, repo, before, after, nil)
		})
		if cmp != nil {
			files = cmp.Files
		}
		if len(files) >= compareFileLimit {
			c.log.Warn().
				Str("repository", repo).
				Str("before", before).
				Str("after", after).
				Int("files", len(files)).
				Msg("compare truncated at the api file limit, remaining files are not scanned")
		}
	}
	if err != nil {
		return nil, "", fmt.Errorf("listing differences %s..%s: %w", before, after, err)
	}

	diffs := make([]models.Difference, 0, len(files))
	for _, f := range files {
		diff := models.Difference{
			Path:       f.GetFilename(),
			ChangeType: f.GetStatus(),
		}
		if f.GetStatus() != "removed" {
			diff.AfterBlobID = f.GetSHA()
		}
		diffs = append(diffs, diff)
	}

	next := ""
	if resp != nil && resp.NextPage != 0 {
		next = strconv.Itoa(resp.NextPage)
	}
	return diffs, next, nil
}

func (c *client) GetBlob(ctx context.Context, repo, blobID string) ([]byte, error) {
	content, _, err := withRetry(ctx, func() ([]byte, *gh.Response, error) {
		return c.git.GetBlobRaw(ctx, c.owner, repo, blobID)
	})
	if err != nil {
		return nil, fmt.Errorf("getting blob %s: %w", blobID, err)
	}
	return content, nil
}
