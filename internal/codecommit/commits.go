package codecommit

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codecommit"
	"github.com/aws/aws-sdk-go-v2/service/codecommit/types"
	"github.com/tracker-tv/commit-sentinel/internal/scm"
	"github.com/tracker-tv/commit-sentinel/models"
)

const differencesPageSize = 100

func (c *client) GetCommit(ctx context.Context, repo, commitID string) (*models.Commit, error) {
	out, err := c.api.GetCommit(ctx, &codecommit.GetCommitInput{
		RepositoryName: aws.String(repo),
		CommitId:       aws.String(commitID),
	})
	if err != nil {
		var notFound *types.CommitIdDoesNotExistException
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("commit %s: %w", commitID, scm.ErrNotFound)
		}
		return nil, err
	}
	if out.Commit == nil {
		return nil, fmt.Errorf("commit %s: empty response", commitID)
	}

	commit := &models.Commit{
		ID:        aws.ToString(out.Commit.CommitId),
		ParentIDs: out.Commit.Parents,
	}
	if committer := out.Commit.Committer; committer != nil {
		commit.CommitterName = aws.ToString(committer.Name)
		commit.CommitterEmail = aws.ToString(committer.Email)
	}
	return commit, nil
}

func (c *client) ListDifferences(ctx context.Context, repo, before, after, pageToken string) ([]models.Difference, string, error) {
	in := &codecommit.GetDifferencesInput{
		RepositoryName:       aws.String(repo),
		AfterCommitSpecifier: aws.String(after),
		MaxResults:           aws.Int32(differencesPageSize),
	}
	if before != "" {
		in.BeforeCommitSpecifier = aws.String(before)
	}
	if pageToken != "" {
		in.NextToken = aws.String(pageToken)
	}

	out, err := c.api.GetDifferences(ctx, in)
	if err != nil {
		return nil, "", err
	}

	diffs := make([]models.Difference, 0, len(out.Differences))
	for _, d := range out.Differences {
		diff := models.Difference{ChangeType: string(d.ChangeType)}
		if d.AfterBlob != nil {
			diff.Path = aws.ToString(d.AfterBlob.Path)
			diff.AfterBlobID = aws.ToString(d.AfterBlob.BlobId)
		} else if d.BeforeBlob != nil {
			diff.Path = aws.ToString(d.BeforeBlob.Path)
		}
		diffs = append(diffs, diff)
	}

	return diffs, aws.ToString(out.NextToken), nil
}

func (c *client) GetBlob(ctx context.Context, repo, blobID string) ([]byte, error) {
	out, err := c.api.GetBlob(ctx, &codecommit.GetBlobInput{
		RepositoryName: aws.String(repo),
		BlobId:         aws.String(blobID),
	})
	if err != nil {
		return nil, err
	}
	return out.Content, nil
}
