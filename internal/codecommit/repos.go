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

func (c *client) GetRepository(ctx context.Context, name string) (*models.Repository, error) {
	out, err := c.api.GetRepository(ctx, &codecommit.GetRepositoryInput{
		RepositoryName: aws.String(name),
	})
	if err != nil {
		var notFound *types.RepositoryDoesNotExistException
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("repository %s: %w", name, scm.ErrNotFound)
		}
		return nil, err
	}

	meta := out.RepositoryMetadata
	if meta == nil {
		return nil, fmt.Errorf("repository %s: empty metadata", name)
	}

	return &models.Repository{
		ID:       aws.ToString(meta.Arn),
		Name:     aws.ToString(meta.RepositoryName),
		CloneURL: aws.ToString(meta.CloneUrlHttp),
	}, nil
}

func (c *client) TagRepository(ctx context.Context, repositoryID string, tags map[string]string) error {
	_, err := c.api.TagResource(ctx, &codecommit.TagResourceInput{
		ResourceArn: aws.String(repositoryID),
		Tags:        tags,
	})
	return err
}
