package github

import (
	"context"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/commit-sentinel/models"
)

func (c *client) GetRepository(ctx context.Context, name string) (*models.Repository, error) {
	repo, _, err := withRetry(ctx, func() (*gh.Repository, *gh.Response, error) {
		return c.repositories.Get(ctx, c.owner, name)
	})
	if err != nil {
		return nil, fmt.Errorf("getting repository %s: %w", name, err)
	}

	return &models.Repository{
		ID:       repo.GetFullName(),
		Name:     repo.GetName(),
		CloneURL: repo.GetCloneURL(),
	}, nil
}

// TagRepository writes each tag as a custom property value. repositoryID is
// the "owner/name" full name returned by GetRepository.
func (c *client) TagRepository(ctx context.Context, repositoryID string, tags map[string]string) error {
	owner, name, ok := strings.Cut(repositoryID, "/")
	if !ok {
		owner, name = c.owner, repositoryID
	}

	values := make([]*gh.CustomPropertyValue, 0, len(tags))
	for k, v := range tags {
		values = append(values, &gh.CustomPropertyValue{PropertyName: k, Value: v})
	}

	_, _, err := withRetry(ctx, func() (struct{}, *gh.Response, error) {
		resp, err := c.repositories.CreateOrUpdateCustomProperties(ctx, owner, name, values)
		return struct{}{}, resp, err
	})
	return err
}
