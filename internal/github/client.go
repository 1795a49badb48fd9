// Package github implements scm.Client on top of the GitHub REST API.
// Repository lock state is stored as a repository custom property.
package github

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/commit-sentinel/internal/logger"
	"github.com/tracker-tv/commit-sentinel/internal/scm"
)

type RepositoriesAdapter interface {
	Get(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error)
	GetCommit(ctx context.Context, owner, repo, sha string, opts *gh.ListOptions) (*gh.RepositoryCommit, *gh.Response, error)
	CompareCommits(ctx context.Context, owner, repo, base, head string, opts *gh.ListOptions) (*gh.CommitsComparison, *gh.Response, error)
	CreateOrUpdateCustomProperties(ctx context.Context, org, repo string, customPropertyValues []*gh.CustomPropertyValue) (*gh.Response, error)
}

type GitAdapter interface {
	GetCommit(ctx context.Context, owner, repo, sha string) (*gh.Commit, *gh.Response, error)
	GetBlobRaw(ctx context.Context, owner, repo, sha string) ([]byte, *gh.Response, error)
}

type client struct {
	repositories RepositoriesAdapter
	git          GitAdapter
	owner        string
	log          logger.Logger
}

var _ scm.Client = (*client)(nil)

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

func New(token, owner string, log logger.Logger) scm.Client {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}
	return newClient(gh.NewClient(httpClient), owner, log)
}

func newClient(c *gh.Client, owner string, log logger.Logger) *client {
	return &client{
		repositories: c.Repositories,
		git:          c.Git,
		owner:        owner,
		log:          logger.Named(log, "github"),
	}
}
