// Package codecommit implements scm.Client on top of AWS CodeCommit.
package codecommit

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/codecommit"
	"github.com/tracker-tv/commit-sentinel/internal/scm"
)

// API is the subset of the CodeCommit client used here.
type API interface {
	GetRepository(ctx context.Context, params *codecommit.GetRepositoryInput, optFns ...func(*codecommit.Options)) (*codecommit.GetRepositoryOutput, error)
	GetCommit(ctx context.Context, params *codecommit.GetCommitInput, optFns ...func(*codecommit.Options)) (*codecommit.GetCommitOutput, error)
	GetDifferences(ctx context.Context, params *codecommit.GetDifferencesInput, optFns ...func(*codecommit.Options)) (*codecommit.GetDifferencesOutput, error)
	GetBlob(ctx context.Context, params *codecommit.GetBlobInput, optFns ...func(*codecommit.Options)) (*codecommit.GetBlobOutput, error)
	TagResource(ctx context.Context, params *codecommit.TagResourceInput, optFns ...func(*codecommit.Options)) (*codecommit.TagResourceOutput, error)
}

type client struct {
	api API
}

var _ scm.Client = (*client)(nil)

func New(api API) scm.Client {
	return &client{api: api}
}
