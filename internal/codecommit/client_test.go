package codecommit

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codecommit"
	"github.com/aws/aws-sdk-go-v2/service/codecommit/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracker-tv/commit-sentinel/internal/scm"
)

type fakeAPI struct {
	repository  *codecommit.GetRepositoryOutput
	commit      *codecommit.GetCommitOutput
	pages       map[string]*codecommit.GetDifferencesOutput
	blobs       map[string][]byte
	err         error
	diffInputs  []*codecommit.GetDifferencesInput
	tagInputs   []*codecommit.TagResourceInput
	blobInputs  []*codecommit.GetBlobInput
	commitInput *codecommit.GetCommitInput
}

func (f *fakeAPI) GetRepository(_ context.Context, _ *codecommit.GetRepositoryInput, _ ...func(*codecommit.Options)) (*codecommit.GetRepositoryOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.repository, nil
}

func (f *fakeAPI) GetCommit(_ context.Context, in *codecommit.GetCommitInput, _ ...func(*codecommit.Options)) (*codecommit.GetCommitOutput, error) {
	f.commitInput = in
	if f.err != nil {
		return nil, f.err
	}
	return f.commit, nil
}

func (f *fakeAPI) GetDifferences(_ context.Context, in *codecommit.GetDifferencesInput, _ ...func(*codecommit.Options)) (*codecommit.GetDifferencesOutput, error) {
	f.diffInputs = append(f.diffInputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return f.pages[aws.ToString(in.NextToken)], nil
}

func (f *fakeAPI) GetBlob(_ context.Context, in *codecommit.GetBlobInput, _ ...func(*codecommit.Options)) (*codecommit.GetBlobOutput, error) {
	f.blobInputs = append(f.blobInputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &codecommit.GetBlobOutput{Content: f.blobs[aws.ToString(in.BlobId)]}, nil
}

func (f *fakeAPI) TagResource(_ context.Context, in *codecommit.TagResourceInput, _ ...func(*codecommit.Options)) (*codecommit.TagResourceOutput, error) {
	f.tagInputs = append(f.tagInputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &codecommit.TagResourceOutput{}, nil
}

func TestGetRepository_Success(t *testing.T) {
	api := &fakeAPI{repository: &codecommit.GetRepositoryOutput{
		RepositoryMetadata: &types.RepositoryMetadata{
			Arn:            aws.String("arn:aws:codecommit:eu-west-1:123456789012:payments"),
			RepositoryName: aws.String("payments"),
			CloneUrlHttp:   aws.String("https://git-codecommit.eu-west-1.amazonaws.com/v1/repos/payments"),
		},
	}}

	repo, err := New(api).GetRepository(context.Background(), "payments")

	require.NoError(t, err)
	assert.Equal(t, "arn:aws:codecommit:eu-west-1:123456789012:payments", repo.ID)
	assert.Equal(t, "payments", repo.Name)
	assert.Equal(t, "https://git-codecommit.eu-west-1.amazonaws.com/v1/repos/payments", repo.CloneURL)
}

func TestGetRepository_NotFound(t *testing.T) {
	api := &fakeAPI{err: &types.RepositoryDoesNotExistException{Message: aws.String("nope")}}

	_, err := New(api).GetRepository(context.Background(), "payments")

	assert.ErrorIs(t, err, scm.ErrNotFound)
}

func TestGetCommit_Success(t *testing.T) {
	api := &fakeAPI{commit: &codecommit.GetCommitOutput{
		Commit: &types.Commit{
			CommitId:  aws.String("abc123"),
			Parents:   []string{"def456"},
			Committer: &types.UserInfo{Name: aws.String("Dev"), Email: aws.String("dev@example.com")},
		},
	}}

	commit, err := New(api).GetCommit(context.Background(), "payments", "abc123")

	require.NoError(t, err)
	assert.Equal(t, "abc123", commit.ID)
	assert.Equal(t, []string{"def456"}, commit.ParentIDs)
	assert.Equal(t, "dev@example.com", commit.CommitterEmail)
	assert.Equal(t, "payments", aws.ToString(api.commitInput.RepositoryName))
}

func TestGetCommit_NotFound(t *testing.T) {
	api := &fakeAPI{err: &types.CommitIdDoesNotExistException{Message: aws.String("nope")}}

	_, err := New(api).GetCommit(context.Background(), "payments", "abc123")

	assert.ErrorIs(t, err, scm.ErrNotFound)
}

func TestListDifferences_Pagination(t *testing.T) {
	api := &fakeAPI{pages: map[string]*codecommit.GetDifferencesOutput{
		"": {
			Differences: []types.Difference{
				{AfterBlob: &types.BlobMetadata{Path: aws.String("config.py"), BlobId: aws.String("b1")}, ChangeType: types.ChangeTypeEnumAdded},
				{BeforeBlob: &types.BlobMetadata{Path: aws.String("old.txt"), BlobId: aws.String("b0")}, ChangeType: types.ChangeTypeEnumDeleted},
			},
			NextToken: aws.String("page-2"),
		},
		"page-2": {
			Differences: []types.Difference{
				{AfterBlob: &types.BlobMetadata{Path: aws.String("main.go"), BlobId: aws.String("b2")}, ChangeType: types.ChangeTypeEnumModified},
			},
		},
	}}
	c := New(api)

	first, next, err := c.ListDifferences(context.Background(), "payments", "def456", "abc123", "")
	require.NoError(t, err)
	assert.Equal(t, "page-2", next)
	require.Len(t, first, 2)
	assert.Equal(t, "config.py", first[0].Path)
	assert.Equal(t, "b1", first[0].AfterBlobID)
	assert.Equal(t, "old.txt", first[1].Path)
	assert.Empty(t, first[1].AfterBlobID)

	second, next, err := c.ListDifferences(context.Background(), "payments", "def456", "abc123", next)
	require.NoError(t, err)
	assert.Empty(t, next)
	assert.Equal(t, "main.go", second[0].Path)

	assert.Equal(t, "def456", aws.ToString(api.diffInputs[0].BeforeCommitSpecifier))
	assert.Equal(t, "abc123", aws.ToString(api.diffInputs[0].AfterCommitSpecifier))
}

func TestListDifferences_EmptyBeforeOmitsSpecifier(t *testing.T) {
	api := &fakeAPI{pages: map[string]*codecommit.GetDifferencesOutput{"": {}}}

	_, _, err := New(api).ListDifferences(context.Background(), "payments", "", "abc123", "")

	require.NoError(t, err)
	assert.Nil(t, api.diffInputs[0].BeforeCommitSpecifier)
}

func TestGetBlob(t *testing.T) {
	api := &fakeAPI{blobs: map[string][]byte{"b1": []byte("hello")}}

	content, err := New(api).GetBlob(context.Background(), "payments", "b1")

	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), content)
}

func TestGetBlob_Error(t *testing.T) {
	api := &fakeAPI{err: errors.New("throttled")}

	_, err := New(api).GetBlob(context.Background(), "payments", "b1")

	assert.Error(t, err)
}

func TestTagRepository(t *testing.T) {
	api := &fakeAPI{}

	err := New(api).TagRepository(context.Background(), "arn:repo", map[string]string{"RepoState": "locked"})

	require.NoError(t, err)
	require.Len(t, api.tagInputs, 1)
	assert.Equal(t, "arn:repo", aws.ToString(api.tagInputs[0].ResourceArn))
	assert.Equal(t, map[string]string{"RepoState": "locked"}, api.tagInputs[0].Tags)
}
