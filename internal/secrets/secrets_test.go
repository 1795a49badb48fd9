package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecretsManager struct {
	secret string
	err    error
	id     string
}

func (f *fakeSecretsManager) GetSecretValue(_ context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.id = aws.ToString(in.SecretId)
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(f.secret)}, nil
}

func TestGitCredentials(t *testing.T) {
	api := &fakeSecretsManager{secret: `{"user":"remediator","password":"p@ss/word"}`}

	creds, err := NewSecretsManager(api).GitCredentials(context.Background(), "git-credentials")

	require.NoError(t, err)
	assert.Equal(t, "git-credentials", api.id)
	assert.Equal(t, "remediator", creds.User)
	assert.Equal(t, "p@ss/word", creds.Password)
}

func TestGitCredentials_Errors(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeSecretsManager
		want error
	}{
		{name: "api error", api: &fakeSecretsManager{err: errors.New("denied")}},
		{name: "not json", api: &fakeSecretsManager{secret: "plain"}},
		{name: "missing password", api: &fakeSecretsManager{secret: `{"user":"remediator"}`}, want: ErrEmptyCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSecretsManager(tt.api).GitCredentials(context.Background(), "id")

			assert.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
