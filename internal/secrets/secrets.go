// Package secrets reads remediation credentials from secret storage.
package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/tracker-tv/commit-sentinel/models"
)

var ErrEmptyCredentials = errors.New("secret has no user or password")

type Store interface {
	GitCredentials(ctx context.Context, secretID string) (models.GitCredentials, error)
}

type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type secretsManagerStore struct {
	api SecretsManagerAPI
}

func NewSecretsManager(api SecretsManagerAPI) Store {
	return &secretsManagerStore{api: api}
}

// GitCredentials expects a JSON secret string of the form
// {"user": "...", "password": "..."}.
func (s *secretsManagerStore) GitCredentials(ctx context.Context, secretID string) (models.GitCredentials, error) {
	out, err := s.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return models.GitCredentials{}, fmt.Errorf("getting secret %s: %w", secretID, err)
	}

	var creds models.GitCredentials
	if err := json.Unmarshal([]byte(aws.ToString(out.SecretString)), &creds); err != nil {
		return models.GitCredentials{}, fmt.Errorf("decoding secret %s: %w", secretID, err)
	}
	if creds.User == "" || creds.Password == "" {
		return models.GitCredentials{}, fmt.Errorf("secret %s: %w", secretID, ErrEmptyCredentials)
	}
	return creds, nil
}
