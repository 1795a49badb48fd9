package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRemediatorEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TAG_NAME", "RepoState")
	t.Setenv("SNS_TOPIC_ARN", "arn:aws:sns:eu-west-1:123456789012:alerts")
	t.Setenv("SECRET_ID", "git-credentials")
	t.Setenv("REPO_URL", "https://git-codecommit.eu-west-1.amazonaws.com/v1/repos/payments")
	t.Setenv("REPO_NAME", "payments")
	t.Setenv("DETAIL_TYPE", "CodeCommit Security Event")
}

func TestLoadInspector_Success(t *testing.T) {
	t.Setenv("EVENT_BUS_NAME", "security-bus")
	t.Setenv("DETAIL_TYPE", "CodeCommit Security Event")
	t.Setenv("SECURITY_USER_ARN", "arn:aws:iam::123456789012:user/security")
	t.Setenv("IGNORE_PATHS", "vendor/**,**/*.lock")

	cfg, err := LoadInspector()

	require.NoError(t, err)
	assert.Equal(t, "security-bus", cfg.EventBusName)
	assert.Equal(t, "securitycheck.codecommit", cfg.EventSource)
	assert.Equal(t, ProviderCodeCommit, cfg.Provider)
	assert.Equal(t, []string{"vendor/**", "**/*.lock"}, cfg.IgnorePaths)
}

func TestLoadInspector_MissingRequired(t *testing.T) {
	t.Setenv("EVENT_BUS_NAME", "security-bus")
	t.Setenv("DETAIL_TYPE", "CodeCommit Security Event")

	_, err := LoadInspector()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SECURITY_USER_ARN")
}

func TestLoadInspector_RejectsForeignEventSource(t *testing.T) {
	t.Setenv("EVENT_BUS_NAME", "security-bus")
	t.Setenv("DETAIL_TYPE", "CodeCommit Security Event")
	t.Setenv("SECURITY_USER_ARN", "arn:aws:iam::123456789012:user/security")
	t.Setenv("EVENT_SOURCE", "aws.codecommit")

	_, err := LoadInspector()

	assert.Error(t, err)
}

func TestLoadRemediator_Defaults(t *testing.T) {
	setRemediatorEnv(t)

	cfg, err := LoadRemediator()

	require.NoError(t, err)
	assert.Equal(t, []string{ActionNotify, ActionLock, ActionRevert}, cfg.Actions)
	assert.Equal(t, 15*time.Minute, cfg.RevertTimeout)
	assert.Equal(t, os.TempDir(), cfg.ScratchDir)
	assert.True(t, cfg.Enabled(ActionRevert))
}

func TestLoadRemediator_ActionSubset(t *testing.T) {
	setRemediatorEnv(t)
	t.Setenv("REMEDIATION_ACTIONS", "notify")

	cfg, err := LoadRemediator()

	require.NoError(t, err)
	assert.True(t, cfg.Enabled(ActionNotify))
	assert.False(t, cfg.Enabled(ActionLock))
}

func TestLoadRemediator_UnknownAction(t *testing.T) {
	setRemediatorEnv(t)
	t.Setenv("REMEDIATION_ACTIONS", "notify,delete")

	_, err := LoadRemediator()

	assert.Error(t, err)
}

func TestLoadBase_GitHubRequiresToken(t *testing.T) {
	t.Setenv("SCM_PROVIDER", "github")
	t.Setenv("GITHUB_OWNER", "tracker-tv")

	_, err := LoadBase()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Token")
}

func TestLoadBase_GitHub(t *testing.T) {
	t.Setenv("SCM_PROVIDER", "github")
	t.Setenv("GITHUB_OWNER", "tracker-tv")
	t.Setenv("GITHUB_TOKEN", "ghp_test")

	cfg, err := LoadBase()

	require.NoError(t, err)
	assert.Equal(t, "tracker-tv", cfg.GitHub.Owner)
}

func TestLoadBase_UnknownProvider(t *testing.T) {
	t.Setenv("SCM_PROVIDER", "gitlab")

	_, err := LoadBase()

	assert.Error(t, err)
}
