package config

import (
	"os"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

const (
	ProviderCodeCommit = "codecommit"
	ProviderGitHub     = "github"
)

const (
	ActionNotify = "notify"
	ActionLock   = "lock"
	ActionRevert = "revert"
)

type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
	Provider    string `env:"SCM_PROVIDER" envDefault:"codecommit" validate:"oneof=codecommit github"`
	AWSEndpoint string `env:"AWS_ENDPOINT_URL"`
	GitHub      GitHub `envPrefix:"GITHUB_"`
}

type GitHub struct {
	Token string `env:"TOKEN"`
	Owner string `env:"OWNER"`
}

type Inspector struct {
	Config

	EventBusName    string   `env:"EVENT_BUS_NAME,required"`
	DetailType      string   `env:"DETAIL_TYPE,required"`
	SecurityUserARN string   `env:"SECURITY_USER_ARN,required"`
	EventSource     string   `env:"EVENT_SOURCE" envDefault:"securitycheck.codecommit" validate:"startswith=securitycheck."`
	RulesFile       string   `env:"RULES_FILE"`
	IgnorePaths     []string `env:"IGNORE_PATHS" envSeparator:","`
}

type Remediator struct {
	Config

	TagName       string        `env:"TAG_NAME,required"`
	SNSTopicARN   string        `env:"SNS_TOPIC_ARN,required"`
	SecretID      string        `env:"SECRET_ID,required"`
	RepoURL       string        `env:"REPO_URL,required" validate:"url"`
	RepoName      string        `env:"REPO_NAME,required"`
	DetailType    string        `env:"DETAIL_TYPE,required"`
	ScratchDir    string        `env:"SCRATCH_DIR"`
	Actions       []string      `env:"REMEDIATION_ACTIONS" envSeparator:"," envDefault:"notify,lock,revert" validate:"min=1,dive,oneof=notify lock revert"`
	RevertTimeout time.Duration `env:"REVERT_TIMEOUT" envDefault:"15m" validate:"gt=0"`
}

// Enabled reports whether the named remediation action is configured.
func (r *Remediator) Enabled(action string) bool {
	return slices.Contains(r.Actions, action)
}

func LoadInspector() (*Inspector, error) {
	return load[Inspector]()
}

func LoadRemediator() (*Remediator, error) {
	cfg, err := load[Remediator]()
	if err != nil {
		return nil, err
	}
	if cfg.ScratchDir == "" {
		cfg.ScratchDir = os.TempDir()
	}
	return cfg, nil
}

// LoadBase reads only the shared settings; used by the CLI, which takes the
// rest from flags.
func LoadBase() (*Config, error) {
	return load[Config]()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(githubSettings, Config{})
	return v
}

// githubSettings requires the token and owner once the GitHub provider is
// selected.
func githubSettings(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	if cfg.Provider != ProviderGitHub {
		return
	}
	if cfg.GitHub.Token == "" {
		sl.ReportError(cfg.GitHub.Token, "GitHub.Token", "Token", "required_with_provider", "")
	}
	if cfg.GitHub.Owner == "" {
		sl.ReportError(cfg.GitHub.Owner, "GitHub.Owner", "Owner", "required_with_provider", "")
	}
}

func load[T any]() (*T, error) {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
