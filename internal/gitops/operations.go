// Package gitops runs the typed git operations behind the force-revert
// remediation.
package gitops

import (
	"context"
	"fmt"
	"net/url"
)

// Operation is one git step. Command renders the equivalent git command
// line with credentials redacted.
type Operation interface {
	Command() string
}

type Clone struct {
	URL *url.URL
}

func (o Clone) Command() string {
	return "git clone " + o.URL.Redacted()
}

type Checkout struct {
	Branch string
}

func (o Checkout) Command() string {
	return "git checkout " + o.Branch
}

type Reset struct {
	Commit string
}

func (o Reset) Command() string {
	return "git reset --hard " + o.Commit
}

type Push struct {
	Remote string
	Branch string
	Force  bool
}

func (o Push) Command() string {
	cmd := fmt.Sprintf("git push %s %s", o.Remote, o.Branch)
	if o.Force {
		cmd += " --force"
	}
	return cmd
}

type Result struct {
	Command string
	Output  string
}

// Runner executes operations against a single working copy, in call order.
type Runner interface {
	Run(ctx context.Context, op Operation) (Result, error)
}

// RunnerFactory binds a runner to a working copy directory.
type RunnerFactory func(dir string) Runner

// CloneURL embeds URL-encoded credentials into an HTTPS clone URL.
func CloneURL(raw, user, password string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing clone url: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return nil, fmt.Errorf("unsupported clone url scheme %q", u.Scheme)
	}
	u.User = url.UserPassword(user, password)
	return u, nil
}
