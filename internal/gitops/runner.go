package gitops

import (
	"context"
	"errors"
	"fmt"
	"io"

	goGit "github.com/go-git/go-git/v5"
	goGitConfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
)

var ErrNotCloned = errors.New("repository not cloned yet")

type gitRunner struct {
	dir      string
	progress io.Writer
	repo     *goGit.Repository
	auth     transport.AuthMethod
}

// NewGitRunner returns a go-git backed runner working in dir. progress may
// be nil.
func NewGitRunner(dir string, progress io.Writer) Runner {
	return &gitRunner{dir: dir, progress: progress}
}

func (r *gitRunner) Run(ctx context.Context, op Operation) (Result, error) {
	var (
		output string
		err    error
	)

	switch o := op.(type) {
	case Clone:
		output, err = r.clone(ctx, o)
	case Checkout:
		output, err = r.checkout(o)
	case Reset:
		output, err = r.reset(o)
	case Push:
		output, err = r.push(ctx, o)
	default:
		err = fmt.Errorf("unsupported operation %T", op)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op.Command(), err)
	}

	return Result{Command: op.Command(), Output: output}, nil
}

// clone moves credentials from the URL into the transport auth so they are
// not written to the working copy's remote config.
func (r *gitRunner) clone(ctx context.Context, o Clone) (string, error) {
	if o.URL == nil {
		return "", errors.New("missing clone url")
	}

	remote := *o.URL
	if remote.User != nil {
		password, _ := remote.User.Password()
		r.auth = &http.BasicAuth{Username: remote.User.Username(), Password: password}
		remote.User = nil
	}

	repo, err := goGit.PlainCloneContext(ctx, r.dir, false, &goGit.CloneOptions{
		URL:      remote.String(),
		Auth:     r.auth,
		Progress: r.progress,
	})
	if err != nil {
		return "", err
	}
	r.repo = repo

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("reading head: %w", err)
	}
	return fmt.Sprintf("cloned %s at %s", remote.String(), head.Hash()), nil
}

// checkout switches to branch, creating it from origin when only the remote
// tracking ref exists.
func (r *gitRunner) checkout(o Checkout) (string, error) {
	if r.repo == nil {
		return "", ErrNotCloned
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return "", err
	}

	opts := &goGit.CheckoutOptions{Branch: plumbing.NewBranchReferenceName(o.Branch)}
	if _, err := r.repo.Reference(opts.Branch, true); err != nil {
		remoteRef, rerr := r.repo.Reference(plumbing.NewRemoteReferenceName(goGit.DefaultRemoteName, o.Branch), true)
		if rerr != nil {
			return "", fmt.Errorf("branch %s not found: %w", o.Branch, rerr)
		}
		opts.Hash = remoteRef.Hash()
		opts.Create = true
	}

	if err := wt.Checkout(opts); err != nil {
		return "", err
	}
	return "switched to branch " + o.Branch, nil
}

func (r *gitRunner) reset(o Reset) (string, error) {
	if r.repo == nil {
		return "", ErrNotCloned
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(o.Commit))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", o.Commit, err)
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return "", err
	}
	if err := wt.Reset(&goGit.ResetOptions{Commit: *hash, Mode: goGit.HardReset}); err != nil {
		return "", err
	}
	return "HEAD is now at " + hash.String(), nil
}

func (r *gitRunner) push(ctx context.Context, o Push) (string, error) {
	if r.repo == nil {
		return "", ErrNotCloned
	}

	ref := plumbing.NewBranchReferenceName(o.Branch)
	spec := goGitConfig.RefSpec(fmt.Sprintf("%s:%s", ref, ref))
	if o.Force {
		spec = "+" + spec
	}

	err := r.repo.PushContext(ctx, &goGit.PushOptions{
		RemoteName: o.Remote,
		RefSpecs:   []goGitConfig.RefSpec{spec},
		Force:      o.Force,
		Auth:       r.auth,
		Progress:   r.progress,
	})
	if errors.Is(err, goGit.NoErrAlreadyUpToDate) {
		return "everything up-to-date", nil
	}
	if err != nil {
		return "", err
	}
	return "pushed " + o.Branch, nil
}
