package gitops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Workspace is a scratch directory owned by a single remediation run.
type Workspace struct {
	Path string
}

// Acquire creates a fresh, uniquely named directory under root.
func Acquire(root string) (*Workspace, error) {
	dir := filepath.Join(root, "sentinel-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}
	return &Workspace{Path: dir}, nil
}

// Release removes the workspace and everything in it.
func (w *Workspace) Release() error {
	return os.RemoveAll(w.Path)
}
