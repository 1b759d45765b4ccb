// Package gitrepo retrieves commit data from a git working directory.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Repo reads commit data from a working directory via the git binary.
type Repo struct {
	dir string
}

// New creates a Repo bound to the given working directory.
func New(dir string) *Repo {
	return &Repo{dir: dir}
}

// HeadMessage returns the full commit message of HEAD, keeping git's
// trailing newline. Failure to resolve HEAD (no commits yet, not a
// repository, directory missing) surfaces as an error carrying git's
// stderr where available.
func (r *Repo) HeadMessage(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "log", "-1", "--pretty=%B")
	cmd.Dir = r.dir
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", errors.New(strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git log failed: %w", err)
	}
	return string(out), nil
}

// EnsureInstalled reports whether the git binary is available on PATH.
// The message doubles as the user-facing prerequisite failure text.
func EnsureInstalled() error {
	if _, err := exec.LookPath("git"); err != nil {
		return errors.New("git is not installed.")
	}
	return nil
}
