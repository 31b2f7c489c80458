package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Inspector implements domain.RepoInspector using go-git.
type Inspector struct{}

func New() *Inspector {
	return &Inspector{}
}

func (i *Inspector) IsRepo(projectPath string) bool {
	_, err := git.PlainOpen(projectPath)
	return err == nil
}

// IsClean reports whether the working tree has no uncommitted changes.
// The publish quality gate refuses to release from a dirty tree.
func (i *Inspector) IsClean(projectPath string) (bool, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return false, fmt.Errorf("opening git repo: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("getting status: %w", err)
	}

	return status.IsClean(), nil
}

func (i *Inspector) Head(projectPath string) (string, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
