// Package gitinfo resolves the checked tree's git state for the report
// header, using go-git so no git binary is required.
package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Adapter reads repository state for a scan root.
type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func open(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
}

// IsRepo reports whether path is inside a git work tree.
func (a *Adapter) IsRepo(path string) bool {
	_, err := open(path)
	return err == nil
}

// ShortHash returns the abbreviated HEAD commit hash for the repository
// containing path.
func (a *Adapter) ShortHash(path string) (string, error) {
	repo, err := open(path)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String()[:7], nil
}
