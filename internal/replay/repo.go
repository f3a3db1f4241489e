// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package replay

import (
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
)

// openOrInit opens an existing repository at dir or initializes a fresh one.
// Both failing is fatal for the run: no subsequent work can succeed without
// a repository.
func openOrInit(dir string) (*git.Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating repository directory %s: %w", dir, err)
	}

	repo, err := git.PlainOpen(dir)
	if err == nil {
		return repo, nil
	}
	repo, err = git.PlainInit(dir, false)
	if err == nil {
		return repo, nil
	}
	return nil, fmt.Errorf("initializing repository %s: %w", dir, err)
}
