// Package root locates the config file for a working directory.
package root

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/conn-castle/podkit/internal/messages"
)

// FindConfig walks up from start looking for a regular file called name.
// The search stops after the first directory containing .git, so a config
// outside the enclosing repository is never picked up.
func FindConfig(start string, name string) (string, bool, error) {
	if start == "" {
		return "", false, errors.New(messages.DiscoverStartPathRequired)
	}
	dir := filepath.Clean(start)
	for {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err == nil {
			if !info.Mode().IsRegular() {
				return "", false, fmt.Errorf(messages.DiscoverNotRegularFileFmt, candidate)
			}
			return candidate, true, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", false, fmt.Errorf(messages.DiscoverStatFmt, candidate, err)
		}

		repoRoot, err := isRepoRoot(dir)
		if err != nil {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if repoRoot || parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// isRepoRoot reports whether dir holds a .git directory or a worktree .git file.
func isRepoRoot(dir string) (bool, error) {
	path := filepath.Join(dir, ".git")
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf(messages.DiscoverStatFmt, path, err)
	}
	if info.IsDir() || info.Mode().IsRegular() {
		return true, nil
	}
	return false, fmt.Errorf(messages.DiscoverGitInvalidFmt, path)
}
