// Package gitops versions the ledger data directory with git, so every
// committed mutation of the books leaves a recoverable trail.
package gitops

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Init initializes a new git repository at dir.
func Init(dir string) error {
	_, err := runGit(dir, "init")
	return err
}

// CommitAll stages everything under dir and creates a commit. Returns the
// short commit hash.
func CommitAll(dir, message, authorName, authorEmail string) (string, error) {
	if _, err := runGit(dir, "add", "-A"); err != nil {
		return "", err
	}

	args := []string{
		"-c", "user.name=" + authorName,
		"-c", "user.email=" + authorEmail,
		"commit", "-m", message,
	}
	if _, err := runGit(dir, args...); err != nil {
		return "", err
	}

	return runGit(dir, "rev-parse", "--short", "HEAD")
}

// IsRepo reports whether dir is the root of a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
