// Package gitrepo resolves repository state for the presubmit runner: the
// repository root, whether a directory is a repository at all, and the
// deduplicated, existing-file-only, absolute, sorted path set to check.
package gitrepo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// IsRepo reports whether dir is inside a Git repository.
func IsRepo(ctx context.Context, dir string) bool {
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "rev-parse")
	return cmd.Run() == nil
}

// Root returns the canonical root of the repository containing dir.
func Root(ctx context.Context, dir string) (string, error) {
	out, err := gitOutput(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("gitrepo: resolving repository root of %s: %w", dir, err)
	}
	return out, nil
}

// ListOptions selects which repository files ListFiles returns.
type ListOptions struct {
	// Repo is the repository to list; defaults to the current directory.
	Repo string
	// Base is a git revision to diff against. When set, only files changed
	// since Base are listed; otherwise all tracked files are.
	Base string
	// Pathspecs restrict the listing. Pathspecs naming plain files are also
	// included literally, whether or not git tracks them.
	Pathspecs []string
	// Exclude drops any path whose repo-relative name matches one of these
	// expressions.
	Exclude []*regexp.Regexp
}

// ListFiles returns the path set for one presubmit run: deduplicated,
// existing files only, absolute, sorted. Files deleted in a diff are
// dropped, since a check cannot read them.
func ListFiles(ctx context.Context, opts ListOptions) ([]string, error) {
	repo := opts.Repo
	if repo == "" {
		repo = "."
	}

	var names []string
	if opts.Base != "" {
		args := append([]string{"diff", "--name-only", opts.Base, "--"}, opts.Pathspecs...)
		out, err := gitOutput(ctx, repo, args...)
		if err != nil {
			return nil, fmt.Errorf("gitrepo: git diff --name-only %s: %w", opts.Base, err)
		}
		names = strings.Fields(out)
	} else {
		for _, spec := range opts.Pathspecs {
			if info, err := os.Stat(spec); err == nil && !info.IsDir() {
				names = append(names, spec)
			}
		}
		tracked, err := lsFiles(ctx, repo, opts.Pathspecs)
		if err != nil {
			return nil, err
		}
		names = append(names, tracked...)
	}

	seen := make(map[string]struct{})
	var files []string
	for _, name := range names {
		if matchesAny(name, opts.Exclude) {
			continue
		}
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(repo, name)
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		if _, ok := seen[abs]; ok {
			continue
		}
		seen[abs] = struct{}{}
		files = append(files, abs)
	}

	sort.Strings(files)
	return files, nil
}

// lsFiles lists tracked files NUL-separated to avoid quoting issues.
func lsFiles(ctx context.Context, repo string, pathspecs []string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"ls-files", "-z", "--"}, pathspecs...)...)
	cmd.Dir = repo
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("gitrepo: git ls-files failed: %w", err)
	}
	trimmed := strings.TrimSuffix(string(out), "\x00")
	if trimmed == "" {
		return nil, nil
	}
	return strings.Split(trimmed, "\x00"), nil
}

func matchesAny(name string, excludes []*regexp.Regexp) bool {
	for _, re := range excludes {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

func gitOutput(ctx context.Context, repo string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = repo
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
