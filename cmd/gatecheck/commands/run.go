// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/bartekus/gatecheck/cmd/gatecheck/internal/clierr"
	"github.com/bartekus/gatecheck/internal/checks"
	"github.com/bartekus/gatecheck/internal/config"
	"github.com/bartekus/gatecheck/internal/gitrepo"
	"github.com/bartekus/gatecheck/internal/report"
	"github.com/bartekus/gatecheck/internal/runner"
)

type runOptions struct {
	base            string
	exclude         []string
	repository      string
	continueOnError bool
	program         string
	noColor         bool
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Run a presubmit program on a Git repository",
		Long: `Run an ordered program of presubmit checks over the repository's files.

Without --base, all tracked files are checked. With --base, only files
changed since that revision are. Positional paths restrict the set further;
directories are expanded with git ls-files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresubmit(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.base, "base", "b", "", "git revision against which to diff for changed files")
	cmd.Flags().StringArrayVarP(&opts.exclude, "exclude", "e", nil, "exclude paths matching this regular expression (repeatable)")
	cmd.Flags().StringVarP(&opts.repository, "repository", "r", ".", "path to the repository in which to run the checks")
	cmd.Flags().BoolVar(&opts.continueOnError, "continue", false, "continue instead of aborting when a check fails")
	cmd.Flags().StringVar(&opts.program, "program", "", "named check program to run (see 'gatecheck list')")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colorized output")

	return cmd
}

func runPresubmit(cmd *cobra.Command, pathspecs []string, opts runOptions) error {
	ctx := cmd.Context()

	if !gitrepo.IsRepo(ctx, opts.repository) {
		return clierr.Newf(2, "presubmit checks must be run from a Git repository: %s", opts.repository)
	}
	root, err := gitrepo.Root(ctx, opts.repository)
	if err != nil {
		return clierr.Wrap(2, "resolving repository root", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return clierr.Wrap(2, "loading configuration", err)
	}

	name := opts.program
	if name == "" {
		name = cfg.Program
	}
	if name == "" {
		name = "quick"
	}
	program, err := checks.Program(name)
	if err != nil {
		return clierr.Wrap(2, "selecting program", err)
	}

	excludes, err := compileExcludes(append(append([]string(nil), cfg.Exclude...), opts.exclude...))
	if err != nil {
		return clierr.Wrap(2, "bad exclude pattern", err)
	}

	files, err := gitrepo.ListFiles(ctx, gitrepo.ListOptions{
		Repo:      root,
		Base:      opts.base,
		Pathspecs: pathspecs,
		Exclude:   excludes,
	})
	if err != nil {
		return clierr.Wrap(2, "listing files", err)
	}
	if len(files) == 0 {
		return clierr.New(1, "no files to check")
	}

	// Checks run from the repository root and see root-relative paths.
	if err := os.Chdir(root); err != nil {
		return clierr.Wrap(2, "entering repository root", err)
	}
	paths := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		if err != nil {
			rel = f
		}
		paths = append(paths, rel)
	}

	color := !opts.noColor && cfg.Color != "never"
	printer := report.NewPrinter(cmd.OutOrStdout(), color)

	r := runner.New(root, paths,
		runner.WithReporter(printer),
		runner.ContinueOnError(opts.continueOnError),
	)

	ok, _ := r.Run(ctx, program)
	if !ok {
		return clierr.Newf(1, "presubmit program %q failed", name)
	}
	return nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	var res []*regexp.Regexp
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", pattern, err)
		}
		res = append(res, re)
	}
	return res, nil
}
