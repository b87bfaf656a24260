// Package runner sequences an ordered program of checks over a fixed path
// set, applying the continue-on-error policy and producing the run verdict.
//
// Execution is strictly sequential: a later check never starts before an
// earlier one has returned its outcome. A Fail aborts the remaining program
// unless continue-on-error is enabled; a Cancel always aborts it, because an
// external interrupt means the operator wants to stop entirely.
package runner

import (
	"context"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bartekus/gatecheck/internal/check"
)

// Reporter is the sink for everything a run prints. A nil Reporter runs
// silently; report output never affects outcomes or the verdict.
type Reporter interface {
	check.Reporter
	Title(text string)
	FileSummary(paths []string)
	Summary(passed, failed, skipped int, elapsed time.Duration, ok bool)
}

// Record is the working state of one run: the names of the checks that
// passed, failed, and were skipped. It exists only to produce the verdict
// and summary; nothing is persisted across runs.
type Record struct {
	Passed  []string
	Failed  []string
	Skipped []string
	Elapsed time.Duration
}

// Runner executes presubmit programs against a repository's path set.
type Runner struct {
	root            string
	paths           []string
	reporter        Reporter
	continueOnError bool
}

// Option configures a Runner at construction.
type Option func(*Runner)

// ContinueOnError lets the run proceed past a failed check instead of
// skipping the rest of the program. Cancellation still aborts.
func ContinueOnError(v bool) Option {
	return func(r *Runner) { r.continueOnError = v }
}

// WithReporter attaches the report sink.
func WithReporter(rep Reporter) Option {
	return func(r *Runner) { r.reporter = rep }
}

// New builds a Runner over the repository root and its resolved path set.
// The path set is treated as immutable for the duration of every run.
func New(root string, paths []string, opts ...Option) *Runner {
	r := &Runner{root: root, paths: paths}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the program in order and returns the verdict plus the run
// record. The verdict is true iff nothing failed and nothing was skipped.
// Every check in the program is accounted for exactly once: after the run,
// len(Passed)+len(Failed)+len(Skipped) equals len(program).
func (r *Runner) Run(ctx context.Context, program []*check.Check) (bool, Record) {
	if r.reporter != nil {
		r.reporter.Title("Presubmit checks for " + filepath.Base(r.root))
		r.reporter.FileSummary(r.paths)
	}

	log.Info("running checks", "checks", len(program), "files", len(r.paths), "root", r.root)

	var rec Record
	start := time.Now()

	for i, c := range program {
		outcome := c.Run(ctx, check.RunInput{
			Paths:    r.paths,
			Index:    i + 1,
			Total:    len(program),
			Reporter: r.reporter,
		})

		if outcome == check.Cancel {
			// The cancelled check counts as skipped, once, along with
			// everything after it.
			for _, rest := range program[i:] {
				rec.Skipped = append(rec.Skipped, rest.Name())
			}
			break
		}

		if outcome == check.Fail {
			rec.Failed = append(rec.Failed, c.Name())
			if !r.continueOnError {
				for _, rest := range program[i+1:] {
					rec.Skipped = append(rec.Skipped, rest.Name())
				}
				break
			}
			continue
		}

		rec.Passed = append(rec.Passed, c.Name())
	}

	rec.Elapsed = time.Since(start)
	ok := len(rec.Failed) == 0 && len(rec.Skipped) == 0

	if r.reporter != nil {
		r.reporter.Summary(len(rec.Passed), len(rec.Failed), len(rec.Skipped), rec.Elapsed, ok)
	}
	return ok, rec
}
