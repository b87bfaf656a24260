// Package check defines the presubmit check abstraction: a named validation
// routine with a path applicability filter and an always-run policy, plus
// the three-valued outcome it produces.
//
// A check routine takes either the filtered path list or no paths at all;
// the shape is chosen at construction with New or NewNoArg. Routines signal
// failure by returning any error. External interruption is delivered
// through the context and is classified separately from failure.
package check

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Func is a check routine that validates the filtered path list.
type Func func(ctx context.Context, paths []string) error

// NoArgFunc is a check routine that ignores the path list, e.g. one that
// runs a whole-repository build.
type NoArgFunc func(ctx context.Context) error

// Failure is the error value check routines use to report what failed.
// Any other error works too; Failure just carries an optional path.
type Failure struct {
	Path        string
	Description string
}

func (f *Failure) Error() string {
	if f.Path != "" {
		return f.Path + ": " + f.Description
	}
	return f.Description
}

// Reporter receives the observational header and footer around one check
// invocation. It never influences the returned Outcome.
type Reporter interface {
	CheckHeader(index, total int, name string, files int)
	CheckFooter(name string, outcome Outcome, elapsed time.Duration, ran bool)
	Failure(msg string)
}

// Check wraps a validation routine with its path filter and always-run
// policy. Checks are immutable once constructed.
type Check struct {
	name      string
	fn        Func
	noArg     NoArgFunc
	filter    *PathFilter
	alwaysRun bool
}

// Option configures a Check at construction.
type Option func(*Check)

// WithFilter attaches a path filter. Without one the check sees every path.
func WithFilter(f *PathFilter) Option {
	return func(c *Check) { c.filter = f }
}

// RunOnlyIfFiles skips the check (with an implicit Pass) when its filtered
// path set is empty. The default is to run regardless.
func RunOnlyIfFiles() Option {
	return func(c *Check) { c.alwaysRun = false }
}

// New builds a Check around a routine that receives the filtered paths.
// Configuration problems are reported here, before any run.
func New(name string, fn Func, opts ...Option) (*Check, error) {
	if fn == nil {
		return nil, fmt.Errorf("check: %q has a nil routine", name)
	}
	return newCheck(&Check{name: name, fn: fn}, opts)
}

// NewNoArg builds a Check around a routine that takes no path argument.
func NewNoArg(name string, fn NoArgFunc, opts ...Option) (*Check, error) {
	if fn == nil {
		return nil, fmt.Errorf("check: %q has a nil routine", name)
	}
	return newCheck(&Check{name: name, noArg: fn}, opts)
}

func newCheck(c *Check, opts []Option) (*Check, error) {
	if c.name == "" {
		return nil, errors.New("check: name must not be empty")
	}
	c.alwaysRun = true
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Must panics on a configuration error; for package-level program assembly.
func Must(c *Check, err error) *Check {
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the check's display name.
func (c *Check) Name() string { return c.name }

// RunInput carries one invocation's inputs: the full path set, the check's
// position in the program, and the reporting sink (nil for silent runs).
type RunInput struct {
	Paths    []string
	Index    int
	Total    int
	Reporter Reporter
}

// Run filters the path set and invokes the routine, classifying the result.
// The input paths are never mutated. Panics inside the routine count as
// Fail; an expired context counts as Cancel regardless of what the routine
// returned, since the interrupt came from outside the check.
func (c *Check) Run(ctx context.Context, in RunInput) Outcome {
	paths := c.filter.Apply(in.Paths)

	if in.Reporter != nil {
		in.Reporter.CheckHeader(in.Index, in.Total, c.name, len(paths))
	}

	if len(paths) == 0 && !c.alwaysRun {
		log.Debug("no affected files, skipping", "check", c.name)
		if in.Reporter != nil {
			in.Reporter.CheckFooter(c.name, Pass, 0, false)
		}
		return Pass
	}

	log.Debug("running check", "check", c.name, "position", fmt.Sprintf("%d/%d", in.Index, in.Total), "files", len(paths))

	start := time.Now()
	err := c.invoke(ctx, paths)
	elapsed := time.Since(start)

	outcome := classify(ctx, err)
	log.Debug("check finished", "check", c.name, "outcome", outcome, "elapsed", elapsed)

	if in.Reporter != nil {
		in.Reporter.CheckFooter(c.name, outcome, elapsed, true)
		if outcome == Fail && err != nil && err.Error() != "" {
			in.Reporter.Failure(err.Error())
		}
	}
	return outcome
}

func (c *Check) invoke(ctx context.Context, paths []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("check %s panicked: %v", c.name, r)
		}
	}()
	if c.noArg != nil {
		return c.noArg(ctx)
	}
	return c.fn(ctx, paths)
}

// classify maps an invocation result to an Outcome by signal origin: a
// cancelled context means the run was interrupted externally, no matter
// what the routine returned.
func classify(ctx context.Context, err error) Outcome {
	if ctx.Err() != nil {
		return Cancel
	}
	if err != nil {
		return Fail
	}
	return Pass
}
