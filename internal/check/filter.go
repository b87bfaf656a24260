package check

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// PathFilter narrows a path set to the paths one check cares about.
// A path is kept iff it ends with one of the configured suffixes AND does
// not fully match any exclude pattern. Filters are immutable after
// construction and safe for concurrent reuse.
type PathFilter struct {
	suffixes []string
	exclude  []*regexp.Regexp
}

// NewFilter builds a PathFilter from a suffix allow-list and optional
// exclude regular expressions. An empty allow-list is rejected: it would
// silently match nothing and disable the check. Exclude patterns match the
// whole path, not a substring.
func NewFilter(endswith []string, exclude ...string) (*PathFilter, error) {
	if len(endswith) == 0 {
		return nil, errors.New("check: path filter requires at least one suffix")
	}

	f := &PathFilter{suffixes: append([]string(nil), endswith...)}
	for _, pattern := range exclude {
		re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
		if err != nil {
			return nil, fmt.Errorf("check: bad exclude pattern %q: %w", pattern, err)
		}
		f.exclude = append(f.exclude, re)
	}
	return f, nil
}

// MustFilter is NewFilter for package-level program assembly; it panics on
// a configuration error.
func MustFilter(endswith []string, exclude ...string) *PathFilter {
	f, err := NewFilter(endswith, exclude...)
	if err != nil {
		panic(err)
	}
	return f
}

// Apply returns the kept subset of paths, preserving order. A nil filter is
// the identity: every path is kept.
func (f *PathFilter) Apply(paths []string) []string {
	if f == nil {
		return paths
	}
	var kept []string
	for _, path := range paths {
		if f.keep(path) {
			kept = append(kept, path)
		}
	}
	return kept
}

func (f *PathFilter) keep(path string) bool {
	matched := false
	for _, suffix := range f.suffixes {
		if strings.HasSuffix(path, suffix) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, re := range f.exclude {
		if re.MatchString(path) {
			return false
		}
	}
	return true
}
