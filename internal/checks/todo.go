package checks

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/bartekus/gatecheck/internal/check"
)

var (
	todoPattern  = regexp.MustCompile(`\bTODO\b`)
	ownedPattern = regexp.MustCompile(`\bTODO\([^)]+\)`)
)

// TodoHasOwner fails when a TODO comment has no owner tag, i.e. is not of
// the form TODO(owner) or TODO(bug-reference).
func TodoHasOwner(ctx context.Context, paths []string) error {
	var violations []string

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		found, err := scanTodos(path)
		if err != nil {
			return err
		}
		violations = append(violations, found...)
	}

	if len(violations) == 0 {
		return nil
	}
	return &check.Failure{
		Description: "TODOs without an owner, use TODO(owner):\n  " + strings.Join(violations, "\n  "),
	}
}

func scanTodos(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var violations []string
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if todoPattern.MatchString(text) && !ownedPattern.MatchString(text) {
			violations = append(violations, fmt.Sprintf("%s:%d", path, line))
		}
	}
	return violations, scanner.Err()
}
