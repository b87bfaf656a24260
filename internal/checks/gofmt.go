package checks

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/bartekus/gatecheck/internal/check"
)

// Batch size keeps command lines under ARG_MAX on large path sets.
const gofmtBatchSize = 200

// Gofmt fails when any of the given Go files is not gofmt-formatted.
func Gofmt(ctx context.Context, paths []string) error {
	var unformatted []string

	for i := 0; i < len(paths); i += gofmtBatchSize {
		end := i + gofmtBatchSize
		if end > len(paths) {
			end = len(paths)
		}

		cmd := exec.CommandContext(ctx, "gofmt", append([]string{"-l"}, paths[i:end]...)...)
		out, err := cmd.Output()
		if err != nil {
			return fmt.Errorf("gofmt execution failed: %w", err)
		}

		for _, line := range strings.Split(string(out), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				unformatted = append(unformatted, line)
			}
		}
	}

	if len(unformatted) == 0 {
		return nil
	}

	sort.Strings(unformatted)
	return &check.Failure{
		Description: fmt.Sprintf("unformatted files:\n  %s\n\nTo fix, run:\n  gofmt -w %s",
			strings.Join(unformatted, "\n  "), strings.Join(unformatted, " ")),
	}
}
