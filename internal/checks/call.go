// Package checks holds the built-in presubmit checks and the named programs
// that group them. Checks here are ordinary check routines; nothing in this
// package is special to the engine.
package checks

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bartekus/gatecheck/internal/check"
)

// Call runs a command and converts a nonzero exit into a check failure that
// carries the command's combined output, so the failure message shows what
// the tool printed.
func Call(ctx context.Context, name string, args ...string) error {
	display := strings.Join(append([]string{name}, args...), " ")

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Warn("command failed", "command", display, "err", err)
		msg := fmt.Sprintf("%s: %v", display, err)
		if len(out) > 0 {
			msg += "\n" + strings.TrimRight(string(out), "\n")
		}
		return &check.Failure{Description: msg}
	}

	log.Debug("command passed", "command", display)
	return nil
}
