// Package report renders the human-readable side of a presubmit run: the
// title banner, per-check headers and footers, failure messages, and the
// final summary box. It is a pure consumer of runner output and has no
// influence on control flow.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bartekus/gatecheck/internal/check"
)

const width = 80

// Printer writes the run report to a single writer. The color policy is
// resolved once at construction; there is no ambient color state.
type Printer struct {
	w io.Writer

	rule string
	box  lipgloss.Style

	pass   lipgloss.Style
	fail   lipgloss.Style
	cancel lipgloss.Style

	passBanner lipgloss.Style
	failBanner lipgloss.Style
}

// NewPrinter builds a Printer. With color disabled every style renders as
// plain text, which also keeps output stable for tests and log capture.
func NewPrinter(w io.Writer, color bool) *Printer {
	p := &Printer{
		w:    w,
		rule: strings.Repeat("━", width),
		box: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Width(width - 2).
			Align(lipgloss.Center),
	}

	p.pass = lipgloss.NewStyle()
	p.fail = lipgloss.NewStyle()
	p.cancel = lipgloss.NewStyle()
	p.passBanner = lipgloss.NewStyle()
	p.failBanner = lipgloss.NewStyle()

	if color {
		p.pass = p.pass.Foreground(lipgloss.Color("2"))
		p.fail = p.fail.Foreground(lipgloss.Color("1"))
		p.cancel = p.cancel.Foreground(lipgloss.Color("3")).Bold(true)
		p.passBanner = p.passBanner.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2"))
		p.failBanner = p.failBanner.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("1"))
	}
	return p
}

// Title prints the double-bordered run banner.
func (p *Printer) Title(text string) {
	fmt.Fprintln(p.w, p.box.Render(text))
}

// FileSummary prints per-extension file counts for the path set. Paths
// without an extension are grouped by base name.
func (p *Printer) FileSummary(paths []string) {
	counts := make(map[string]int)
	for _, path := range paths {
		key := filepath.Ext(path)
		if key == "" {
			key = filepath.Base(path)
		}
		counts[key]++
	}
	if len(counts) == 0 {
		return
	}

	keys := make([]string, 0, len(counts))
	pad := 0
	for k := range counts {
		keys = append(keys, k)
		if len(k) > pad {
			pad = len(k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(p.w, "%*s: %s\n", pad+2, k, plural(counts[k], "file"))
	}
}

// CheckHeader prints the banner preceding one check invocation.
func (p *Printer) CheckHeader(index, total int, name string, files int) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.rule)
	fmt.Fprintf(p.w, "[%d/%d] %s (%s)\n", index, total, name, plural(files, "file"))
}

// CheckFooter prints the outcome line following one check invocation. When
// the check was skipped without running, the time column reads "skipped".
func (p *Printer) CheckFooter(name string, outcome check.Outcome, elapsed time.Duration, ran bool) {
	timeStr := "skipped"
	if ran {
		timeStr = formatDuration(elapsed)
	}
	fmt.Fprintf(p.w, "%s %s (%s)\n", p.label(outcome), name, timeStr)
}

// Failure prints a check's own failure message.
func (p *Printer) Failure(msg string) {
	fmt.Fprintln(p.w, msg)
}

// Summary prints the final verdict box: counts, total elapsed time, and an
// inverted PASSED/FAILED cell.
func (p *Printer) Summary(passed, failed, skipped int, elapsed time.Duration, ok bool) {
	var parts []string
	if passed > 0 {
		parts = append(parts, fmt.Sprintf("%d passed", passed))
	}
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failed))
	}
	if skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", skipped))
	}

	banner := p.failBanner.Render(" FAILED ")
	if ok {
		banner = p.passBanner.Render(" PASSED ")
	}

	total := plural(passed+failed+skipped, "check")
	line := total
	if len(parts) > 0 {
		line = fmt.Sprintf("%s: %s", total, strings.Join(parts, ", "))
	}

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.box.Render(fmt.Sprintf("%s  %s  %s", banner, line, formatDuration(elapsed))))
}

func (p *Printer) label(outcome check.Outcome) string {
	switch outcome {
	case check.Pass:
		return p.pass.Render(outcome.String())
	case check.Fail:
		return p.fail.Render(outcome.String())
	case check.Cancel:
		return p.cancel.Render(outcome.String())
	}
	return outcome.String()
}
