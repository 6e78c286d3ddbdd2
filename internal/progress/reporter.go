// Package progress reports per-page feedback while a site is injected.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives injection progress: one Page call per rewritten
// page, with refreshed marking pages that already carried the widget.
type Reporter interface {
	Start(total int)
	Page(current int, rel string, refreshed bool)
	Finish(fresh, refreshed int)
}

// NewReporter returns a LineReporter when verbose output is requested
// or a CI environment is detected, otherwise a TerminalReporter.
func NewReporter(verbose bool) Reporter {
	if verbose || os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LineReporter{}
	}
	return &TerminalReporter{}
}

func pageLabel(rel string, refreshed bool) string {
	if refreshed {
		return "refresh " + rel
	}
	return "inject " + rel
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Injecting flyout"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Page(current int, rel string, refreshed bool) {
	if r.bar != nil {
		r.bar.Describe(pageLabel(rel, refreshed))
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish(fresh, refreshed int) {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LineReporter prints one line per page, for CI logs and verbose runs.
type LineReporter struct {
	Out   io.Writer // defaults to os.Stderr
	total int
}

func (r *LineReporter) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stderr
}

func (r *LineReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.out(), "Injecting flyout into %d pages\n", total)
}

func (r *LineReporter) Page(current int, rel string, refreshed bool) {
	fmt.Fprintf(r.out(), "[%d/%d] %s\n", current, r.total, pageLabel(rel, refreshed))
}

func (r *LineReporter) Finish(fresh, refreshed int) {
	fmt.Fprintf(r.out(), "Done: %d pages injected, %d refreshed\n", fresh, refreshed)
}

// Quiet discards all progress updates; used by tests and watch-mode
// re-injection.
type Quiet struct{}

func (Quiet) Start(int)              {}
func (Quiet) Page(int, string, bool) {}
func (Quiet) Finish(int, int)        {}
