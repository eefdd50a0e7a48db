package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// Reporter follows a static export page by page.
type Reporter interface {
	Start(total int)
	Update(current int, page string)
	// Skip records an output that was not written, with the reason.
	Skip(page, reason string)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a CIReporter if the CI environment variable is set.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{out: os.Stderr}
	}
	return &TerminalReporter{out: os.Stderr}
}

// Skipped is one output left out of the export.
type Skipped struct {
	Page   string
	Reason string
}

// tally is the bookkeeping both reporters share.
type tally struct {
	total   int
	current int
	skipped []Skipped
}

func (t *tally) skip(page, reason string) {
	t.skipped = append(t.skipped, Skipped{Page: page, Reason: reason})
}

// summary describes the finished export, listing skipped outputs.
func (t *tally) summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Export complete: %d of %d pages processed", t.current, t.total)
	if len(t.skipped) == 0 {
		b.WriteString("\n")
		return b.String()
	}
	fmt.Fprintf(&b, ", %d skipped\n", len(t.skipped))
	for _, s := range t.skipped {
		fmt.Fprintf(&b, "  skipped %s: %s\n", s.Page, s.Reason)
	}
	return b.String()
}

// TerminalReporter displays a progress bar and lists skipped pages once
// the bar is gone.
type TerminalReporter struct {
	tally
	out io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.total = total
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.writer()),
		progressbar.OptionSetDescription("Exporting pages"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, page string) {
	r.current = current
	if r.bar != nil {
		r.bar.Describe("Exporting " + page)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Skip(page, reason string) {
	r.skip(page, reason)
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
	fmt.Fprint(r.writer(), r.summary())
}

func (r *TerminalReporter) writer() io.Writer {
	if r.out == nil {
		return os.Stderr
	}
	return r.out
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	tally
	out io.Writer
}

func (r *CIReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.writer(), "Exporting %d pages\n", total)
}

func (r *CIReporter) Update(current int, page string) {
	r.current = current
	fmt.Fprintf(r.writer(), "[%d/%d] %s\n", current, r.total, page)
}

func (r *CIReporter) Skip(page, reason string) {
	r.skip(page, reason)
	fmt.Fprintf(r.writer(), "[%d/%d] skipped %s: %s\n", r.current, r.total, page, reason)
}

func (r *CIReporter) Finish() {
	fmt.Fprint(r.writer(), r.summary())
}

func (r *CIReporter) writer() io.Writer {
	if r.out == nil {
		return os.Stderr
	}
	return r.out
}
