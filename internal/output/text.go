package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dshills/groom/internal/review"
)

// TextWriter outputs a human-readable text report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *review.Report) error {
	ew := &errWriter{w: w}

	// Summary header
	ew.printf("Groom Guideline Rewrite — %s mode\n", report.Mode)
	ew.printf("Repository: %s\n", report.RepoRoot)
	ew.printf("Guideline: %s\n", report.Guideline)
	if report.CommitID != "" {
		ew.printf("Commit: %s\n", report.CommitID)
	}
	ew.println(strings.Repeat("─", 60))
	ew.printf("Files: %d discovered, %d submitted", report.Discovered, report.Eligible)
	if report.Mode == review.ModeIncremental {
		ew.printf(" (%d unchanged since last review)", report.Discovered-report.Eligible)
	}
	ew.println("")
	ew.printf("Results: %d modified, %d clean, %d skipped, %d failed\n",
		report.Modified, report.Clean, report.Skipped, report.Failed)
	ew.println(strings.Repeat("─", 60))

	if report.DryRun {
		pending := report.Pending()
		if pending == 0 {
			ew.println("\nDry run: everything is up to date, nothing to rewrite.")
		} else {
			ew.printf("\nDry run: %d file(s) would be rewritten. No changes were made.\n", pending)
			for _, f := range report.Files {
				if f.Status == review.StatusWouldRewrite {
					ew.printf("  %s\n", f.Path)
				}
			}
		}
		return ew.err
	}

	if report.Discovered == 0 {
		ew.println("\nNo target files found. Nothing to do.")
		return ew.err
	}

	for _, f := range report.Files {
		switch f.Status {
		case review.StatusModified:
			ew.printf("\n  %s  %s", statusLabel(f.Status), f.Path)
			if f.CacheHit {
				ew.printf("  (cached)")
			} else if f.TokensUsed > 0 {
				ew.printf("  (%d tokens)", f.TokensUsed)
			}
			ew.println("")
		case review.StatusSkippedSecret:
			ew.printf("\n  %s  %s  (possible secret, not submitted)\n", statusLabel(f.Status), f.Path)
		case review.StatusFailed:
			ew.printf("\n  %s  %s\n", statusLabel(f.Status), f.Path)
			for _, line := range wrapText(f.Error, 70) {
				ew.printf("      %s\n", line)
			}
		}
	}

	if report.Modified == 0 && report.Failed == 0 {
		ew.println("\nAll files already conform to the guidelines.")
	}

	ew.printf("\n%s\n", strings.Repeat("─", 60))
	ew.printf("Completed in %dms (discovery: %dms, LLM: %dms)\n",
		report.Timing.TotalMs, report.Timing.DiscoveryMs, report.Timing.LLMMs)

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

var (
	modifiedColor = color.New(color.FgGreen)
	cleanColor    = color.New(color.FgCyan)
	skipColor     = color.New(color.FgYellow)
	failColor     = color.New(color.FgRed)
)

func statusLabel(s review.Status) string {
	switch s {
	case review.StatusModified:
		return modifiedColor.Sprint("rewrote ")
	case review.StatusClean:
		return cleanColor.Sprint("clean   ")
	case review.StatusUnchanged:
		return skipColor.Sprint("skipped ")
	case review.StatusWouldRewrite:
		return skipColor.Sprint("pending ")
	case review.StatusSkippedSecret:
		return skipColor.Sprint("skipped ")
	case review.StatusFailed:
		return failColor.Sprint("FAILED  ")
	default:
		return string(s)
	}
}

func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	words := strings.Fields(text)
	var current strings.Builder
	for _, word := range words {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
