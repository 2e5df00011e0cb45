package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/groom/internal/review"
)

// Writer renders a run report in one format.
type Writer interface {
	Write(w io.Writer, report *review.Report) error
}

// GetWriter returns the writer for a format name. Matching is
// case-insensitive so `--format JSON` works.
func GetWriter(format string) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (want text or json)", format)
	}
}

// WriteReport renders the report to outPath, or to stdout when outPath is
// empty. A file destination is the CI-artifact path; stdout is the normal
// interactive one.
func WriteReport(report *review.Report, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	if outPath == "" {
		return writer.Write(os.Stdout, report)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := writer.Write(f, report); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
