package output

import (
	"fmt"
	"io"

	"github.com/dshills/groom/internal/review"
)

// Progress returns a callback that prints one status line per file as the
// engine finishes it. Rewrites of large files take seconds each, so a
// silent run reads as a hang.
func Progress(w io.Writer) review.ProgressFunc {
	return func(res review.FileResult) {
		switch res.Status {
		case review.StatusModified, review.StatusClean, review.StatusFailed:
			fmt.Fprintf(w, "%s  %s (%dms)\n", statusLabel(res.Status), res.Path, res.DurationMs)
		default:
			fmt.Fprintf(w, "%s  %s\n", statusLabel(res.Status), res.Path)
		}
	}
}
