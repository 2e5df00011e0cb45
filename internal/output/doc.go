// Package output formats run reports for display or machine consumption.
//
// Two formats are supported:
//   - text — human-readable terminal output (default)
//   - json — full structured JSON report
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*review.Report]. [WriteReport]
// is a convenience helper that handles destination selection. [Progress]
// builds the per-file status line printer the engine calls during a run.
package output
