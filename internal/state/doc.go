// Package state persists per-repository review history.
//
// The state lives in a single hidden JSON file (.groom-state.json) at the
// repository root. It maps repo-relative file paths to the content checksum
// and timestamp recorded at the last successful review, plus the commit id
// and timestamp of the last incremental run. A missing state file is a valid
// empty state; a malformed one is a fatal parse error so history is never
// silently discarded.
//
// Saves go through a temp file and an atomic rename so a failed write never
// leaves a partially written state file behind.
package state
