// Package gitrev resolves version-control revision identifiers for
// incremental runs. The commit id is bookkeeping only; change detection is
// content-checksum based, so this is the sole git dependency in the tool.
package gitrev

import (
	"fmt"
	"os/exec"
	"strings"
)

// Head returns the repository's current HEAD revision.
func Head(repoRoot string) (string, error) {
	out, err := gitOutput("-C", repoRoot, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("resolving HEAD in %s: %w", repoRoot, err)
	}
	return strings.TrimSpace(out), nil
}

func gitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
