package locate

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSourceDir is the conventional source subdirectory scanned for
// target files.
const DefaultSourceDir = "ballerina"

// DefaultTargets is the ordered set of base names selected for review.
var DefaultTargets = []string{"client.bal", "types.bal", "utils.bal"}

// Targets walks repoRoot/sourceDir and returns the absolute path of every
// regular file whose base name is in names. A missing source directory is
// not an error: there is simply nothing to review. The result is in lexical
// depth-first order; the same physical name appearing in several
// subdirectories is listed once per occurrence.
func Targets(repoRoot, sourceDir string, names []string) ([]string, error) {
	if sourceDir == "" {
		sourceDir = DefaultSourceDir
	}
	if len(names) == 0 {
		names = DefaultTargets
	}

	root := filepath.Join(repoRoot, sourceDir)
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("checking source directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving source directory: %w", err)
	}

	// Explicit worklist instead of recursion; entries are pushed in reverse
	// so directories come off the stack in lexical order.
	var found []string
	stack := []string{absRoot}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", dir, err)
		}
		var subdirs []string
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				subdirs = append(subdirs, path)
				continue
			}
			if entry.Type().IsRegular() && wanted[entry.Name()] {
				found = append(found, path)
			}
		}
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}
	return found, nil
}
