package review

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGuideline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guidelines.md")
	require.NoError(t, os.WriteFile(path, []byte("# Connector guidelines\n\nUse camelCase.\n"), 0o644))

	g, err := LoadGuideline(path)
	require.NoError(t, err)
	assert.Equal(t, path, g.Path)
	assert.Contains(t, g.Text, "Use camelCase.")
	assert.Len(t, g.Checksum, 64)
}

func TestLoadGuidelineMissing(t *testing.T) {
	_, err := LoadGuideline(filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)
}

func TestLoadGuidelineEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.md")
	require.NoError(t, os.WriteFile(path, []byte("  \n\t\n"), 0o644))

	_, err := LoadGuideline(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}
