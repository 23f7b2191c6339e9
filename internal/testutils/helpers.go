package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupCardDir creates a temporary pattern-pack directory and writes the
// given cards into it as markdown files. Keys are file names (without
// extension), values are full file contents including frontmatter.
// It returns the absolute path to the directory.
func SetupCardDir(t *testing.T, cards map[string]string) string {
	t.Helper()

	tmpDir := t.TempDir()

	// Loam sometimes prefers absolute paths, though t.TempDir usually returns one.
	// Ensuring it is absolute is safe.
	absPath, err := filepath.Abs(tmpDir)
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	for name, content := range cards {
		path := filepath.Join(absPath, name+".md")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write card %s", name)
	}

	return absPath
}
