package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTestFile creates a file with the given content under dir, creating
// intermediate directories as needed, and returns its absolute path.
func WriteTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, content, 0600))
	return path
}

// WriteTestTree materializes a map of relative path -> content as a
// directory tree rooted at a fresh temp dir and returns the root.
func WriteTestTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		WriteTestFile(t, root, name, []byte(content))
	}
	return root
}
