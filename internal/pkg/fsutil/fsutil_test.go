//go:build unit
// +build unit

package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0600))
	return path
}

func TestChecksum(t *testing.T) {
	path := writeFile(t, "hello.txt", []byte("hello world"))

	sum, err := Checksum(path)
	require.NoError(t, err)
	// md5("hello world")
	assert.Equal(t, "5eb63bbbe01eeed093cb22bb8f5acdc3", sum)
}

func TestChecksum_MissingFile(t *testing.T) {
	_, err := Checksum(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestIsLikelyText(t *testing.T) {
	textPath := writeFile(t, "notes.md", []byte("# Notes\n\nplain text content\n"))
	binaryPath := writeFile(t, "blob.bin", []byte{0x7f, 0x45, 0x4c, 0x46, 0x00, 0x01, 0x02})
	emptyPath := writeFile(t, "empty.txt", nil)

	assert.True(t, IsLikelyText(textPath))
	assert.False(t, IsLikelyText(binaryPath))
	assert.False(t, IsLikelyText(emptyPath))
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{512, "512 B"},
		{2048, "2.00 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatSize(tt.size))
	}
}
