// Package fsutil provides filesystem helpers shared by the scanning services:
// content hashing, text detection and size formatting.
package fsutil

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const textSampleSize = 512

// Checksum returns the MD5 hex digest of the file at path, used to detect
// content changes between scans.
func Checksum(path string) (string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to open file for hashing: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// IsLikelyText reports whether the file at path looks like text. It samples
// the first 512 bytes, rejects anything containing a NUL byte and requires
// more than 70% printable ASCII.
func IsLikelyText(path string) bool {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return false
	}
	defer func() {
		_ = f.Close()
	}()

	sample := make([]byte, textSampleSize)
	n, err := f.Read(sample)
	if n == 0 || (err != nil && err != io.EOF) {
		return false
	}
	sample = sample[:n]

	printable := 0
	for _, b := range sample {
		if b == 0 {
			return false
		}
		if (b >= 32 && b <= 126) || b == '\t' || b == '\n' || b == '\r' {
			printable++
		}
	}

	return float64(printable)/float64(len(sample)) > 0.7
}

// FormatSize converts a byte count to a human readable string.
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(size)/float64(div), "KMGTP"[exp])
}
