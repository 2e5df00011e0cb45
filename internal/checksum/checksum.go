package checksum

import (
	"crypto/sha256"
	"fmt"
	"os"
)

// Bytes returns the SHA-256 hex fingerprint of b.
func Bytes(b []byte) string {
	h := sha256.Sum256(b)
	return fmt.Sprintf("%x", h)
}

// File reads the file at path in full and returns its fingerprint.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return Bytes(data), nil
}
