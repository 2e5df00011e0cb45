package review

import (
	"fmt"
	"os"
	"strings"

	"github.com/dshills/groom/internal/checksum"
)

// Guideline is the static review document sent with every file.
type Guideline struct {
	Path     string
	Text     string
	Checksum string
}

// LoadGuideline reads the guideline document. An unreadable or effectively
// empty file is a fatal startup error: submitting files against no
// instructions would rewrite them arbitrarily.
func LoadGuideline(path string) (Guideline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Guideline{}, fmt.Errorf("reading guideline file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return Guideline{}, fmt.Errorf("guideline file %s is empty", path)
	}
	return Guideline{
		Path:     path,
		Text:     string(data),
		Checksum: checksum.Bytes(data),
	}, nil
}
