package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/groom/internal/checksum"
)

// FileName is the fixed name of the state file at the repository root.
const FileName = ".groom-state.json"

// FileRecord holds what was known about one file at its last review.
type FileRecord struct {
	Checksum     string `json:"checksum"`
	LastReviewed string `json:"lastReviewed"`
}

// State is the persisted review history for one repository.
type State struct {
	LastReviewedCommit  string                `json:"lastReviewedCommit"`
	LastReviewTimestamp string                `json:"lastReviewTimestamp"`
	ReviewedFiles       map[string]FileRecord `json:"reviewedFiles"`
}

// Path returns the state file path for a repository root.
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, FileName)
}

// Load reads the state file for repoRoot. A missing file yields an empty
// state; unreadable or malformed content is an error.
func Load(repoRoot string) (*State, error) {
	data, err := os.ReadFile(Path(repoRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return &State{ReviewedFiles: map[string]FileRecord{}}, nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing state file %s: %w", Path(repoRoot), err)
	}
	if st.ReviewedFiles == nil {
		st.ReviewedFiles = map[string]FileRecord{}
	}
	return &st, nil
}

// Save writes the full state for repoRoot. The write is staged in a temp
// file and renamed into place so the previous state survives any failure.
func Save(repoRoot string, st *State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(repoRoot, FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp state file: %w", err)
	}
	if err := os.Rename(tmpPath, Path(repoRoot)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}

// MarkReviewed re-reads the file at absPath, fingerprints its current
// content, and records it under its repo-relative path. The file must be
// re-read here: the rewrite step has usually just overwritten it.
func (s *State) MarkReviewed(repoRoot, absPath string) error {
	sum, err := checksum.File(absPath)
	if err != nil {
		return err
	}
	key, err := fileKey(repoRoot, absPath)
	if err != nil {
		return err
	}
	if s.ReviewedFiles == nil {
		s.ReviewedFiles = map[string]FileRecord{}
	}
	s.ReviewedFiles[key] = FileRecord{
		Checksum:     sum,
		LastReviewed: time.Now().UTC().Format(time.RFC3339),
	}
	return nil
}

// HasChanged reports whether the file's current content differs from its
// recorded checksum. Files absent from the history count as changed. It is
// a pure read: no state is mutated.
func (s *State) HasChanged(repoRoot, absPath string) (bool, error) {
	sum, err := checksum.File(absPath)
	if err != nil {
		return false, err
	}
	key, err := fileKey(repoRoot, absPath)
	if err != nil {
		return false, err
	}
	rec, ok := s.ReviewedFiles[key]
	if !ok {
		return true, nil
	}
	return rec.Checksum != sum, nil
}

// fileKey normalizes absPath to a repo-relative slash path so the state file
// is portable across checkouts and platforms.
func fileKey(repoRoot, absPath string) (string, error) {
	rel, err := filepath.Rel(repoRoot, absPath)
	if err != nil {
		return "", fmt.Errorf("relativizing %s: %w", absPath, err)
	}
	return filepath.ToSlash(rel), nil
}
