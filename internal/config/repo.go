package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RepoFileName is the per-repository override file, committed alongside the
// sources it governs.
const RepoFileName = ".groom.yaml"

// RepoConfig holds the subset of settings a repository may override.
type RepoConfig struct {
	SourceDir   string   `yaml:"sourceDir"`
	Targets     []string `yaml:"targets"`
	SkipSecrets *bool    `yaml:"skipSecrets"`
}

// LoadRepo applies repoRoot's .groom.yaml overrides to cfg. A missing file
// leaves cfg untouched; a malformed one is an error.
func LoadRepo(repoRoot string, cfg *Config) error {
	path := filepath.Join(repoRoot, RepoFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var rc RepoConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if rc.SourceDir != "" {
		cfg.SourceDir = rc.SourceDir
	}
	if len(rc.Targets) > 0 {
		cfg.Targets = rc.Targets
	}
	if rc.SkipSecrets != nil {
		cfg.SkipSecrets = *rc.SkipSecrets
	}
	return nil
}
