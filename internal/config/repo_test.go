package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRepo_Missing(t *testing.T) {
	cfg := Default()
	if err := LoadRepo(t.TempDir(), &cfg); err != nil {
		t.Fatalf("missing repo file should not error: %v", err)
	}
	if cfg.SourceDir != Default().SourceDir {
		t.Error("config should be untouched without a repo file")
	}
}

func TestLoadRepo_Overrides(t *testing.T) {
	dir := t.TempDir()
	content := `sourceDir: modules
targets:
  - client.bal
  - endpoint.bal
skipSecrets: false
`
	if err := os.WriteFile(filepath.Join(dir, RepoFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := LoadRepo(dir, &cfg); err != nil {
		t.Fatalf("LoadRepo error: %v", err)
	}
	if cfg.SourceDir != "modules" {
		t.Errorf("SourceDir = %q, want modules", cfg.SourceDir)
	}
	if len(cfg.Targets) != 2 || cfg.Targets[1] != "endpoint.bal" {
		t.Errorf("Targets = %v, want [client.bal endpoint.bal]", cfg.Targets)
	}
	if cfg.SkipSecrets {
		t.Error("SkipSecrets = true, want false (explicit repo override)")
	}
}

func TestLoadRepo_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, RepoFileName), []byte("sourceDir: bal\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := LoadRepo(dir, &cfg); err != nil {
		t.Fatalf("LoadRepo error: %v", err)
	}
	if cfg.SourceDir != "bal" {
		t.Errorf("SourceDir = %q, want bal", cfg.SourceDir)
	}
	// Unset keys keep their prior values.
	if len(cfg.Targets) != len(Default().Targets) {
		t.Errorf("Targets = %v, want defaults", cfg.Targets)
	}
	if !cfg.SkipSecrets {
		t.Error("absent skipSecrets should keep prior value")
	}
}

func TestLoadRepo_Malformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, RepoFileName), []byte("targets: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := LoadRepo(dir, &cfg); err == nil {
		t.Error("malformed repo file should fail")
	}
}
