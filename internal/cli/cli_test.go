package cli

import (
	"os"
	"path/filepath"
	"testing"
)

// resetFlags resets all package-level flag variables to their zero values.
func resetFlags() {
	flagDryRun = false
	flagProvider = ""
	flagModel = ""
	flagTimeout = 0
	flagMaxTokens = 0
	flagFormat = "text"
	flagOut = ""
	flagNoCache = false
	flagAllowSecrets = false
	flagLogLevel = ""
	flagFailOnPending = false
	hookGuideline = "guidelines.md"
}

// --- buildOverrides tests ---

func TestBuildOverrides_NoFlags(t *testing.T) {
	resetFlags()
	m := buildOverrides()
	if len(m) != 0 {
		t.Errorf("buildOverrides() with no flags = %v, want empty map", m)
	}
}

func TestBuildOverrides_AllFlags(t *testing.T) {
	resetFlags()
	flagProvider = "openai"
	flagModel = "gpt-5.2"
	flagTimeout = 60
	flagMaxTokens = 4096
	flagLogLevel = "debug"

	m := buildOverrides()

	expected := map[string]string{
		"provider":       "openai",
		"model":          "gpt-5.2",
		"timeoutSeconds": "60",
		"maxTokens":      "4096",
		"logLevel":       "debug",
	}

	if len(m) != len(expected) {
		t.Fatalf("buildOverrides() returned %d entries, want %d", len(m), len(expected))
	}
	for k, v := range expected {
		if m[k] != v {
			t.Errorf("buildOverrides()[%q] = %q, want %q", k, m[k], v)
		}
	}
}

func TestBuildOverrides_PartialFlags(t *testing.T) {
	resetFlags()
	flagModel = "claude-haiku-4-5"

	m := buildOverrides()
	if len(m) != 1 {
		t.Fatalf("buildOverrides() = %v, want single entry", m)
	}
	if m["model"] != "claude-haiku-4-5" {
		t.Errorf("model override = %q", m["model"])
	}
}

// --- resolveCredential tests ---

func TestResolveCredential_Anthropic(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test-123")
	if got := resolveCredential("anthropic"); got != "sk-test-123" {
		t.Errorf("resolveCredential(anthropic) = %q", got)
	}
}

func TestResolveCredential_Missing(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if got := resolveCredential("openai"); got != "" {
		t.Errorf("resolveCredential(openai) = %q, want empty", got)
	}
}

func TestResolveCredential_GeminiFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "g-key")
	if got := resolveCredential("gemini"); got != "g-key" {
		t.Errorf("resolveCredential(gemini) = %q, want GOOGLE_API_KEY fallback", got)
	}
}

func TestResolveCredential_Ollama(t *testing.T) {
	t.Setenv("GROOM_OLLAMA_API_KEY", "")
	if got := resolveCredential("ollama"); got != "" {
		t.Errorf("resolveCredential(ollama) = %q, want empty", got)
	}
	t.Setenv("GROOM_OLLAMA_API_KEY", "proxy-key")
	if got := resolveCredential("ollama"); got != "proxy-key" {
		t.Errorf("resolveCredential(ollama) = %q, want proxy key", got)
	}
}

// --- argument validation ---

func TestRunRewrite_MissingRepo(t *testing.T) {
	resetFlags()
	exitCode = ExitSuccess
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	runRewrite("full", filepath.Join(t.TempDir(), "nope"), "guidelines.md", "")

	if exitCode != ExitUsageError {
		t.Errorf("exitCode = %d, want %d", exitCode, ExitUsageError)
	}
	exitCode = ExitSuccess
}

func TestRunRewrite_MissingGuideline(t *testing.T) {
	resetFlags()
	exitCode = ExitSuccess
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	repo := t.TempDir()
	runRewrite("full", repo, filepath.Join(repo, "nope.md"), "")

	if exitCode != ExitUsageError {
		t.Errorf("exitCode = %d, want %d", exitCode, ExitUsageError)
	}
	exitCode = ExitSuccess
}

func TestRunRewrite_InvalidFormat(t *testing.T) {
	resetFlags()
	exitCode = ExitSuccess
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	flagFormat = "yaml"

	repo := t.TempDir()
	guideline := filepath.Join(repo, "guidelines.md")
	if err := os.WriteFile(guideline, []byte("rules\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	runRewrite("full", repo, guideline, "")

	if exitCode != ExitUsageError {
		t.Errorf("exitCode = %d, want %d", exitCode, ExitUsageError)
	}
	exitCode = ExitSuccess
}

func TestRunRewrite_FailOnPendingDryRun(t *testing.T) {
	resetFlags()
	exitCode = ExitSuccess
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	flagDryRun = true
	flagFailOnPending = true
	flagOut = filepath.Join(t.TempDir(), "report.txt")

	repo := t.TempDir()
	guideline := filepath.Join(repo, "guidelines.md")
	if err := os.WriteFile(guideline, []byte("rules\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	balDir := filepath.Join(repo, "ballerina")
	if err := os.MkdirAll(balDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(balDir, "client.bal"), []byte("client\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// One eligible file: the dry run must exit 1.
	runRewrite("full", repo, guideline, "")
	if exitCode != ExitPending {
		t.Errorf("exitCode = %d, want %d", exitCode, ExitPending)
	}

	// No eligible files: plain success.
	exitCode = ExitSuccess
	if err := os.Remove(filepath.Join(balDir, "client.bal")); err != nil {
		t.Fatal(err)
	}
	runRewrite("full", repo, guideline, "")
	if exitCode != ExitSuccess {
		t.Errorf("exitCode with nothing pending = %d, want %d", exitCode, ExitSuccess)
	}
	exitCode = ExitSuccess
}

func TestRunRewrite_MissingCredential(t *testing.T) {
	resetFlags()
	exitCode = ExitSuccess
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GROOM_PROVIDER", "")

	repo := t.TempDir()
	guideline := filepath.Join(repo, "guidelines.md")
	if err := os.WriteFile(guideline, []byte("rules\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	runRewrite("full", repo, guideline, "")

	if exitCode != ExitAuthError {
		t.Errorf("exitCode = %d, want %d", exitCode, ExitAuthError)
	}
	exitCode = ExitSuccess
}
