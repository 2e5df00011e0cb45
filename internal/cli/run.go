package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/groom/internal/cache"
	"github.com/dshills/groom/internal/config"
	"github.com/dshills/groom/internal/gitrev"
	"github.com/dshills/groom/internal/logging"
	"github.com/dshills/groom/internal/output"
	"github.com/dshills/groom/internal/providers"
	"github.com/dshills/groom/internal/review"
)

// Shared run flags
var (
	flagDryRun        bool
	flagProvider      string
	flagModel         string
	flagTimeout       int
	flagMaxTokens     int
	flagFormat        string
	flagOut           string
	flagNoCache       bool
	flagAllowSecrets  bool
	flagLogLevel      string
	flagFailOnPending bool
)

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "List files that would be rewritten without calling the provider")
	cmd.Flags().StringVar(&flagProvider, "provider", "", "LLM provider (anthropic, openai, gemini, ollama)")
	cmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	cmd.Flags().IntVar(&flagTimeout, "timeout", 0, "Per-request timeout in seconds")
	cmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "Maximum completion tokens per file")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format (text, json)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Report file path (default: stdout)")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the rewrite-response cache")
	cmd.Flags().BoolVar(&flagAllowSecrets, "allow-secrets", false, "Submit files even if they look like they contain secrets")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&flagFailOnPending, "fail-on-pending", false, "With --dry-run, exit 1 if any file would be rewritten")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagTimeout > 0 {
		m["timeoutSeconds"] = fmt.Sprintf("%d", flagTimeout)
	}
	if flagMaxTokens > 0 {
		m["maxTokens"] = fmt.Sprintf("%d", flagMaxTokens)
	}
	if flagLogLevel != "" {
		m["logLevel"] = flagLogLevel
	}
	return m
}

// resolveCredential reads the provider's API key from its environment
// variable. Keys are injected this way only; they never appear in config
// files or flags.
func resolveCredential(provider string) string {
	env := providers.CredentialEnv(provider)
	if env == "" {
		// Local providers need no key, but some proxies want one anyway.
		return os.Getenv("GROOM_OLLAMA_API_KEY")
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	if provider == "gemini" || provider == "google" {
		return os.Getenv("GOOGLE_API_KEY")
	}
	return ""
}

var fullCmd = &cobra.Command{
	Use:   "full <repo-path> <guideline-file>",
	Short: "Rewrite every target file against the guidelines",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		runRewrite(review.ModeFull, args[0], args[1], "")
		return nil
	},
}

var incrementalCmd = &cobra.Command{
	Use:   "incremental <repo-path> <guideline-file> [commit-id]",
	Short: "Rewrite only files changed since their last recorded review",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		commitID := ""
		if len(args) == 3 {
			commitID = args[2]
		}
		runRewrite(review.ModeIncremental, args[0], args[1], commitID)
		return nil
	},
}

func runRewrite(mode review.Mode, repoArg, guidelineArg, commitID string) {
	repoRoot, err := filepath.Abs(repoArg)
	if err != nil {
		usageError("invalid repository path %s: %v", repoArg, err)
		return
	}
	info, err := os.Stat(repoRoot)
	if err != nil || !info.IsDir() {
		usageError("repository path %s is not a directory", repoArg)
		return
	}
	guidelinePath, err := filepath.Abs(guidelineArg)
	if err != nil {
		usageError("invalid guideline path %s: %v", guidelineArg, err)
		return
	}
	if _, err := os.Stat(guidelinePath); err != nil {
		usageError("guideline file %s does not exist", guidelineArg)
		return
	}
	// Catch a bad --format before any rewrites run, not after.
	if _, err := output.GetWriter(flagFormat); err != nil {
		usageError("%v", err)
		return
	}

	cfg, err := config.Load(buildOverrides())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	if err := config.LoadRepo(repoRoot, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		usageError("invalid log level %s", cfg.LogLevel)
		return
	}
	defer func() { _ = log.Sync() }()

	// Incremental runs record the commit they reviewed at. Fall back to
	// the repo's HEAD when the caller did not pass one.
	if mode == review.ModeIncremental && commitID == "" {
		head, headErr := gitrev.Head(repoRoot)
		if headErr != nil {
			usageError("no commit-id given and %s has no git HEAD to fall back to", repoArg)
			return
		}
		commitID = head
	}

	rw, err := providers.New(cfg.Provider, providers.Options{
		Model:   cfg.Model,
		APIKey:  resolveCredential(cfg.Provider),
		BaseURL: cfg.BaseURL,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if providers.IsAuthError(err) {
			exitCode = ExitAuthError
		} else {
			exitCode = ExitUsageError
		}
		return
	}

	cacheEnabled := cfg.Cache.Enabled && !flagNoCache
	store, err := cache.New(cacheEnabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	skipSecrets := cfg.SkipSecrets && !flagAllowSecrets
	if !skipSecrets && flagAllowSecrets {
		fmt.Fprintln(os.Stderr, "WARNING: secret detection is disabled, all files will be submitted")
	}

	engine := review.NewEngine(rw, cfg.Model, store, log)
	if flagFormat == "text" && !flagDryRun {
		engine.SetProgress(output.Progress(os.Stderr))
	}

	report, err := engine.Run(context.Background(), review.Options{
		RepoRoot:      repoRoot,
		GuidelinePath: guidelinePath,
		Mode:          mode,
		CommitID:      commitID,
		DryRun:        flagDryRun,
		SourceDir:     cfg.SourceDir,
		Targets:       cfg.Targets,
		SkipSecrets:   skipSecrets,
		MaxTokens:     cfg.MaxTokens,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if providers.IsAuthError(err) {
			exitCode = ExitAuthError
		} else {
			exitCode = ExitRuntimeError
		}
		if report == nil {
			return
		}
		// Fall through and still print the partial report.
	}

	report.Tool = "groom"
	report.Version = version

	if wErr := output.WriteReport(report, flagFormat, flagOut); wErr != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", wErr)
		exitCode = ExitRuntimeError
		return
	}

	if err != nil {
		return
	}

	if flagDryRun && flagFailOnPending && report.Pending() > 0 {
		exitCode = ExitPending
	}
}

func usageError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	exitCode = ExitUsageError
}

func init() {
	addRunFlags(fullCmd)
	addRunFlags(incrementalCmd)
}
