package review

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/groom/internal/cache"
	"github.com/dshills/groom/internal/locate"
	"github.com/dshills/groom/internal/providers"
	"github.com/dshills/groom/internal/redact"
	"github.com/dshills/groom/internal/state"
)

// ProgressFunc is invoked once per file as its result is finalized.
type ProgressFunc func(result FileResult)

// Options configures a single engine run.
type Options struct {
	RepoRoot      string
	GuidelinePath string
	Mode          Mode
	CommitID      string
	DryRun        bool
	SourceDir     string
	Targets       []string
	SkipSecrets   bool
	MaxTokens     int
}

// Engine drives guideline rewrites against one provider.
type Engine struct {
	rewriter providers.Rewriter
	model    string
	cache    *cache.Cache
	log      *zap.Logger
	progress ProgressFunc
}

// NewEngine builds an engine. The model name is only used to key the
// response cache; the rewriter is already bound to it.
func NewEngine(rw providers.Rewriter, model string, c *cache.Cache, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{rewriter: rw, model: model, cache: c, log: log}
}

// SetProgress installs a per-file progress callback.
func (e *Engine) SetProgress(fn ProgressFunc) {
	e.progress = fn
}

// Run executes one full or incremental pass over the repository. Per-file
// failures are recorded in the report and do not stop the run; provider
// authentication failures do, since every remaining call would fail the
// same way.
func (e *Engine) Run(ctx context.Context, opts Options) (*Report, error) {
	start := time.Now()

	guideline, err := LoadGuideline(opts.GuidelinePath)
	if err != nil {
		return nil, err
	}

	var st *state.State
	if opts.Mode == ModeIncremental {
		st, err = state.Load(opts.RepoRoot)
		if err != nil {
			return nil, err
		}
	}

	sourceDir := opts.SourceDir
	if sourceDir == "" {
		sourceDir = locate.DefaultSourceDir
	}
	targets := opts.Targets
	if len(targets) == 0 {
		targets = locate.DefaultTargets
	}

	discoverStart := time.Now()
	paths, err := locate.Targets(opts.RepoRoot, sourceDir, targets)
	if err != nil {
		return nil, err
	}
	discoveryMs := time.Since(discoverStart).Milliseconds()

	report := &Report{
		Mode:       opts.Mode,
		RepoRoot:   opts.RepoRoot,
		Guideline:  opts.GuidelinePath,
		CommitID:   opts.CommitID,
		DryRun:     opts.DryRun,
		Discovered: len(paths),
	}

	var llmMs int64
	for _, path := range paths {
		rel, relErr := filepath.Rel(opts.RepoRoot, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if opts.Mode == ModeIncremental {
			changed, chErr := st.HasChanged(opts.RepoRoot, path)
			if chErr != nil {
				e.record(report, FileResult{Path: rel, Status: StatusFailed, Error: chErr.Error()})
				continue
			}
			if !changed {
				e.record(report, FileResult{Path: rel, Status: StatusUnchanged})
				continue
			}
		}
		report.Eligible++

		if opts.DryRun {
			e.record(report, FileResult{Path: rel, Status: StatusWouldRewrite})
			continue
		}

		res, llm, abort := e.rewriteFile(ctx, opts, guideline, path, rel)
		llmMs += llm
		e.record(report, res)
		if abort != nil {
			report.Timing = Timing{DiscoveryMs: discoveryMs, LLMMs: llmMs, TotalMs: time.Since(start).Milliseconds()}
			return report, abort
		}

		if opts.Mode == ModeIncremental && (res.Status == StatusModified || res.Status == StatusClean) {
			if mrErr := st.MarkReviewed(opts.RepoRoot, path); mrErr != nil {
				e.log.Warn("recording review state", zap.String("file", rel), zap.Error(mrErr))
			}
		}
	}

	if opts.Mode == ModeIncremental && !opts.DryRun && report.Modified+report.Clean > 0 {
		st.LastReviewedCommit = opts.CommitID
		st.LastReviewTimestamp = time.Now().UTC().Format(time.RFC3339)
		if err := state.Save(opts.RepoRoot, st); err != nil {
			return report, fmt.Errorf("saving review state: %w", err)
		}
	}

	report.Timing = Timing{DiscoveryMs: discoveryMs, LLMMs: llmMs, TotalMs: time.Since(start).Milliseconds()}
	return report, nil
}

// rewriteFile submits one file and writes the result back. It returns the
// file outcome, the LLM wall time in milliseconds, and a non-nil error only
// when the whole run should stop (provider authentication failure).
func (e *Engine) rewriteFile(ctx context.Context, opts Options, g Guideline, path, rel string) (FileResult, int64, error) {
	fileStart := time.Now()
	res := FileResult{Path: rel}

	info, err := os.Stat(path)
	if err != nil {
		return e.fail(res, fileStart, err), 0, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return e.fail(res, fileStart, err), 0, nil
	}
	content := string(data)

	if opts.SkipSecrets && redact.ContainsSecret(content) {
		e.log.Warn("skipping file with potential secret", zap.String("file", rel))
		res.Status = StatusSkippedSecret
		res.DurationMs = time.Since(fileStart).Milliseconds()
		return res, 0, nil
	}

	key := cache.BuildKey(e.rewriter.Name(), e.model, g.Checksum, content)
	rewritten, hit := "", false
	var llmMs int64
	if e.cache != nil {
		rewritten, hit = e.cache.Get(key)
	}
	if hit {
		res.CacheHit = true
		e.log.Debug("cache hit", zap.String("file", rel))
	} else {
		req := providers.RewriteRequest{
			SystemPrompt: SystemPrompt(),
			UserPrompt:   BuildUserPrompt(g.Text, rel, content),
			MaxTokens:    opts.MaxTokens,
		}
		llmStart := time.Now()
		resp, err := e.rewriter.Rewrite(ctx, req)
		llmMs = time.Since(llmStart).Milliseconds()
		if err != nil {
			if providers.IsAuthError(err) {
				return e.fail(res, fileStart, err), llmMs, err
			}
			return e.fail(res, fileStart, err), llmMs, nil
		}
		res.TokensUsed = resp.TokensUsed

		rewritten, err = CleanResponse(resp.Content)
		if err != nil {
			return e.fail(res, fileStart, err), llmMs, nil
		}
		if e.cache != nil {
			if cErr := e.cache.Put(key, rewritten); cErr != nil {
				e.log.Debug("cache write failed", zap.Error(cErr))
			}
		}
	}

	// CleanResponse guarantees a trailing newline; a file that only lacks
	// one is still clean, not modified.
	if rewritten == content || rewritten == content+"\n" {
		res.Status = StatusClean
		res.DurationMs = time.Since(fileStart).Milliseconds()
		return res, llmMs, nil
	}

	if err := os.WriteFile(path, []byte(rewritten), info.Mode().Perm()); err != nil {
		return e.fail(res, fileStart, err), llmMs, nil
	}
	res.Status = StatusModified
	res.DurationMs = time.Since(fileStart).Milliseconds()
	return res, llmMs, nil
}

func (e *Engine) fail(res FileResult, start time.Time, err error) FileResult {
	e.log.Warn("file rewrite failed", zap.String("file", res.Path), zap.Error(err))
	res.Status = StatusFailed
	res.Error = err.Error()
	res.DurationMs = time.Since(start).Milliseconds()
	return res
}

func (e *Engine) record(r *Report, res FileResult) {
	switch res.Status {
	case StatusModified:
		r.Modified++
	case StatusClean:
		r.Clean++
	case StatusUnchanged, StatusWouldRewrite, StatusSkippedSecret:
		r.Skipped++
	case StatusFailed:
		r.Failed++
	}
	r.Files = append(r.Files, res)
	if e.progress != nil {
		e.progress(res)
	}
}
