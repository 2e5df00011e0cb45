package review

// Mode selects how candidate files are chosen for a run.
type Mode string

const (
	// ModeFull submits every discovered target file unconditionally. No
	// state is read or written.
	ModeFull Mode = "full"
	// ModeIncremental submits only files whose content fingerprint differs
	// from the recorded review state.
	ModeIncremental Mode = "incremental"
)

// Status classifies the outcome for one candidate file.
type Status string

const (
	// StatusModified means the file was rewritten and overwritten on disk.
	StatusModified Status = "modified"
	// StatusClean means the provider returned the file unchanged; nothing
	// was written, but the review is recorded.
	StatusClean Status = "clean"
	// StatusUnchanged means incremental filtering skipped the file because
	// its fingerprint matches the recorded state.
	StatusUnchanged Status = "unchanged"
	// StatusWouldRewrite marks a file a dry run would have submitted.
	StatusWouldRewrite Status = "would-rewrite"
	// StatusSkippedSecret means the file matched a secret heuristic and was
	// not sent to the provider.
	StatusSkippedSecret Status = "skipped-secret"
	// StatusFailed means the rewrite or the write-back failed; the file is
	// untouched and will be selected again next run.
	StatusFailed Status = "failed"
)

// FileResult records the outcome for one candidate file.
type FileResult struct {
	Path       string `json:"path"`
	Status     Status `json:"status"`
	Error      string `json:"error,omitempty"`
	CacheHit   bool   `json:"cacheHit,omitempty"`
	TokensUsed int    `json:"tokensUsed,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
}

// Report summarizes one review run.
type Report struct {
	Tool       string       `json:"tool"`
	Version    string       `json:"version"`
	Mode       Mode         `json:"mode"`
	RepoRoot   string       `json:"repoRoot"`
	Guideline  string       `json:"guideline"`
	CommitID   string       `json:"commitId,omitempty"`
	DryRun     bool         `json:"dryRun"`
	Discovered int          `json:"discovered"`
	Eligible   int          `json:"eligible"`
	Modified   int          `json:"modified"`
	Clean      int          `json:"clean"`
	Skipped    int          `json:"skipped"`
	Failed     int          `json:"failed"`
	Files      []FileResult `json:"files"`
	Timing     Timing       `json:"timing"`
}

// Timing breaks down where a run spent its time.
type Timing struct {
	DiscoveryMs int64 `json:"discoveryMs"`
	LLMMs       int64 `json:"llmMs"`
	TotalMs     int64 `json:"totalMs"`
}

// Pending reports how many files a dry run would submit.
func (r *Report) Pending() int {
	if !r.DryRun {
		return 0
	}
	n := 0
	for _, f := range r.Files {
		if f.Status == StatusWouldRewrite {
			n++
		}
	}
	return n
}
