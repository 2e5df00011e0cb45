package providers

import (
	"context"
	"fmt"
	"time"
)

// RewriteRequest contains the data sent to an LLM for one file rewrite.
type RewriteRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// RewriteResponse contains the raw response from an LLM.
type RewriteResponse struct {
	Content    string
	TokensUsed int
}

// Rewriter is the provider abstraction interface.
type Rewriter interface {
	Rewrite(ctx context.Context, req RewriteRequest) (RewriteResponse, error)
	Name() string
}

// Options carries injected provider configuration. The API credential is
// resolved by the caller (see CredentialEnv) and passed in; providers never
// read the environment themselves.
type Options struct {
	Model   string
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

const defaultTimeout = 120 * time.Second

// New creates a provider by name.
func New(provider string, opts Options) (Rewriter, error) {
	switch provider {
	case "anthropic":
		return NewAnthropic(opts)
	case "openai":
		return NewOpenAI(opts)
	case "gemini", "google":
		return NewGemini(opts)
	case "ollama", "lmstudio":
		return NewOllama(opts)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}

// CredentialEnv returns the fixed environment variable that holds the API
// credential for a provider. Providers that can run without a credential
// (local ollama servers) return an empty string.
func CredentialEnv(provider string) string {
	switch provider {
	case "anthropic":
		return "ANTHROPIC_API_KEY"
	case "openai":
		return "OPENAI_API_KEY"
	case "gemini", "google":
		return "GEMINI_API_KEY"
	default:
		return ""
	}
}
