package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestIsAuthError_Wrapped(t *testing.T) {
	base := NewAuthError("TEST_API_KEY is not set")
	if !IsAuthError(base) {
		t.Error("bare auth error not recognized")
	}
	if !IsAuthError(fmt.Errorf("starting run: %w", base)) {
		t.Error("wrapped auth error not recognized")
	}
	if IsAuthError(fmt.Errorf("starting run: %v", base)) {
		t.Error("non-wrapping format should not match")
	}
	if IsAuthError(fmt.Errorf("network down")) {
		t.Error("unrelated error should not match")
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New("unknown", Options{Model: "model", APIKey: "key"})
	if err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestNew_GoogleAlias(t *testing.T) {
	p, err := New("google", Options{Model: "gemini-2.5-flash", APIKey: "key"})
	if err != nil {
		t.Fatalf("'google' should be a valid provider alias for gemini: %v", err)
	}
	if p.Name() != "gemini" {
		t.Errorf("Name() = %q, want %q", p.Name(), "gemini")
	}
}

func TestNew_MissingCredential(t *testing.T) {
	for _, provider := range []string{"anthropic", "openai", "gemini"} {
		_, err := New(provider, Options{Model: "m"})
		if err == nil {
			t.Errorf("%s without a credential should fail", provider)
			continue
		}
		if !IsAuthError(err) {
			t.Errorf("%s missing-credential error should be an auth error, got: %v", provider, err)
		}
		if !strings.Contains(err.Error(), CredentialEnv(provider)) {
			t.Errorf("%s error should name the credential variable: %v", provider, err)
		}
	}
}

func TestNew_OllamaWithoutCredential(t *testing.T) {
	p, err := New("ollama", Options{Model: "qwen2.5-coder"})
	if err != nil {
		t.Fatalf("ollama should not require a credential: %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("Name() = %q, want %q", p.Name(), "ollama")
	}
}

func TestCredentialEnv(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{"anthropic", "ANTHROPIC_API_KEY"},
		{"openai", "OPENAI_API_KEY"},
		{"gemini", "GEMINI_API_KEY"},
		{"google", "GEMINI_API_KEY"},
		{"ollama", ""},
		{"unknown", ""},
	}
	for _, tt := range tests {
		if got := CredentialEnv(tt.provider); got != tt.want {
			t.Errorf("CredentialEnv(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}

func TestOpenAI_Rewrite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer token", auth)
		}
		json.NewEncoder(w).Encode(openaiResponse{
			Choices: []openaiChoice{
				{Message: openaiMessage{Role: "assistant", Content: "rewritten"}},
			},
			Usage: openaiUsage{TotalTokens: 42},
		})
	}))
	defer server.Close()

	o, err := NewOpenAI(Options{Model: "gpt-4.1-mini", APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := o.Rewrite(context.Background(), RewriteRequest{
		SystemPrompt: "sys",
		UserPrompt:   "user",
	})
	if err != nil {
		t.Fatalf("Rewrite error: %v", err)
	}
	if resp.Content != "rewritten" {
		t.Errorf("Content = %q, want %q", resp.Content, "rewritten")
	}
	if resp.TokensUsed != 42 {
		t.Errorf("TokensUsed = %d, want 42", resp.TokensUsed)
	}
}

func TestOpenAI_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(openaiResponse{})
	}))
	defer server.Close()

	o, err := NewOpenAI(Options{Model: "gpt-4.1-mini", APIKey: "k", BaseURL: server.URL})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := o.Rewrite(context.Background(), RewriteRequest{UserPrompt: "x"}); err == nil {
		t.Error("Expected error for response with no choices")
	}
}

func TestOllama_URLNormalization(t *testing.T) {
	tests := []struct {
		baseURL string
		want    string
	}{
		{"", defaultOllamaURL + "/v1/chat/completions"},
		{"http://gpu-box:11434", "http://gpu-box:11434/v1/chat/completions"},
		{"http://gpu-box:11434/", "http://gpu-box:11434/v1/chat/completions"},
		{"http://gpu-box:11434/v1", "http://gpu-box:11434/v1/chat/completions"},
		{"http://gpu-box:11434/v1/chat/completions", "http://gpu-box:11434/v1/chat/completions"},
	}
	for _, tt := range tests {
		o, err := NewOllama(Options{Model: "llama3.3", BaseURL: tt.baseURL})
		if err != nil {
			t.Fatal(err)
		}
		if o.baseURL != tt.want {
			t.Errorf("baseURL(%q) = %q, want %q", tt.baseURL, o.baseURL, tt.want)
		}
	}
}

func TestGemini_Rewrite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.RawQuery, "key=test-key") {
			t.Error("request should carry the API key as query parameter")
		}
		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{
				{Content: geminiContent{Parts: []geminiPart{{Text: "part one "}, {Text: "part two"}}}},
			},
			UsageMetadata: geminiUsage{TotalTokenCount: 7},
		})
	}))
	defer server.Close()

	g, err := NewGemini(Options{Model: "gemini-2.5-flash", APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := g.Rewrite(context.Background(), RewriteRequest{UserPrompt: "x"})
	if err != nil {
		t.Fatalf("Rewrite error: %v", err)
	}
	if resp.Content != "part one part two" {
		t.Errorf("Content = %q, want concatenated parts", resp.Content)
	}
}

func TestTimeout_DefaultsApplied(t *testing.T) {
	a, err := NewAnthropic(Options{Model: "m", APIKey: "k"})
	if err != nil {
		t.Fatal(err)
	}
	if a.client.Timeout != defaultTimeout {
		t.Errorf("anthropic timeout = %v, want %v", a.client.Timeout, defaultTimeout)
	}

	o, err := NewOllama(Options{Model: "m"})
	if err != nil {
		t.Fatal(err)
	}
	if o.client.Timeout != 300*time.Second {
		t.Errorf("ollama timeout = %v, want 300s", o.client.Timeout)
	}

	g, err := NewGemini(Options{Model: "m", APIKey: "k", Timeout: 5 * time.Second})
	if err != nil {
		t.Fatal(err)
	}
	if g.client.Timeout != 5*time.Second {
		t.Errorf("explicit timeout not honored: %v", g.client.Timeout)
	}
}
