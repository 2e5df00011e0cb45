// Package providers implements the remote rewrite collaborator behind the
// [Rewriter] interface.
//
// Each provider is a thin HTTP client for one LLM completion API (Anthropic,
// OpenAI, Gemini, or an OpenAI-compatible local server such as Ollama). A
// rewrite is a single blocking round trip with a generous fixed timeout;
// there is no retry loop — a failed or timed-out call is reported to the
// orchestrator, which skips the file and picks it up again on the next run.
//
// Credentials are injected through [Options] rather than read from the
// environment here; [CredentialEnv] names the fixed variable the CLI layer
// resolves for each provider.
package providers
