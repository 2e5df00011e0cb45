// Package redact detects secrets in file content before it is sent to any
// LLM provider.
//
// A rewriter cannot scrub content it writes back verbatim, so instead of
// masking, detection gates submission: a file that matches any secret
// pattern is skipped for the run and reported, unless the operator
// explicitly allows it.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private keys, AWS access key IDs and secret access keys, bearer
// tokens, and provider-specific tokens (Anthropic, OpenAI, GitHub, Slack).
package redact
