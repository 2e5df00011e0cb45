// Package cache provides a file-based cache for LLM rewrite responses.
//
// Cache entries are keyed by a SHA-256 hash of the provider name, model,
// guideline fingerprint, and file content. Each entry stores the cleaned
// rewritten file text along with a creation timestamp and a TTL (in
// seconds). Expired entries are skipped on read and removed during
// cache-clear operations.
//
// The cache makes repeat runs cheap: a file whose content and guidelines
// have not changed since a previous run resolves locally instead of paying
// for another completion round trip. The default cache directory is
// $XDG_CACHE_HOME/groom (or the OS-appropriate equivalent).
package cache
