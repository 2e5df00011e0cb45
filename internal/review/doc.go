// Package review contains the core types and engine for LLM-based guideline
// rewrites.
//
// The engine drives one run end-to-end: it loads the guideline document,
// discovers target files, filters them against recorded state in incremental
// mode, submits each file to a provider, cleans the returned text, writes it
// back over the original, and records the new fingerprint. Files are
// processed strictly one at a time in discovery order.
//
// A failed rewrite (provider error, timeout, unwritable file) is isolated
// to its file: it is logged and counted, and the run continues. Since the
// file's on-disk content, and therefore its fingerprint, is unchanged, the
// next incremental run selects it again.
package review
