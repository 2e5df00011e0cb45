// Groom is a CLI that keeps Ballerina connector sources aligned with a
// review guideline document by rewriting them with LLM providers.
//
// It walks a repository's ballerina/ directory for the fixed target files,
// sends each one to a provider together with the guidelines, and overwrites
// the file with the conforming rewrite. A per-repository state file records
// content fingerprints so incremental runs only resubmit what changed.
//
// Usage:
//
//	groom full <repo> <guidelines.md>               # rewrite every target file
//	groom incremental <repo> <guidelines.md>        # rewrite changed files only
//	groom incremental <repo> <guidelines.md> <sha>  # record an explicit commit id
//	groom state show <repo>                         # inspect recorded state
//	groom state clear <repo>                        # forget all reviews
//	groom hook install                              # block commits on drifted files
//
// See https://github.com/dshills/groom for full documentation.
package main
