// Package cli wires together the Cobra command tree for the groom binary.
//
// It defines the root command and all subcommands (full, incremental, state,
// config, models, cache, hook, version), binds flags, reads configuration,
// invokes the rewrite engine, and returns deterministic exit codes for CI
// gating.
package cli
