// Package config loads and merges groom configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (GROOM_PROVIDER, GROOM_MODEL, etc.)
//  3. Repository overrides (.groom.yaml at the repo root)
//  4. Config file ($XDG_CONFIG_HOME/groom/config.json)
//  5. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [LoadRepo] to apply a repository's
// local overrides, and [SetField] to update a single key in the config file.
package config
