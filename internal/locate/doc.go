// Package locate discovers review-candidate files in a connector repository.
//
// Candidates live under a fixed source subdirectory (by convention
// "ballerina") and are matched by exact base name against a fixed, ordered
// set of target names. The walk is an explicit worklist depth-first
// traversal in lexical directory-entry order, so a dry run always previews
// files in the same order. Any directory read error fails the whole
// discovery call; a partial listing would silently under-review the
// repository.
package locate
