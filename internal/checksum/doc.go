// Package checksum computes SHA-256 content fingerprints for change
// detection.
//
// Fingerprints are lowercase hex strings. Two byte-identical inputs always
// produce the same fingerprint; any differing inputs produce distinct
// fingerprints with overwhelming probability. The digest is used only to
// detect content drift between review runs, not as a security control.
package checksum
