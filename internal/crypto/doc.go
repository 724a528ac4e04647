// Package crypto exposes the hashing used to fingerprint pipeline results.
//
// Fingerprint truncates a BLAKE2b-256 digest to a short hex string suitable
// for comparing outputs across runs without diffing files.
package crypto
