// Package checksum computes a non-cryptographic integrity digest over a
// persisted tile arena.
//
// This is an integrity check, not a cryptographic signature: it catches
// accidental corruption (truncated writes, bit flips from storage media)
// but makes no tamper-resistance claim. xxHash64 is fast enough to run on
// every arena save/load without becoming the bottleneck.
package checksum

import "github.com/cespare/xxhash/v2"

// Of returns the xxHash64 digest of data.
func Of(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Verify reports whether data's digest matches want.
func Verify(data []byte, want uint64) bool {
	return Of(data) == want
}
