// Package keccak wraps the legacy (pre-NIST) Keccak-256 permutation used to
// derive function selectors and event topics from canonical signatures.
package keccak

import "golang.org/x/crypto/sha3"

// Sum256 returns the Keccak-256 digest of data.
func Sum256(data []byte) [32]byte {
	var out [32]byte
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	copy(out[:], h.Sum(nil))
	return out
}

// Sum256Multi hashes the concatenation of the given chunks without joining
// them first.
func Sum256Multi(chunks ...[]byte) [32]byte {
	var out [32]byte
	h := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		h.Write(c)
	}
	copy(out[:], h.Sum(nil))
	return out
}
