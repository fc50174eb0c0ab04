package abi

import (
	"strings"

	"github.com/kairoschain/kairos-go/internal/keccak"
)

// Signature renders the canonical signature string for a function or event:
// the name followed by the parenthesized, comma-joined canonical types.
func Signature(name string, params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Type.Canonical()
	}
	return name + "(" + strings.Join(parts, ",") + ")"
}

// FunctionSelector returns the 4-byte call selector: the first four bytes of
// the keccak-256 hash of the canonical signature.
func FunctionSelector(name string, params []Param) [4]byte {
	var sel [4]byte
	hash := keccak.Sum256([]byte(Signature(name, params)))
	copy(sel[:], hash[:4])
	return sel
}

// EventTopic returns the 32-byte keccak-256 hash of the canonical signature,
// used as topics[0] of matching logs.
func EventTopic(name string, params []Param) [32]byte {
	return keccak.Sum256([]byte(Signature(name, params)))
}
