// Package hexutil holds the byte/hex helpers shared by the ABI codec and the
// CLI: 0x-prefixed encoding, tolerant decoding, and the word-padding
// primitives the ABI wire format is built from.
package hexutil

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Has0xPrefix reports whether s starts with "0x" or "0X".
func Has0xPrefix(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// Encode returns the 0x-prefixed hex encoding of b.
func Encode(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// Decode parses a hex string into raw bytes. The 0x/0X prefix is optional.
// Odd-length input is rejected rather than zero-padded.
func Decode(s string) ([]byte, error) {
	if Has0xPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd-length hex string (%d chars)", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return b, nil
}

// MustDecode is Decode for hardcoded values; it panics on malformed input.
func MustDecode(s string) []byte {
	b, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return b
}

// LeftPadBytes zero-pads b on the left to length n. If b is already n bytes
// or longer it is returned copied, unchanged.
func LeftPadBytes(b []byte, n int) []byte {
	if len(b) >= n {
		out := make([]byte, len(b))
		copy(out, b)
		return out
	}
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	return out
}

// RightPadBytes zero-pads b on the right to length n. If b is already n
// bytes or longer it is returned copied, unchanged.
func RightPadBytes(b []byte, n int) []byte {
	if len(b) >= n {
		out := make([]byte, len(b))
		copy(out, b)
		return out
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// Concat joins byte slices into a freshly allocated buffer.
func Concat(chunks ...[]byte) []byte {
	var size int
	for _, c := range chunks {
		size += len(c)
	}
	out := make([]byte, 0, size)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}
