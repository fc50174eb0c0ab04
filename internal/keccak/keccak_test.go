package keccak

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum256(t *testing.T) {
	// Known keccak-256 vectors.
	tests := []struct {
		in   string
		want string
	}{
		{"", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"transfer(address,uint256)", "a9059cbb2ab09eb219583f4a59a5d0623ade346d962bcd4e46b11da047c9049b"},
	}

	for _, tt := range tests {
		got := Sum256([]byte(tt.in))
		assert.Equal(t, tt.want, hex.EncodeToString(got[:]), "input %q", tt.in)
	}
}

func TestSum256Multi(t *testing.T) {
	whole := Sum256([]byte("transfer(address,uint256)"))
	chunked := Sum256Multi([]byte("transfer("), []byte("address,"), []byte("uint256)"))
	assert.Equal(t, whole, chunked)
}
