package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignature(t *testing.T) {
	tests := []struct {
		in        string
		name      string
		canonical []string
	}{
		{"transfer(address,uint256)", "transfer", []string{"address", "uint256"}},
		{"transfer(address to, uint256 amount)", "transfer", []string{"address", "uint256"}},
		{"name()", "name", nil},
		{"f(uint)", "f", []string{"uint256"}},
		{"g(uint8[2][],bytes)", "g", []string{"uint8[2][]", "bytes"}},
		{"swap((address,uint256)[] orders, bytes32 salt)", "swap", []string{"(address,uint256)[]", "bytes32"}},
		{"h(((bool,string),uint8))", "h", []string{"((bool,string),uint8)"}},
		{"submit((address maker, uint256 amount) order)", "submit", []string{"(address,uint256)"}},
		{"submit((address maker, uint256 amount))", "submit", []string{"(address,uint256)"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, params, err := ParseSignature(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)
			require.Len(t, params, len(tt.canonical))
			for i, want := range tt.canonical {
				assert.Equal(t, want, params[i].Type.Canonical())
			}
		})
	}
}

func TestParseSignatureNames(t *testing.T) {
	_, params, err := ParseSignature("transfer(address to, uint256 amount)")
	require.NoError(t, err)
	assert.Equal(t, "to", params[0].Name)
	assert.Equal(t, "amount", params[1].Name)
}

func TestParseSignatureTupleComponentNames(t *testing.T) {
	// Component names inside the tuple must not be mistaken for the
	// parameter name of the tuple itself.
	_, params, err := ParseSignature("submit((address maker, uint256 amount))")
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "", params[0].Name)
	require.Len(t, params[0].Type.Components, 2)
	assert.Equal(t, "maker", params[0].Type.Components[0].Name)
	assert.Equal(t, "amount", params[0].Type.Components[1].Name)
}

func TestParseSignatureErrors(t *testing.T) {
	for _, bad := range []string{
		"transfer",
		"transfer(address",
		"(address,uint256)",
		"f(address,,uint256)",
		"f((address,uint256)",
		"f(fixed128x18)",
	} {
		t.Run(bad, func(t *testing.T) {
			_, _, err := ParseSignature(bad)
			require.Error(t, err)
		})
	}
}

func TestSignatureRoundTrip(t *testing.T) {
	// Canonical rendering of a parsed signature is stable.
	name, params, err := ParseSignature("swap((address,uint256)[] orders, bytes32 salt)")
	require.NoError(t, err)
	assert.Equal(t, "swap((address,uint256)[],bytes32)", Signature(name, params))
}
