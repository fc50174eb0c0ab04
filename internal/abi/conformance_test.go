package abi

import (
	"math/big"
	"testing"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The dispatch boundary routes flat (tuple-free, non-nested-array,
// non-address) entries to the native packer, so on that overlap this codec
// must be byte-identical to a reference implementation. go-ethereum's
// accounts/abi is the reference here. Addresses are excluded: they are 20
// bytes on Ethereum and 32 bytes on this chain, which is exactly why they
// never cross the boundary.
func gethArgs(t *testing.T, types ...string) gethabi.Arguments {
	t.Helper()
	args := make(gethabi.Arguments, len(types))
	for i, s := range types {
		typ, err := gethabi.NewType(s, "", nil)
		require.NoError(t, err)
		args[i] = gethabi.Argument{Type: typ}
	}
	return args
}

func TestPackParityWithGeth(t *testing.T) {
	tests := []struct {
		name  string
		types []string
		geth  []any
		ours  []any
	}{
		{
			"uint256",
			[]string{"uint256"},
			[]any{big.NewInt(123456789)},
			[]any{big.NewInt(123456789)},
		},
		{
			"int8 negative",
			[]string{"int8"},
			[]any{int8(-1)},
			[]any{big.NewInt(-1)},
		},
		{
			"int256 negative",
			[]string{"int256"},
			[]any{big.NewInt(-987654321)},
			[]any{big.NewInt(-987654321)},
		},
		{
			"bool",
			[]string{"bool"},
			[]any{true},
			[]any{true},
		},
		{
			"string",
			[]string{"string"},
			[]any{"hello conformance"},
			[]any{"hello conformance"},
		},
		{
			"bytes",
			[]string{"bytes"},
			[]any{[]byte{0xde, 0xad, 0xbe, 0xef, 0x01}},
			[]any{[]byte{0xde, 0xad, 0xbe, 0xef, 0x01}},
		},
		{
			"bytes32",
			[]string{"bytes32"},
			[]any{[32]byte{0xaa, 0xbb}},
			[]any{append([]byte{0xaa, 0xbb}, make([]byte, 30)...)},
		},
		{
			"dynamic uint array",
			[]string{"uint256[]"},
			[]any{[]*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}},
			[]any{[]any{big.NewInt(1), big.NewInt(2), big.NewInt(3)}},
		},
		{
			"fixed uint8 array",
			[]string{"uint8[3]"},
			[]any{[3]uint8{7, 8, 9}},
			[]any{[]any{uint8(7), uint8(8), uint8(9)}},
		},
		{
			"mixed static and dynamic",
			[]string{"uint256", "string", "bool", "uint256[]"},
			[]any{big.NewInt(42), "mix", false, []*big.Int{big.NewInt(5)}},
			[]any{big.NewInt(42), "mix", false, []any{big.NewInt(5)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := gethArgs(t, tt.types...).Pack(tt.geth...)
			require.NoError(t, err)

			params := mustParams(t, tt.types...)
			got, err := EncodeTuple(params, tt.ours)
			require.NoError(t, err)

			assert.Equal(t, want, got)
		})
	}
}

func TestUnpackParityWithGeth(t *testing.T) {
	// Encode with this codec, unpack with geth, compare values.
	types := []string{"uint256", "string", "uint256[]"}
	params := mustParams(t, types...)
	enc, err := EncodeTuple(params, []any{
		big.NewInt(1000), "parity", []any{big.NewInt(1), big.NewInt(2)},
	})
	require.NoError(t, err)

	vals, err := gethArgs(t, types...).Unpack(enc)
	require.NoError(t, err)
	require.Len(t, vals, 3)

	assert.Zero(t, big.NewInt(1000).Cmp(vals[0].(*big.Int)))
	assert.Equal(t, "parity", vals[1].(string))
	arr := vals[2].([]*big.Int)
	require.Len(t, arr, 2)
	assert.Zero(t, big.NewInt(2).Cmp(arr[1]))
}
