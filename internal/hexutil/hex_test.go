package hexutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	b := []byte{0xde, 0xad, 0xbe, 0xef}
	assert.Equal(t, "0xdeadbeef", Encode(b))

	for _, in := range []string{"0xdeadbeef", "0Xdeadbeef", "deadbeef"} {
		out, err := Decode(in)
		require.NoError(t, err)
		assert.Equal(t, b, out)
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode("0xabc")
	require.Error(t, err, "odd length")

	_, err = Decode("0xzz")
	require.Error(t, err, "non-hex chars")
}

func TestPadding(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 1, 2}, LeftPadBytes([]byte{1, 2}, 4))
	assert.Equal(t, []byte{1, 2, 0, 0}, RightPadBytes([]byte{1, 2}, 4))

	// Already long enough: returned as-is, but copied.
	in := []byte{1, 2, 3}
	out := LeftPadBytes(in, 2)
	assert.Equal(t, in, out)
	out[0] = 9
	assert.Equal(t, byte(1), in[0])
}

func TestConcat(t *testing.T) {
	assert.Equal(t, []byte{1, 2, 3, 4}, Concat([]byte{1}, nil, []byte{2, 3}, []byte{4}))
	assert.Empty(t, Concat())
}
