package contract

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairoschain/kairos-go/internal/abi"
)

func krc20Interface(t *testing.T) *Interface {
	t.Helper()
	iface, err := BuiltinInterface("krc20")
	require.NoError(t, err)
	return iface
}

func testAddress(lastByte byte) abi.Address {
	var a abi.Address
	a[31] = lastByte
	return a
}

func TestEncodeCallTransfer(t *testing.T) {
	iface := krc20Interface(t)

	to := testAddress(0x01)
	hexStr, raw, err := iface.EncodeCall("transfer", []any{to, big.NewInt(1000)})
	require.NoError(t, err)

	require.Len(t, raw, 4+64, "selector + two words")
	assert.Equal(t, "0xa9059cbb", hexStr[:10])
	assert.Equal(t, to[:], raw[4:36])
	assert.Equal(t, byte(0xe8), raw[67], "1000 = 0x03e8 big-endian")
	assert.Equal(t, byte(0x03), raw[66])
}

func TestEncodeCallUnknownFunction(t *testing.T) {
	iface := krc20Interface(t)
	_, _, err := iface.EncodeCall("mint", []any{big.NewInt(1)})
	require.Error(t, err)
}

func TestDecodeCallRoundTrip(t *testing.T) {
	iface := krc20Interface(t)

	to := testAddress(0x42)
	_, raw, err := iface.EncodeCall("transfer", []any{to, big.NewInt(77)})
	require.NoError(t, err)

	fn, values, err := iface.DecodeCall(raw)
	require.NoError(t, err)
	assert.Equal(t, "transfer", fn.Name)
	require.Len(t, values, 2)
	assert.Equal(t, to, values[0])
	assert.Zero(t, big.NewInt(77).Cmp(values[1].(*big.Int)))
}

func TestDecodeCallAgainstWrongSelector(t *testing.T) {
	iface := krc20Interface(t)

	_, raw, err := iface.EncodeCall("transfer", []any{testAddress(0x01), big.NewInt(1)})
	require.NoError(t, err)

	approve, ok := iface.Function("approve")
	require.True(t, ok)
	_, err = DecodeCallAgainst(approve, raw)
	require.ErrorIs(t, err, abi.ErrInvalidArgument)
}

func TestDecodeCallTooShort(t *testing.T) {
	iface := krc20Interface(t)
	_, _, err := iface.DecodeCall([]byte{0xa9, 0x05})
	require.ErrorIs(t, err, abi.ErrBufferOverrun)
}

func TestDecodeReturn(t *testing.T) {
	iface := krc20Interface(t)

	// balanceOf returns one uint256.
	enc, err := abi.EncodeTuple(
		[]abi.Param{{Type: mustType(t, "uint256")}},
		[]any{big.NewInt(123)},
	)
	require.NoError(t, err)

	values, err := iface.DecodeReturn("balanceOf", enc)
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Zero(t, big.NewInt(123).Cmp(values[0].(*big.Int)))
}

func mustType(t *testing.T, name string) *abi.Type {
	t.Helper()
	typ, err := abi.ParseType(name, nil)
	require.NoError(t, err)
	return typ
}
