package contract

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairoschain/kairos-go/internal/abi"
)

func transferLog(t *testing.T, from, to abi.Address, value *big.Int) Log {
	t.Helper()
	iface := krc20Interface(t)
	ev, ok := iface.Event("Transfer")
	require.True(t, ok)

	data, err := abi.EncodeTuple(
		[]abi.Param{{Name: "value", Type: mustType(t, "uint256")}},
		[]any{value},
	)
	require.NoError(t, err)

	return Log{
		Topics: [][32]byte{ev.Topic(), [32]byte(from), [32]byte(to)},
		Data:   data,
	}
}

func TestDecodeTransferLog(t *testing.T) {
	iface := krc20Interface(t)
	from, to := testAddress(0xaa), testAddress(0xbb)

	decoded, err := iface.DecodeLog(transferLog(t, from, to, big.NewInt(5000)))
	require.NoError(t, err)
	assert.Equal(t, "Transfer", decoded.Event.Name)
	require.Len(t, decoded.Fields, 3)

	assert.Equal(t, "from", decoded.Fields[0].Name)
	assert.True(t, decoded.Fields[0].Indexed)
	assert.Equal(t, from, decoded.Fields[0].Value)

	assert.Equal(t, to, decoded.Fields[1].Value)

	assert.Equal(t, "value", decoded.Fields[2].Name)
	assert.False(t, decoded.Fields[2].Indexed)
	assert.Zero(t, big.NewInt(5000).Cmp(decoded.Fields[2].Value.(*big.Int)))
}

func TestDecodeLogUnknownTopic(t *testing.T) {
	iface := krc20Interface(t)
	_, err := iface.DecodeLog(Log{Topics: [][32]byte{{0x01}}})
	require.Error(t, err)

	_, err = iface.DecodeLog(Log{})
	require.ErrorIs(t, err, abi.ErrInvalidArgument)
}

func TestDecodeLogTopicArity(t *testing.T) {
	iface := krc20Interface(t)
	log := transferLog(t, testAddress(1), testAddress(2), big.NewInt(1))
	log.Topics = log.Topics[:2] // drop one indexed topic
	_, err := iface.DecodeLog(log)
	require.ErrorIs(t, err, abi.ErrInvalidArgument)
}

func TestDecodeLogHashedIndexedParam(t *testing.T) {
	// Indexed dynamic values only store their hash in the topic.
	raw := `[{
	  "name": "Note", "type": "event",
	  "inputs": [
	    {"name": "memo", "type": "string", "indexed": true},
	    {"name": "count", "type": "uint256"}
	  ]
	}]`
	iface, err := ParseInterface([]byte(raw))
	require.NoError(t, err)
	ev, ok := iface.Event("Note")
	require.True(t, ok)

	data, err := abi.EncodeTuple(
		[]abi.Param{{Type: mustType(t, "uint256")}},
		[]any{big.NewInt(3)},
	)
	require.NoError(t, err)

	memoHash := [32]byte{0xde, 0xad}
	decoded, err := iface.DecodeLog(Log{
		Topics: [][32]byte{ev.Topic(), memoHash},
		Data:   data,
	})
	require.NoError(t, err)
	require.Len(t, decoded.Fields, 2)
	assert.True(t, decoded.Fields[0].Hashed)
	assert.Equal(t, memoHash[:], decoded.Fields[0].Value)
	assert.Zero(t, big.NewInt(3).Cmp(decoded.Fields[1].Value.(*big.Int)))
}
