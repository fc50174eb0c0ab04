package contract

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairoschain/kairos-go/internal/abi"
)

func TestRegistryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contracts.json")

	r := NewRegistry(path)
	require.NoError(t, r.Load(), "missing file is an empty registry")
	assert.Empty(t, r.All())

	r.Add(&Entry{Name: "token", ABI: krc20ABI})
	r.Add(&Entry{Name: "escrow", Address: "0x" + "00", ABI: []abi.Entry{
		{Name: "release", Type: "function", StateMutability: "nonpayable"},
	}})
	require.NoError(t, r.Save())

	r2 := NewRegistry(path)
	require.NoError(t, r2.Load())

	all := r2.All()
	require.Len(t, all, 2)
	assert.Equal(t, "escrow", all[0].Name, "sorted by name")

	got, err := r2.Get("token")
	require.NoError(t, err)
	assert.Len(t, got.ABI, len(krc20ABI))

	iface, err := r2.Interface("token")
	require.NoError(t, err)
	_, ok := iface.Function("transfer")
	assert.True(t, ok)
}

func TestRegistryMissing(t *testing.T) {
	r := NewRegistry(filepath.Join(t.TempDir(), "contracts.json"))
	_, err := r.Get("ghost")
	require.ErrorIs(t, err, ErrContractNotFound)
	require.ErrorIs(t, r.Remove("ghost"), ErrContractNotFound)
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry(filepath.Join(t.TempDir(), "contracts.json"))
	r.Add(&Entry{Name: "gone"})
	require.NoError(t, r.Remove("gone"))
	_, err := r.Get("gone")
	require.ErrorIs(t, err, ErrContractNotFound)
}
