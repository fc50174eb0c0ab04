package abi

import (
	"fmt"

	"github.com/kairoschain/kairos-go/internal/hexutil"
)

// AddressLength is the width of a Kairos account address. Addresses occupy a
// full ABI word, so encoding them needs no padding decision at all.
const AddressLength = 32

// Address is a 32-byte account or contract address.
type Address [AddressLength]byte

// BytesToAddress converts a raw byte slice to an Address. The slice must be
// exactly 32 bytes.
func BytesToAddress(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLength {
		return a, fmt.Errorf("%w: address must be %d bytes, got %d", ErrInvalidArgument, AddressLength, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// HexToAddress parses a 0x-prefixed (or bare) hex address.
func HexToAddress(s string) (Address, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return BytesToAddress(b)
}

// Bytes returns a copy of the address bytes.
func (a Address) Bytes() []byte {
	out := make([]byte, AddressLength)
	copy(out, a[:])
	return out
}

// Hex returns the 0x-prefixed hex form.
func (a Address) Hex() string {
	return hexutil.Encode(a[:])
}

func (a Address) String() string {
	return a.Hex()
}
