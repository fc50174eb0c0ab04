package contract

import (
	"bytes"
	"fmt"

	"github.com/kairoschain/kairos-go/internal/abi"
	"github.com/kairoschain/kairos-go/internal/hexutil"
)

// BuildCall produces raw calldata for a compiled function entry: the 4-byte
// selector followed by the encoded arguments.
func BuildCall(fn *abi.CompiledEntry, values []any) ([]byte, error) {
	sel := fn.Selector()
	enc, err := abi.EncodeTuple(fn.Inputs, values)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", fn.Signature(), err)
	}
	return hexutil.Concat(sel[:], enc), nil
}

// EncodeCall is BuildCall by function name, returning hex for wire use.
func (i *Interface) EncodeCall(name string, values []any) (string, []byte, error) {
	fn, ok := i.Function(name)
	if !ok {
		return "", nil, fmt.Errorf("function %q not found in ABI", name)
	}
	raw, err := BuildCall(fn, values)
	if err != nil {
		return "", nil, err
	}
	return hexutil.Encode(raw), raw, nil
}

// DecodeCall identifies calldata by its selector and decodes the arguments.
func (i *Interface) DecodeCall(calldata []byte) (*abi.CompiledEntry, []any, error) {
	if len(calldata) < 4 {
		return nil, nil, fmt.Errorf("%w: calldata shorter than a selector", abi.ErrBufferOverrun)
	}
	var sel [4]byte
	copy(sel[:], calldata[:4])

	fn, ok := i.FunctionBySelector(sel)
	if !ok {
		return nil, nil, fmt.Errorf("no function with selector %s", hexutil.Encode(sel[:]))
	}

	values, err := abi.DecodeTuple(fn.Inputs, calldata[4:], 0)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", fn.Signature(), err)
	}
	return fn, values, nil
}

// DecodeCallAgainst decodes calldata against one specific entry, verifying
// the selector matches first.
func DecodeCallAgainst(fn *abi.CompiledEntry, calldata []byte) ([]any, error) {
	if len(calldata) < 4 {
		return nil, fmt.Errorf("%w: calldata shorter than a selector", abi.ErrBufferOverrun)
	}
	sel := fn.Selector()
	if !bytes.Equal(calldata[:4], sel[:]) {
		return nil, fmt.Errorf("%w: selector %s does not match %s (%s)",
			abi.ErrInvalidArgument, hexutil.Encode(calldata[:4]), fn.Signature(), hexutil.Encode(sel[:]))
	}
	return abi.DecodeTuple(fn.Inputs, calldata[4:], 0)
}

// DecodeReturn decodes a function's return data.
func (i *Interface) DecodeReturn(name string, data []byte) ([]any, error) {
	fn, ok := i.Function(name)
	if !ok {
		return nil, fmt.Errorf("function %q not found in ABI", name)
	}
	return abi.DecodeTuple(fn.Outputs, data, 0)
}
