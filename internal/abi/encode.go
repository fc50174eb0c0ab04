package abi

import (
	"fmt"
	"math/big"

	"github.com/kairoschain/kairos-go/internal/hexutil"
)

// maxWord is 2^256, the modulus for two's-complement encoding of negative
// integers.
var maxWord = new(big.Int).Lsh(big.NewInt(1), 256)

// EncodeTuple encodes values against params using the ABI head/tail layout:
// static values sit directly in the head, dynamic values sit in the tail
// behind a byte-offset head word. Arrays and nested tuples recurse through
// the same machinery, so offsets stay consistent at every depth.
func EncodeTuple(params []Param, values []any) ([]byte, error) {
	if len(params) != len(values) {
		return nil, fmt.Errorf("%w: %d values for %d parameters", ErrArityMismatch, len(values), len(params))
	}

	headWords := 0
	for _, p := range params {
		if p.Type.IsDynamic() {
			headWords++
		} else {
			headWords += p.Type.StaticWords()
		}
	}
	headSize := headWords * WordSize

	var head, tail []byte
	for i, p := range params {
		enc, err := encodeValue(p.Type, values[i])
		if err != nil {
			if p.Name != "" {
				return nil, fmt.Errorf("parameter %s: %w", p.Name, err)
			}
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		if p.Type.IsDynamic() {
			head = append(head, encodeLengthWord(headSize+len(tail))...)
			tail = append(tail, enc...)
		} else {
			head = append(head, enc...)
		}
	}
	return append(head, tail...), nil
}

// encodeValue encodes a single value of type t. For dynamic types the result
// is the tail body (its own offset word is written by the caller).
func encodeValue(t *Type, v any) ([]byte, error) {
	switch t.Kind {
	case KindBool:
		b, err := toBool(v)
		if err != nil {
			return nil, err
		}
		word := make([]byte, WordSize)
		if b {
			word[WordSize-1] = 1
		}
		return word, nil

	case KindUint, KindInt:
		n, err := toBigInt(v)
		if err != nil {
			return nil, err
		}
		return encodeInteger(t, n)

	case KindAddress:
		a, err := toAddress(v)
		if err != nil {
			return nil, err
		}
		// Addresses are exactly one word wide on this chain; left-padding is
		// the identity but keeps the rule explicit.
		return hexutil.LeftPadBytes(a[:], WordSize), nil

	case KindFixedBytes:
		b, err := toBytes(v)
		if err != nil {
			return nil, err
		}
		if len(b) != t.Size {
			return nil, fmt.Errorf("%w: bytes%d value has %d bytes", ErrInvalidArgument, t.Size, len(b))
		}
		return hexutil.RightPadBytes(b, WordSize), nil

	case KindString:
		s, err := toText(v)
		if err != nil {
			return nil, err
		}
		return encodeByteString([]byte(s)), nil

	case KindBytes:
		b, err := toBytes(v)
		if err != nil {
			return nil, err
		}
		return encodeByteString(b), nil

	case KindArray:
		list, err := toList(v)
		if err != nil {
			return nil, err
		}
		if t.Size == DynamicArray {
			body, err := EncodeTuple(elementParams(t.Elem, len(list)), list)
			if err != nil {
				return nil, err
			}
			return append(encodeLengthWord(len(list)), body...), nil
		}
		if len(list) != t.Size {
			return nil, fmt.Errorf("%w: fixed array %s needs %d elements, got %d",
				ErrInvalidArgument, t.Canonical(), t.Size, len(list))
		}
		return EncodeTuple(elementParams(t.Elem, t.Size), list)

	case KindTuple:
		vals, err := toTupleValues(t.Components, v)
		if err != nil {
			return nil, err
		}
		return EncodeTuple(t.Components, vals)

	default:
		return nil, fmt.Errorf("%w: kind %d", ErrNotImplemented, t.Kind)
	}
}

// encodeInteger range-checks n against the declared width, then writes it as
// a 32-byte big-endian word. Negative values are two's-complemented over the
// full 256-bit word regardless of the declared width, matching EVM sign
// extension.
func encodeInteger(t *Type, n *big.Int) ([]byte, error) {
	if t.Kind == KindUint {
		if n.Sign() < 0 || n.BitLen() > t.Bits {
			return nil, fmt.Errorf("%w: %s does not fit uint%d", ErrOutOfRange, n, t.Bits)
		}
		word := make([]byte, WordSize)
		n.FillBytes(word)
		return word, nil
	}

	// Signed: -2^(bits-1) <= n < 2^(bits-1).
	limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Bits-1))
	if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
		return nil, fmt.Errorf("%w: %s does not fit int%d", ErrOutOfRange, n, t.Bits)
	}
	word := make([]byte, WordSize)
	if n.Sign() < 0 {
		new(big.Int).Add(maxWord, n).FillBytes(word)
	} else {
		n.FillBytes(word)
	}
	return word, nil
}

// encodeByteString emits a length word followed by the content right-padded
// to the next word boundary. Empty content is just the zero length word.
func encodeByteString(b []byte) []byte {
	padded := (len(b) + WordSize - 1) / WordSize * WordSize
	return append(encodeLengthWord(len(b)), hexutil.RightPadBytes(b, padded)...)
}

// encodeLengthWord writes a non-negative length or offset as one word.
func encodeLengthWord(n int) []byte {
	word := make([]byte, WordSize)
	big.NewInt(int64(n)).FillBytes(word)
	return word
}

// toText coerces a string value; []byte is accepted as UTF-8 content.
func toText(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", fmt.Errorf("%w: cannot use %T as string", ErrInvalidArgument, v)
	}
}
