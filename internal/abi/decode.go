package abi

import (
	"fmt"
	"math/big"
)

// DecodeTuple decodes the parameter list from data, mirroring EncodeTuple.
// base is the byte position the tuple's head starts at; offsets inside
// dynamic head words are relative to base, which is what makes nested
// dynamic values decode correctly.
//
// Decoded bytes are copied out of data, so results never alias the input.
func DecodeTuple(params []Param, data []byte, base int) ([]any, error) {
	if base < 0 || base > len(data) {
		return nil, fmt.Errorf("%w: tuple base %d outside %d-byte buffer", ErrBufferOverrun, base, len(data))
	}

	values := make([]any, len(params))
	cursor := base
	for i, p := range params {
		if p.Type.IsDynamic() {
			offset, err := readSize(data, cursor)
			if err != nil {
				return nil, decodeErr(p, i, err)
			}
			if offset > len(data)-base {
				return nil, decodeErr(p, i, fmt.Errorf("%w: tail offset %d outside %d-byte buffer",
					ErrBufferOverrun, offset, len(data)))
			}
			v, err := decodeValue(p.Type, data, base+offset)
			if err != nil {
				return nil, decodeErr(p, i, err)
			}
			values[i] = v
			cursor += WordSize
			continue
		}

		v, err := decodeValue(p.Type, data, cursor)
		if err != nil {
			return nil, decodeErr(p, i, err)
		}
		values[i] = v
		cursor += p.Type.StaticWords() * WordSize
	}
	return values, nil
}

func decodeErr(p Param, i int, err error) error {
	if p.Name != "" {
		return fmt.Errorf("parameter %s: %w", p.Name, err)
	}
	return fmt.Errorf("parameter %d: %w", i, err)
}

// decodeValue decodes one value of type t starting at off. For dynamic types
// off is the start of the tail body (length word first, where the type has
// one).
func decodeValue(t *Type, data []byte, off int) (any, error) {
	switch t.Kind {
	case KindBool:
		word, err := readWord(data, off)
		if err != nil {
			return nil, err
		}
		for _, b := range word[:WordSize-1] {
			if b != 0 {
				return nil, fmt.Errorf("%w: improperly encoded bool", ErrInvalidArgument)
			}
		}
		switch word[WordSize-1] {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
		return nil, fmt.Errorf("%w: improperly encoded bool", ErrInvalidArgument)

	case KindUint, KindInt:
		word, err := readWord(data, off)
		if err != nil {
			return nil, err
		}
		return decodeInteger(t, word), nil

	case KindAddress:
		word, err := readWord(data, off)
		if err != nil {
			return nil, err
		}
		return BytesToAddress(word)

	case KindFixedBytes:
		word, err := readWord(data, off)
		if err != nil {
			return nil, err
		}
		out := make([]byte, t.Size)
		copy(out, word[:t.Size])
		return out, nil

	case KindString:
		b, err := decodeByteString(data, off)
		if err != nil {
			return nil, err
		}
		return string(b), nil

	case KindBytes:
		return decodeByteString(data, off)

	case KindArray:
		if t.Size == DynamicArray {
			n, err := readSize(data, off)
			if err != nil {
				return nil, err
			}
			// An element body is at least one word; a length claiming more
			// elements than the buffer could hold is corrupt input.
			if n > len(data)/WordSize {
				return nil, fmt.Errorf("%w: array length %d exceeds buffer", ErrBufferOverrun, n)
			}
			return DecodeTuple(elementParams(t.Elem, n), data, off+WordSize)
		}
		return DecodeTuple(elementParams(t.Elem, t.Size), data, off)

	case KindTuple:
		return DecodeTuple(t.Components, data, off)

	default:
		return nil, fmt.Errorf("%w: kind %d", ErrNotImplemented, t.Kind)
	}
}

// decodeInteger masks the word to the declared width, then re-interprets the
// sign bit of the low-order N bits for signed types. The mask matters: a
// narrow signed value sign-extends over the full word on the wire, and the
// extension bytes must not leak into the result.
func decodeInteger(t *Type, word []byte) *big.Int {
	n := new(big.Int).SetBytes(word)
	if t.Bits < 256 {
		mask := new(big.Int).Lsh(big.NewInt(1), uint(t.Bits))
		mask.Sub(mask, big.NewInt(1))
		n.And(n, mask)
	}
	if t.Kind == KindInt && n.Bit(t.Bits-1) == 1 {
		span := new(big.Int).Lsh(big.NewInt(1), uint(t.Bits))
		n.Sub(n, span)
	}
	return n
}

// decodeByteString reads a length word then copies out that many content
// bytes. The padding behind the content is not required to be present, only
// the declared length is.
func decodeByteString(data []byte, off int) ([]byte, error) {
	n, err := readSize(data, off)
	if err != nil {
		return nil, err
	}
	start := off + WordSize
	if n > len(data)-start {
		return nil, fmt.Errorf("%w: %d content bytes declared, %d available", ErrBufferOverrun, n, len(data)-start)
	}
	out := make([]byte, n)
	copy(out, data[start:start+n])
	return out, nil
}

// readWord returns the 32-byte word at off, or ErrBufferOverrun.
func readWord(data []byte, off int) ([]byte, error) {
	if off < 0 || off+WordSize > len(data) {
		return nil, fmt.Errorf("%w: need word at %d, buffer is %d bytes", ErrBufferOverrun, off, len(data))
	}
	return data[off : off+WordSize], nil
}

// readSize reads a word that is used as an offset or length. Values that do
// not fit a non-negative int are corrupt or adversarial and are rejected
// before any arithmetic can overflow.
func readSize(data []byte, off int) (int, error) {
	word, err := readWord(data, off)
	if err != nil {
		return 0, err
	}
	n := new(big.Int).SetBytes(word)
	if !n.IsInt64() || n.Int64() > int64(int(^uint(0)>>1)) {
		return 0, fmt.Errorf("%w: offset/length word %s is not a usable size", ErrInvalidArgument, n)
	}
	return int(n.Int64()), nil
}
