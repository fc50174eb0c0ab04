// Package abi implements the Solidity contract ABI: the head/tail binary
// layout for call data and event data, canonical signature strings, and
// selector/topic derivation.
//
// Type descriptors are parsed once (from ABI JSON or a human-readable
// signature) into an immutable Type tree; the encoder and decoder then
// switch exhaustively over the Kind enum instead of re-inspecting type-name
// strings on every value. The codec is pure: no state is held between calls
// and every function is safe for concurrent use.
package abi

import (
	"fmt"
	"strconv"
	"strings"
)

// WordSize is the width of one ABI head/tail word.
const WordSize = 32

// Kind tags a type descriptor.
type Kind uint8

const (
	KindBool Kind = iota
	KindUint
	KindInt
	KindAddress
	KindString
	KindBytes      // dynamic byte string
	KindFixedBytes // bytes1 .. bytes32
	KindArray
	KindTuple
)

// Type is an immutable ABI type descriptor. Build it with ParseType or
// ParseSignature and treat it as read-only afterwards.
type Type struct {
	Kind Kind
	Bits int // uint/int: declared width in bits
	Size int // fixed-bytes: byte width; array: length, -1 when dynamic

	Elem       *Type   // array element
	Components []Param // tuple components, in declared order
}

// Param is one named slot in a tuple, function parameter list, or event
// parameter list. The name may be empty.
type Param struct {
	Name string
	Type *Type
}

// DynamicArray marks a dynamic-length array in Type.Size.
const DynamicArray = -1

// ParseType parses an ABI JSON type name ("uint256", "bytes32",
// "tuple[2][]", ...) into a descriptor. components carries the tuple
// components when the base type is "tuple"; it must be nil otherwise.
func ParseType(name string, components []Param) (*Type, error) {
	// Split off the array-suffix chain, if any. "uint8[2][]" parses the base
	// "uint8" and then wraps it left to right, innermost dimension first.
	base := name
	var suffix string
	if idx := strings.IndexByte(name, '['); idx >= 0 {
		base, suffix = name[:idx], name[idx:]
	}

	t, err := parseBaseType(base, components)
	if err != nil {
		return nil, err
	}
	if suffix == "" {
		return t, nil
	}
	return applyArraySuffix(t, suffix)
}

func parseBaseType(base string, components []Param) (*Type, error) {
	switch {
	case base == "bool":
		return &Type{Kind: KindBool}, nil

	case base == "address":
		return &Type{Kind: KindAddress}, nil

	case base == "string":
		return &Type{Kind: KindString}, nil

	case base == "bytes":
		return &Type{Kind: KindBytes}, nil

	case base == "tuple":
		return &Type{Kind: KindTuple, Components: components}, nil

	case strings.HasPrefix(base, "bytes"):
		n, err := strconv.Atoi(base[len("bytes"):])
		if err != nil || n < 1 || n > 32 {
			return nil, fmt.Errorf("%w: %q", ErrNotImplemented, base)
		}
		return &Type{Kind: KindFixedBytes, Size: n}, nil

	case strings.HasPrefix(base, "uint"):
		bits, err := parseIntBits(base[len("uint"):])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotImplemented, base)
		}
		return &Type{Kind: KindUint, Bits: bits}, nil

	case strings.HasPrefix(base, "int"):
		bits, err := parseIntBits(base[len("int"):])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotImplemented, base)
		}
		return &Type{Kind: KindInt, Bits: bits}, nil

	default:
		// fixed<M>x<N>, function, and anything unknown.
		return nil, fmt.Errorf("%w: %q", ErrNotImplemented, base)
	}
}

// parseIntBits parses the width suffix of uint/int. A bare "uint"/"int"
// means 256 bits.
func parseIntBits(s string) (int, error) {
	if s == "" {
		return 256, nil
	}
	bits, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return 0, fmt.Errorf("invalid integer width %d", bits)
	}
	return bits, nil
}

// applyArraySuffix wraps t in one Array descriptor per "[..]" group, left to
// right, so the leftmost group is the innermost dimension.
func applyArraySuffix(t *Type, suffix string) (*Type, error) {
	for suffix != "" {
		if suffix[0] != '[' {
			return nil, fmt.Errorf("%w: malformed array suffix %q", ErrNotImplemented, suffix)
		}
		close := strings.IndexByte(suffix, ']')
		if close < 0 {
			return nil, fmt.Errorf("%w: unterminated array suffix %q", ErrNotImplemented, suffix)
		}
		dim := suffix[1:close]
		suffix = suffix[close+1:]

		if dim == "" {
			t = &Type{Kind: KindArray, Size: DynamicArray, Elem: t}
			continue
		}
		n, err := strconv.Atoi(dim)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad array length %q", ErrNotImplemented, dim)
		}
		t = &Type{Kind: KindArray, Size: n, Elem: t}
	}
	return t, nil
}

// IsDynamic reports whether the encoded size of the type depends on the
// value. string and bytes are always dynamic; a dynamic array is dynamic;
// fixed arrays and tuples are dynamic iff anything inside them is. The check
// is pure and may be re-evaluated freely.
func (t *Type) IsDynamic() bool {
	switch t.Kind {
	case KindString, KindBytes:
		return true
	case KindArray:
		if t.Size == DynamicArray {
			return true
		}
		return t.Elem.IsDynamic()
	case KindTuple:
		for _, c := range t.Components {
			if c.Type.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// StaticWords returns how many 32-byte head words the type occupies when
// encoded in place. Dynamic types occupy exactly one word (the tail offset);
// static fixed arrays and tuples occupy the sum of their parts.
func (t *Type) StaticWords() int {
	if t.IsDynamic() {
		return 1
	}
	switch t.Kind {
	case KindArray:
		return t.Size * t.Elem.StaticWords()
	case KindTuple:
		total := 0
		for _, c := range t.Components {
			total += c.Type.StaticWords()
		}
		return total
	default:
		return 1
	}
}

// Canonical renders the descriptor as its ABI signature string: widths are
// always explicit (uint -> uint256), tuples are parenthesized, arrays carry
// their suffix.
func (t *Type) Canonical() string {
	switch t.Kind {
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindFixedBytes:
		return "bytes" + strconv.Itoa(t.Size)
	case KindUint:
		return "uint" + strconv.Itoa(t.Bits)
	case KindInt:
		return "int" + strconv.Itoa(t.Bits)
	case KindArray:
		if t.Size == DynamicArray {
			return t.Elem.Canonical() + "[]"
		}
		return t.Elem.Canonical() + "[" + strconv.Itoa(t.Size) + "]"
	case KindTuple:
		parts := make([]string, len(t.Components))
		for i, c := range t.Components {
			parts[i] = c.Type.Canonical()
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return "<invalid>"
	}
}

func (t *Type) String() string {
	return t.Canonical()
}

// elementParams expands an array type into n uniform parameter slots so that
// array bodies reuse the tuple head/tail machinery.
func elementParams(elem *Type, n int) []Param {
	params := make([]Param, n)
	for i := range params {
		params[i] = Param{Type: elem}
	}
	return params
}
