package abi

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/kairoschain/kairos-go/internal/hexutil"
)

// Values cross the codec boundary as a small language-native union:
//
//	bool, *big.Int, string, []byte, Address,
//	[]any            (arrays and positional tuples)
//	map[string]any   (tuples by component name)
//
// Encoding additionally coerces the loosely-typed forms CLI and JSON callers
// produce (decimal strings, 0x hex strings, native ints). Decoding always
// produces the canonical forms above, with byte contents copied out of the
// input buffer.

// toBigInt coerces an integer value. Strings parse with base auto-detection
// so both "1000" and "0x3e8" work.
func toBigInt(v any) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		return n, nil
	case big.Int:
		return &n, nil
	case int:
		return big.NewInt(int64(n)), nil
	case int8:
		return big.NewInt(int64(n)), nil
	case int16:
		return big.NewInt(int64(n)), nil
	case int32:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case uint:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case string:
		out, ok := new(big.Int).SetString(n, 0)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidArgument, n)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: cannot use %T as integer", ErrInvalidArgument, v)
	}
}

// toBytes coerces a byte-string value. Strings must be 0x-prefixed hex;
// plain text is ambiguous here and is rejected.
func toBytes(v any) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case string:
		if !hexutil.Has0xPrefix(b) {
			return nil, fmt.Errorf("%w: byte values given as strings must be 0x-prefixed hex", ErrInvalidArgument)
		}
		out, err := hexutil.Decode(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: cannot use %T as bytes", ErrInvalidArgument, v)
	}
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch b {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return false, fmt.Errorf("%w: %q is not a bool", ErrInvalidArgument, b)
	default:
		return false, fmt.Errorf("%w: cannot use %T as bool", ErrInvalidArgument, v)
	}
}

func toAddress(v any) (Address, error) {
	switch a := v.(type) {
	case Address:
		return a, nil
	case [AddressLength]byte:
		return Address(a), nil
	case []byte:
		return BytesToAddress(a)
	case string:
		return HexToAddress(a)
	default:
		return Address{}, fmt.Errorf("%w: cannot use %T as address", ErrInvalidArgument, v)
	}
}

// toList flattens any slice or array value into []any. Reflection keeps the
// encoder usable with typed slices ([]*big.Int, [3]uint8, ...) and not just
// the []any the decoder emits.
func toList(v any) ([]any, error) {
	if l, ok := v.([]any); ok {
		return l, nil
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("%w: cannot use %T as array", ErrInvalidArgument, v)
	}
	// []byte would silently become 32 one-byte elements; that is always a
	// caller mixing up bytes and uint8[].
	if b, ok := v.([]byte); ok {
		return nil, fmt.Errorf("%w: got %d raw bytes where an array was expected", ErrInvalidArgument, len(b))
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// toTupleValues orders a tuple value against its component list. Accepts a
// positional []any or a map keyed by component name.
func toTupleValues(components []Param, v any) ([]any, error) {
	switch tv := v.(type) {
	case map[string]any:
		out := make([]any, len(components))
		for i, c := range components {
			val, ok := tv[c.Name]
			if !ok {
				return nil, fmt.Errorf("%w: tuple value missing component %q", ErrInvalidArgument, c.Name)
			}
			out[i] = val
		}
		return out, nil
	default:
		return toList(tv)
	}
}

// TupleMap converts a positional tuple value into a named record. ok is
// false when any component is unnamed, in which case callers should stay
// positional.
func TupleMap(components []Param, values []any) (map[string]any, bool) {
	if len(components) != len(values) {
		return nil, false
	}
	out := make(map[string]any, len(components))
	for i, c := range components {
		if c.Name == "" {
			return nil, false
		}
		out[c.Name] = values[i]
	}
	return out, true
}
